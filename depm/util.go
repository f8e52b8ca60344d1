package depm

import "hash/fnv"

// GenerateIDFromPath generates a module ID from an absolute path.
func GenerateIDFromPath(abspath string) uint64 {
	a := fnv.New64a()
	a.Write([]byte(abspath))
	return a.Sum64()
}

// IsValidIdentifier returns whether or not a given string would be a valid
// identifier (module name, member name, etc.).
func IsValidIdentifier(idstr string) bool {
	if idstr == "" {
		return false
	}

	for i, c := range idstr {
		if c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') {
			continue
		}

		if i > 0 && '0' <= c && c <= '9' {
			continue
		}

		return false
	}

	return true
}
