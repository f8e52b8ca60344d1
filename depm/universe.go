package depm

import "rowanc/types"

// Universe represents the set of declarations visible in every Rowan module
// without being imported: the builtin primitive type names.
type Universe struct {
	// Builtins is a map of all the builtin type declarations by name.
	Builtins map[string]*types.Decl
}

// NewUniverse creates a new universe for a compilation.
func NewUniverse() *Universe {
	primTypes := []types.PrimitiveType{
		types.PrimTypeUnit,
		types.PrimTypeBool,
		types.PrimTypeI8,
		types.PrimTypeU8,
		types.PrimTypeI16,
		types.PrimTypeU16,
		types.PrimTypeI32,
		types.PrimTypeU32,
		types.PrimTypeI64,
		types.PrimTypeU64,
		types.PrimTypeF32,
		types.PrimTypeF64,
	}

	u := &Universe{Builtins: make(map[string]*types.Decl)}
	for _, pt := range primTypes {
		u.Builtins[pt.Repr()] = &types.Decl{
			Name:     pt.Repr(),
			Type:     pt,
			DefKind:  types.DefKindType,
			IsStatic: true,
			Public:   true,
		}
	}

	return u
}

// GetSymbol attempts to get a declaration with the given name from the
// universe.
func (u *Universe) GetSymbol(name string) (*types.Decl, bool) {
	decl, ok := u.Builtins[name]
	return decl, ok
}
