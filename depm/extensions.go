package depm

import "rowanc/types"

// ExtensionTable stores the out-of-line member declarations registered
// against base types within one module.  Lookups return declarations in
// registration order: the table never reorders an overload set, so repeated
// lookups always see the same list.
type ExtensionTable struct {
	// entries maps canonical type keys to per-name declaration lists.
	entries map[string]map[string][]*types.Decl
}

// NewExtensionTable creates a new empty extension table.
func NewExtensionTable() *ExtensionTable {
	return &ExtensionTable{entries: make(map[string]map[string][]*types.Decl)}
}

// Register registers an extension member declaration against the base type.
func (et *ExtensionTable) Register(baseType types.Type, decl *types.Decl) {
	key := types.Key(baseType)

	names, ok := et.entries[key]
	if !ok {
		names = make(map[string][]*types.Decl)
		et.entries[key] = names
	}

	names[decl.Name] = append(names[decl.Name], decl)
}

// Lookup returns the extension members registered against the base type
// under the given name, in registration order.  It returns nil if there are
// none.
func (et *ExtensionTable) Lookup(baseType types.Type, name string) []*types.Decl {
	if names, ok := et.entries[types.Key(baseType)]; ok {
		return names[name]
	}

	return nil
}
