// Package depm provides the module management utilities of the Rowan
// compiler: modules, their symbol tables, and their extension registries.
package depm

import "rowanc/types"

// Module represents a Rowan module: the unit of compilation and distribution.
type Module struct {
	// The unique ID of the module.
	ID uint64

	// The name of the module.
	Name string

	// The absolute path to the root directory of the module.
	AbsPath string

	// The global symbol table of the module.
	GlobalTable *SymbolTable

	// The extension members registered within the module.
	extensions *ExtensionTable
}

// NewModule creates a new empty module with the given name rooted at the
// given absolute path.
func NewModule(name, abspath string) *Module {
	return &Module{
		ID:          GenerateIDFromPath(abspath),
		Name:        name,
		AbsPath:     abspath,
		GlobalTable: NewSymbolTable(name),
		extensions:  NewExtensionTable(),
	}
}

// ModuleName returns the module's name.
func (m *Module) ModuleName() string {
	return m.Name
}

// LookupQualified returns the public declarations the module exports under
// the given name, in definition order.
func (m *Module) LookupQualified(name string) []*types.Decl {
	decls, ok := m.GlobalTable.Lookup(name)
	if !ok {
		return nil
	}

	var public []*types.Decl
	for _, decl := range decls {
		if decl.Public {
			public = append(public, decl)
		}
	}

	return public
}

// RegisterExtension registers an out-of-line member declaration against a
// base type.
func (m *Module) RegisterExtension(baseType types.Type, decl *types.Decl) {
	m.extensions.Register(baseType, decl)
}

// LookupExtensions returns the extension members registered in the module
// against the given base type under the given name, in registration order.
func (m *Module) LookupExtensions(baseType types.Type, name string) []*types.Decl {
	return m.extensions.Lookup(baseType, name)
}
