package depm

import (
	"rowanc/report"
	"rowanc/types"
)

// SymbolTable represents the global symbol table of a Rowan module.  Each
// name maps to its full overload set: member resolution has to see every
// same-named declaration, so function names may carry multiple entries.
type SymbolTable struct {
	// The name of the module the table belongs to, used for reporting.
	modName string

	// table maps names to their overload sets in definition order.
	table map[string][]*types.Decl
}

// NewSymbolTable creates a new empty symbol table for the named module.
func NewSymbolTable(modName string) *SymbolTable {
	return &SymbolTable{modName: modName, table: make(map[string][]*types.Decl)}
}

// Define defines a new global declaration.  Multiple declarations may share a
// name only if all of them are function declarations.  This function returns
// false if the definition fails: it reports errors in case of failure.
func (st *SymbolTable) Define(decl *types.Decl) bool {
	if existing, ok := st.table[decl.Name]; ok {
		if decl.DefKind != types.DefKindFunc || existing[0].DefKind != types.DefKindFunc {
			report.ReportModuleError(st.modName, "symbol defined multiple times: `%s`", decl.Name)
			return false
		}
	}

	st.table[decl.Name] = append(st.table[decl.Name], decl)
	return true
}

// Lookup returns the overload set defined under the given name in definition
// order.
func (st *SymbolTable) Lookup(name string) ([]*types.Decl, bool) {
	decls, ok := st.table[name]
	return decls, ok
}
