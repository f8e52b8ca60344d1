package types

import "rowanc/report"

// NOTE: This type must be declared here to get around Go's import rules:
// named types refer to their member declarations while declarations carry
// types, so the two have to live in the same package.

// Decl represents a named semantic declaration: a global variable, function,
// type definition, or variant case constructor.
type Decl struct {
	// The name of the declaration.
	Name string

	// The ID of the module the declaration belongs to.
	ParentID uint64

	// Where the declaration occurs in source.  This is nil for builtin and
	// compiler-synthesized declarations.
	DefSpan *report.TextSpan

	// The type of the value stored in the declaration.  For type definitions,
	// this is the defined type itself.
	Type Type

	// The kind of the declaration.  This must be one of the enumerated
	// definition kinds.
	DefKind int

	// Whether the declaration is static: accessed through its containing type
	// rather than through an instance of it.
	IsStatic bool

	// Whether the declaration is visible outside its defining module.
	Public bool
}

// Enumeration of the different kinds of declarations.
const (
	DefKindVar  = iota // Variable or data member
	DefKindFunc        // Function or method
	DefKindType        // Type definition
	DefKindCase        // Variant case constructor
)

// ReferenceType returns the type of an expression referencing this
// declaration: the defined type's metatype for type definitions and the
// declaration's own type otherwise.
func (d *Decl) ReferenceType() Type {
	if d.DefKind == DefKindType {
		return &MetaType{Instance: d.Type}
	}

	return d.Type
}
