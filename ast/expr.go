package ast

import (
	"rowanc/report"
	"rowanc/types"
)

// Expr represents an expression node.
type Expr interface {
	ASTNode

	// Type returns the yielded type of the expression.
	Type() types.Type

	// SetType sets the yielded type of the expression.
	SetType(typ types.Type)
}

// ExprBase is the base struct for all expression nodes.
type ExprBase struct {
	typ types.Type
}

// NewExprBase creates a new expression base with the given type.
func NewExprBase(typ types.Type) ExprBase {
	return ExprBase{typ: typ}
}

func (eb *ExprBase) Type() types.Type {
	return eb.typ
}

func (eb *ExprBase) SetType(typ types.Type) {
	eb.typ = typ
}

/* -------------------------------------------------------------------------- */

// Identifier represents a resolved reference to a declaration by name.
type Identifier struct {
	ExprBase
	ASTBase

	// The name of the identifier.
	Name string

	// The declaration the identifier refers to.
	Decl *types.Decl
}

// BoundMethod represents a method reference bound to a receiver value: a
// curried application whose call supplies the remaining arguments later.
type BoundMethod struct {
	ExprBase
	ASTBase

	// The receiver the method is bound to.
	Receiver Expr

	// The reference to the method declaration.
	Method *Identifier

	// The span of the dot token.  This is nil when the access has no explicit
	// receiver in source.
	DotSpan *report.TextSpan
}

// MemberRef represents an access to a declared data member through a
// receiver value.
type MemberRef struct {
	ExprBase
	ASTBase

	// The receiver the member is accessed through.
	Receiver Expr

	// The declaration of the accessed member.
	Decl *types.Decl

	// The span of the dot token.
	DotSpan *report.TextSpan

	// The span of the member name.
	NameSpan *report.TextSpan
}

// StaticAccess represents a member access which does not consume the receiver
// as a value: type-level members, static functions, and module-level
// declarations.  The receiver is retained for sequencing and diagnostics but
// is never evaluated as a receiver.
type StaticAccess struct {
	ExprBase
	ASTBase

	// The receiver expression the access was written through.
	Receiver Expr

	// The reference to the resolved declaration.
	Ref *Identifier

	// The span of the dot token.
	DotSpan *report.TextSpan
}

// TupleFieldAccess represents an explicit tuple field access by name or by
// position, eg. `pair.$0` or `vec.x`.
type TupleFieldAccess struct {
	ExprBase
	ASTBase

	// The tuple the field is projected from.
	Tuple Expr

	// The index of the accessed element.
	FieldIndex int

	// The span of the dot token.
	DotSpan *report.TextSpan

	// The span of the field name or position.
	FieldSpan *report.TextSpan
}

// ImplicitFieldAccess represents a tuple field access whose receiver does not
// appear in source: the receiver expression is compiler-synthesized and the
// node spans only the field name.
type ImplicitFieldAccess struct {
	ExprBase
	ASTBase

	// The synthesized receiver the field is projected from.
	Receiver Expr

	// The index of the accessed element.
	FieldIndex int

	// The span of the field name.
	FieldSpan *report.TextSpan
}

// VariantUnwrap represents viewing a transparent variant value as its single
// case's payload.  The node spans exactly its operand.
type VariantUnwrap struct {
	ExprBase
	ASTBase

	// The variant value being unwrapped.
	Operand Expr
}

// OverloadedRef represents a member access that resolved to multiple
// declarations.  Its type is nil until a later argument-driven resolution
// pass selects one of the candidates.
type OverloadedRef struct {
	ExprBase
	ASTBase

	// The receiver the member was accessed through.
	Receiver Expr

	// The candidate declarations in discovery order.  Duplicates are
	// preserved.
	Decls []*types.Decl

	// The span of the member name.
	NameSpan *report.TextSpan
}
