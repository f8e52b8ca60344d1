package sema

import (
	"rowanc/ast"
	"rowanc/report"
	"rowanc/types"
)

// BuildAccessExpr synthesizes the typed expression for the lookup's finished
// candidate list.  `recv` is the receiver expression the member is accessed
// through; `dotSpan` is the span of the dot token, or nil when the access has
// no explicit receiver in source; `nameSpan` is the span of the member name.
// Calling this on an empty candidate list, or on a multi-candidate list
// containing a field candidate, is an internal contract violation: the
// dispatcher never produces such lists.
func (ml *MemberLookup) BuildAccessExpr(recv ast.Expr, dotSpan, nameSpan *report.TextSpan) ast.Expr {
	if len(ml.results) == 0 {
		report.ReportICE("member access synthesized with no candidates")
	}

	if len(ml.results) == 1 {
		return ml.buildSingleAccess(recv, dotSpan, nameSpan, ml.results[0])
	}

	// Multiple candidates become an unresolved overload set for a later
	// argument-driven resolution pass.  Field candidates can never be part of
	// an overload set.
	decls := make([]*types.Decl, len(ml.results))
	for i, r := range ml.results {
		if r.Kind == ResultTupleField || r.Kind == ResultPayloadField {
			report.ReportICE("field candidate in ambiguous member access")
		}

		decls[i] = r.Decl
	}

	return &ast.OverloadedRef{
		ExprBase: ast.NewExprBase(nil),
		ASTBase:  ast.NewASTBaseOver(recv.Span(), nameSpan),
		Receiver: recv,
		Decls:    decls,
		NameSpan: nameSpan,
	}
}

// buildSingleAccess synthesizes the expression for a single-candidate lookup.
func (ml *MemberLookup) buildSingleAccess(recv ast.Expr, dotSpan, nameSpan *report.TextSpan, r MemberResult) ast.Expr {
	switch r.Kind {
	case ResultPayloadField:
		// Reveal the transparent payload first, then project the field from
		// the rewritten receiver.
		return buildFieldAccess(unwrapVariant(recv), dotSpan, nameSpan, r.FieldIndex)

	case ResultTupleField:
		return buildFieldAccess(recv, dotSpan, nameSpan, r.FieldIndex)

	case ResultPassReceiver:
		if r.Decl.DefKind == types.DefKindFunc {
			return buildBoundMethod(recv, dotSpan, nameSpan, r.Decl)
		}

		// A data member binds the receiver directly.
		return &ast.MemberRef{
			ExprBase: ast.NewExprBase(r.Decl.Type),
			ASTBase:  ast.NewASTBaseOver(recv.Span(), nameSpan),
			Receiver: recv,
			Decl:     r.Decl,
			DotSpan:  dotSpan,
			NameSpan: nameSpan,
		}

	case ResultIgnoreReceiver:
		ref := newDeclRef(r.Decl, nameSpan)

		return &ast.StaticAccess{
			ExprBase: ast.NewExprBase(ref.Type()),
			ASTBase:  ast.NewASTBaseOver(recv.Span(), nameSpan),
			Receiver: recv,
			Ref:      ref,
			DotSpan:  dotSpan,
		}

	default:
		report.ReportICE("unknown member result kind: %d", r.Kind)
		return nil
	}
}

// newDeclRef builds a resolved identifier referring to the given declaration
// at the given span.
func newDeclRef(decl *types.Decl, span *report.TextSpan) *ast.Identifier {
	return &ast.Identifier{
		ExprBase: ast.NewExprBase(decl.ReferenceType()),
		ASTBase:  ast.NewASTBaseOn(span),
		Name:     decl.Name,
		Decl:     decl,
	}
}

// buildBoundMethod builds the curried application binding `recv` as the
// receiver of the method declaration: calling the result later supplies the
// remaining arguments.
func buildBoundMethod(recv ast.Expr, dotSpan, nameSpan *report.TextSpan, decl *types.Decl) ast.Expr {
	ft, ok := decl.Type.(*types.FuncType)
	if !ok || len(ft.ParamTypes) == 0 {
		report.ReportICE("bound method `%s` has no receiver parameter", decl.Name)
	}

	// Binding consumes the receiver parameter.
	boundType := &types.FuncType{
		ParamTypes: ft.ParamTypes[1:],
		ReturnType: ft.ReturnType,
	}

	return &ast.BoundMethod{
		ExprBase: ast.NewExprBase(boundType),
		ASTBase:  ast.NewASTBaseOver(recv.Span(), nameSpan),
		Receiver: recv,
		Method:   newDeclRef(decl, nameSpan),
		DotSpan:  dotSpan,
	}
}

// unwrapVariant rewrites `recv` into the expression revealing its transparent
// variant payload.  Reference wrapping survives the rewrite: a reference to
// the variant unwraps to a reference to the payload carrying the same
// qualifiers forced implicit.
func unwrapVariant(recv ast.Expr) ast.Expr {
	baseType := recv.Type()

	refType, isRef := baseType.(*types.RefType)
	if isRef {
		baseType = refType.ElemType
	}

	vt, ok := baseType.(*types.VariantType)
	if !ok || vt.TransparentPayload() == nil {
		report.ReportICE("payload unwrap on non-transparent type: %s", recv.Type().Repr())
	}

	payloadType := vt.TransparentPayload()
	if isRef {
		payloadType = makeSimilarRef(payloadType, refType)
	}

	return &ast.VariantUnwrap{
		ExprBase: ast.NewExprBase(payloadType),
		ASTBase:  ast.NewASTBaseOn(recv.Span()),
		Operand:  recv,
	}
}

// buildFieldAccess builds the projection of the tuple element at `index` out
// of `recv`.  A reference receiver projects to a reference to the element
// type carrying the receiver's qualifiers forced implicit.  An explicit dot
// span produces a syntactic field access; without one the receiver is
// implicit in source and the node spans only the field name.
func buildFieldAccess(recv ast.Expr, dotSpan, nameSpan *report.TextSpan, index int) ast.Expr {
	baseType := recv.Type()

	refType, isRef := baseType.(*types.RefType)
	if isRef {
		baseType = refType.ElemType
	}

	tt, ok := baseType.(*types.TupleType)
	if !ok {
		report.ReportICE("tuple field access on non-tuple type: %s", recv.Type().Repr())
	}

	fieldType := tt.Elements[index].Type
	if isRef {
		fieldType = makeSimilarRef(fieldType, refType)
	}

	if dotSpan != nil {
		return &ast.TupleFieldAccess{
			ExprBase:   ast.NewExprBase(fieldType),
			ASTBase:    ast.NewASTBaseOver(recv.Span(), nameSpan),
			Tuple:      recv,
			FieldIndex: index,
			DotSpan:    dotSpan,
			FieldSpan:  nameSpan,
		}
	}

	return &ast.ImplicitFieldAccess{
		ExprBase:   ast.NewExprBase(fieldType),
		ASTBase:    ast.NewASTBaseOn(nameSpan),
		Receiver:   recv,
		FieldIndex: index,
		FieldSpan:  nameSpan,
	}
}

// makeSimilarRef wraps a member's type as a reference similar to the
// receiver's reference: the qualifiers are copied with implicit forced on,
// never explicit, regardless of how the original reference was written.
func makeSimilarRef(elemType types.Type, ref *types.RefType) *types.RefType {
	return &types.RefType{
		ElemType: elemType,
		Quals:    ref.Quals | types.QualImplicit,
	}
}
