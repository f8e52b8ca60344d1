package sema

import (
	"testing"

	"rowanc/ast"
	"rowanc/report"
	"rowanc/types"
)

// newRecv builds a receiver identifier of the given type spanning the start
// of a query line.
func newRecv(typ types.Type) *ast.Identifier {
	return &ast.Identifier{
		ExprBase: ast.NewExprBase(typ),
		ASTBase:  ast.NewASTBaseOn(&report.TextSpan{EndCol: 2}),
		Name:     "recv",
	}
}

func testSpans() (*report.TextSpan, *report.TextSpan) {
	dotSpan := &report.TextSpan{StartCol: 3, EndCol: 3}
	nameSpan := &report.TextSpan{StartCol: 4, EndCol: 8}
	return dotSpan, nameSpan
}

func buildFor(t *testing.T, baseType types.Type, name string, fix *fixture) ast.Expr {
	t.Helper()

	ml := LookupMember(baseType, name, fix.mod)
	if !ml.Found() {
		t.Fatalf("expected `%s` to resolve", name)
	}

	recv := newRecv(baseType)
	dotSpan, nameSpan := testSpans()
	return ml.BuildAccessExpr(recv, dotSpan, nameSpan)
}

func assertType(t *testing.T, expr ast.Expr, expected types.Type) {
	t.Helper()

	if expr.Type() == nil || !types.Equals(expr.Type(), expected) {
		t.Fatalf("expected expression type %s", expected.Repr())
	}
}

/* -------------------------------------------------------------------------- */

func TestBuildTupleFieldAccess(t *testing.T) {
	fix := newFixture()

	expr := buildFor(t, fix.vec, "y", fix)

	access, ok := expr.(*ast.TupleFieldAccess)
	if !ok {
		t.Fatalf("expected a tuple field access, not %T", expr)
	}

	if access.FieldIndex != 1 {
		t.Errorf("expected field index 1, not %d", access.FieldIndex)
	}

	assertType(t, access, types.PrimTypeF64)

	// the node spans from the receiver through the member name
	if access.Span().StartCol != 0 || access.Span().EndCol != 8 {
		t.Errorf("expected the access to span the whole query, not %v", access.Span())
	}
}

func TestBuildImplicitFieldAccess(t *testing.T) {
	fix := newFixture()

	ml := LookupMember(fix.vec, "x", fix.mod)
	_, nameSpan := testSpans()

	// no dot span: the receiver does not appear in source
	expr := ml.BuildAccessExpr(newRecv(fix.vec), nil, nameSpan)

	access, ok := expr.(*ast.ImplicitFieldAccess)
	if !ok {
		t.Fatalf("expected an implicit field access, not %T", expr)
	}

	if access.FieldIndex != 0 {
		t.Errorf("expected field index 0, not %d", access.FieldIndex)
	}

	assertType(t, access, types.PrimTypeF64)

	// the node spans only the member name
	if access.Span() != nameSpan {
		t.Errorf("expected the access to span only the name, not %v", access.Span())
	}
}

func TestBuildFieldAccessThroughRef(t *testing.T) {
	fix := newFixture()

	refType := &types.RefType{ElemType: fix.vec, Quals: types.QualNonSettable}
	expr := buildFor(t, refType, "x", fix)

	access, ok := expr.(*ast.TupleFieldAccess)
	if !ok {
		t.Fatalf("expected a tuple field access, not %T", expr)
	}

	// the projection stays a reference and its qualifiers are forced implicit
	assertType(t, access, &types.RefType{
		ElemType: types.PrimTypeF64,
		Quals:    types.QualNonSettable | types.QualImplicit,
	})
}

func TestBuildPayloadFieldAccess(t *testing.T) {
	fix := newFixture()

	expr := buildFor(t, fix.span, "start", fix)

	access, ok := expr.(*ast.TupleFieldAccess)
	if !ok {
		t.Fatalf("expected a tuple field access, not %T", expr)
	}

	unwrap, ok := access.Tuple.(*ast.VariantUnwrap)
	if !ok {
		t.Fatalf("expected the receiver to be unwrapped first, not %T", access.Tuple)
	}

	assertType(t, unwrap, fix.span.TransparentPayload())
	assertType(t, access, types.PrimTypeI64)

	// the unwrap spans exactly its operand
	if unwrap.Span() != unwrap.Operand.Span() {
		t.Error("expected the unwrap to span its operand")
	}
}

func TestBuildPayloadFieldAccessThroughRef(t *testing.T) {
	fix := newFixture()

	refType := &types.RefType{ElemType: fix.span}
	expr := buildFor(t, refType, "end", fix)

	access, ok := expr.(*ast.TupleFieldAccess)
	if !ok {
		t.Fatalf("expected a tuple field access, not %T", expr)
	}

	// both the unwrap and the projection stay references
	unwrap := access.Tuple.(*ast.VariantUnwrap)
	assertType(t, unwrap, &types.RefType{
		ElemType: fix.span.TransparentPayload(),
		Quals:    types.QualImplicit,
	})
	assertType(t, access, &types.RefType{
		ElemType: types.PrimTypeI64,
		Quals:    types.QualImplicit,
	})
}

func TestBuildBoundMethod(t *testing.T) {
	fix := newFixture()

	scaleDecl := fix.method("scale", fix.vec, types.PrimTypeF64)
	fix.mod.RegisterExtension(fix.vec, scaleDecl)

	expr := buildFor(t, fix.vec, "scale", fix)

	bound, ok := expr.(*ast.BoundMethod)
	if !ok {
		t.Fatalf("expected a bound method, not %T", expr)
	}

	if bound.Method.Decl != scaleDecl {
		t.Error("expected the method reference to carry the declaration")
	}

	// binding consumes the receiver parameter
	assertType(t, bound, &types.FuncType{
		ParamTypes: []types.Type{types.PrimTypeF64},
		ReturnType: types.PrimTypeUnit,
	})

	// the method identifier itself keeps the full declared type
	assertType(t, bound.Method, scaleDecl.Type)
}

func TestBuildMemberRef(t *testing.T) {
	fix := newFixture()

	magDecl := &types.Decl{Name: "mag", ParentID: fix.mod.ID, Type: types.PrimTypeF64, DefKind: types.DefKindVar, Public: true}
	fix.mod.RegisterExtension(fix.vec, magDecl)

	expr := buildFor(t, fix.vec, "mag", fix)

	ref, ok := expr.(*ast.MemberRef)
	if !ok {
		t.Fatalf("expected a member reference, not %T", expr)
	}

	if ref.Decl != magDecl {
		t.Error("expected the member reference to carry the declaration")
	}

	assertType(t, ref, types.PrimTypeF64)
}

func TestBuildStaticAccess(t *testing.T) {
	fix := newFixture()

	expr := buildFor(t, fix.writer, "open", fix)

	access, ok := expr.(*ast.StaticAccess)
	if !ok {
		t.Fatalf("expected a static access, not %T", expr)
	}

	if access.Ref.Decl != fix.writer.Members[2] {
		t.Error("expected the reference to carry the declaration")
	}

	// the receiver is retained even though its value is unused
	if access.Receiver == nil {
		t.Error("expected the receiver to be retained")
	}

	assertType(t, access, fix.writer.Members[2].Type)
}

func TestBuildCaseConstructorAccess(t *testing.T) {
	fix := newFixture()

	expr := buildFor(t, &types.MetaType{Instance: fix.color}, "Blue", fix)

	access, ok := expr.(*ast.StaticAccess)
	if !ok {
		t.Fatalf("expected a static access, not %T", expr)
	}

	if access.Ref.Decl != fix.color.CaseByName("Blue").Decl {
		t.Error("expected the reference to carry the constructor declaration")
	}

	// a payload-less constructor is a value of the variant type
	assertType(t, access, fix.color)
}

func TestBuildTypeReferenceAccess(t *testing.T) {
	fix := newFixture()

	unitDecl := &types.Decl{Name: "Unit", ParentID: fix.mod.ID, Type: types.PrimTypeF64, DefKind: types.DefKindType, IsStatic: true, Public: true}
	fix.mod.RegisterExtension(fix.vec, unitDecl)

	expr := buildFor(t, fix.vec, "Unit", fix)

	access, ok := expr.(*ast.StaticAccess)
	if !ok {
		t.Fatalf("expected a static access, not %T", expr)
	}

	// referencing a type declaration yields a type-value
	assertType(t, access, &types.MetaType{Instance: types.PrimTypeF64})
}

func TestBuildOverloadSet(t *testing.T) {
	fix := newFixture()

	first := fix.method("scale", fix.vec, types.PrimTypeF64)
	second := fix.method("scale", fix.vec, types.PrimTypeI64)
	fix.mod.RegisterExtension(fix.vec, first)
	fix.mod.RegisterExtension(fix.vec, second)

	expr := buildFor(t, fix.vec, "scale", fix)

	overload, ok := expr.(*ast.OverloadedRef)
	if !ok {
		t.Fatalf("expected an overload set, not %T", expr)
	}

	if len(overload.Decls) != 2 || overload.Decls[0] != first || overload.Decls[1] != second {
		t.Error("expected the overload set in discovery order")
	}

	// the type stays unresolved until arguments select an overload
	if overload.Type() != nil {
		t.Errorf("expected an unresolved type, not %s", overload.Type().Repr())
	}
}

func TestBuildOverloadSetKeepsDuplicates(t *testing.T) {
	fix := newFixture()

	dup := fix.method("scale", fix.vec, types.PrimTypeF64)
	fix.mod.RegisterExtension(fix.vec, dup)
	fix.mod.RegisterExtension(fix.vec, dup)

	expr := buildFor(t, fix.vec, "scale", fix)

	overload, ok := expr.(*ast.OverloadedRef)
	if !ok {
		t.Fatalf("expected an overload set, not %T", expr)
	}

	if len(overload.Decls) != 2 || overload.Decls[0] != dup || overload.Decls[1] != dup {
		t.Error("expected the duplicate declaration to appear twice")
	}
}
