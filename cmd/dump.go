package cmd

import (
	"fmt"
	"strings"

	"rowanc/ast"
	"rowanc/sema"
)

// reprResult renders one member lookup candidate for display.
func reprResult(r sema.MemberResult) string {
	switch r.Kind {
	case sema.ResultPassReceiver:
		return fmt.Sprintf("instance member `%s`: %s", r.Decl.Name, r.Decl.Type.Repr())
	case sema.ResultIgnoreReceiver:
		return fmt.Sprintf("static member `%s`: %s", r.Decl.Name, r.Decl.Type.Repr())
	case sema.ResultTupleField:
		return fmt.Sprintf("tuple field %d", r.FieldIndex)
	default:
		return fmt.Sprintf("payload field %d", r.FieldIndex)
	}
}

// dumpExpr renders the synthesized access expression as an indented tree.
func dumpExpr(expr ast.Expr) string {
	sb := strings.Builder{}
	dumpExprInto(&sb, expr, 0)
	return sb.String()
}

func dumpExprInto(sb *strings.Builder, expr ast.Expr, indent int) {
	pad := strings.Repeat("  ", indent)

	typeRepr := "<unresolved>"
	if expr.Type() != nil {
		typeRepr = expr.Type().Repr()
	}

	switch v := expr.(type) {
	case *ast.Identifier:
		fmt.Fprintf(sb, "%sidentifier `%s`: %s\n", pad, v.Name, typeRepr)
	case *ast.BoundMethod:
		fmt.Fprintf(sb, "%sbound-method `%s`: %s\n", pad, v.Method.Name, typeRepr)
		dumpExprInto(sb, v.Receiver, indent+1)
	case *ast.MemberRef:
		fmt.Fprintf(sb, "%smember-ref `%s`: %s\n", pad, v.Decl.Name, typeRepr)
		dumpExprInto(sb, v.Receiver, indent+1)
	case *ast.StaticAccess:
		fmt.Fprintf(sb, "%sstatic-access `%s`: %s\n", pad, v.Ref.Name, typeRepr)
		dumpExprInto(sb, v.Receiver, indent+1)
	case *ast.TupleFieldAccess:
		fmt.Fprintf(sb, "%stuple-field %d: %s\n", pad, v.FieldIndex, typeRepr)
		dumpExprInto(sb, v.Tuple, indent+1)
	case *ast.ImplicitFieldAccess:
		fmt.Fprintf(sb, "%simplicit-field %d: %s\n", pad, v.FieldIndex, typeRepr)
		dumpExprInto(sb, v.Receiver, indent+1)
	case *ast.VariantUnwrap:
		fmt.Fprintf(sb, "%svariant-unwrap: %s\n", pad, typeRepr)
		dumpExprInto(sb, v.Operand, indent+1)
	case *ast.OverloadedRef:
		fmt.Fprintf(sb, "%soverload-set `%s` (%d candidates)\n", pad, v.Decls[0].Name, len(v.Decls))
		for _, decl := range v.Decls {
			fmt.Fprintf(sb, "%s  - %s\n", pad, decl.Type.Repr())
		}
		dumpExprInto(sb, v.Receiver, indent+1)
	}
}
