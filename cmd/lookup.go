package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"rowanc/ast"
	"rowanc/depm"
	"rowanc/report"
	"rowanc/sema"
	"rowanc/types"
	"rowanc/util"

	"github.com/ComedicChimera/olive"
)

// execLookupCommand executes the `lookup` subcommand: it resolves a member
// access query of the form `recv.member` against the playground module and
// prints the candidate list and the synthesized expression.
func execLookupCommand(result *olive.ArgParseResult) {
	query, _ := result.PrimaryArg()

	dot := strings.IndexByte(query, '.')
	if dot <= 0 || dot == len(query)-1 {
		report.PrintErrorMessage("CLI Usage Error", errors.New("query must be written `recv.member`"))
		return
	}

	recvName, memberName := query[:dot], query[dot+1:]

	mod, ok := lookupModule(result)
	if !ok {
		return
	}

	populateShowcase(mod)
	if !report.ShouldProceed() {
		return
	}

	baseType, ok := receiverType(query, recvName, mod, result.HasFlag("static"), result.HasFlag("byref"))
	if !ok {
		return
	}

	// the spans of the three pieces of the query text
	recvSpan := &report.TextSpan{StartLine: 0, StartCol: 0, EndLine: 0, EndCol: dot - 1}
	dotSpan := &report.TextSpan{StartLine: 0, StartCol: dot, EndLine: 0, EndCol: dot}
	nameSpan := &report.TextSpan{StartLine: 0, StartCol: dot + 1, EndLine: 0, EndCol: len(query) - 1}

	ml := sema.LookupMember(baseType, memberName, mod)
	if !ml.Found() {
		report.ReportSourceError(query, "<query>", nameSpan, "type `%s` has no member named `%s`", baseType.Repr(), memberName)
		return
	}

	report.PrintInfoMessage("Resolved", fmt.Sprintf("`%s` with %d candidate(s)", query, len(ml.Results())))
	for i, line := range util.Map(ml.Results(), reprResult) {
		fmt.Printf("  %d. %s\n", i+1, line)
	}

	recv := &ast.Identifier{
		ExprBase: ast.NewExprBase(baseType),
		ASTBase:  ast.NewASTBaseOn(recvSpan),
		Name:     recvName,
	}

	fmt.Println()
	fmt.Print(dumpExpr(ml.BuildAccessExpr(recv, dotSpan, nameSpan)))
}

// lookupModule assembles the module the lookup runs against: the module named
// by `--mod-path` if one is given, an unnamed scratch module otherwise.
func lookupModule(result *olive.ArgParseResult) (*depm.Module, bool) {
	if pathArgVal, ok := result.Arguments["mod-path"]; ok {
		modPath, err := filepath.Abs(pathArgVal.(string))
		if err != nil {
			report.PrintErrorMessage("Path Error", err)
			return nil, false
		}

		mod, ok := depm.LoadModule(modPath)
		return mod, ok
	}

	workDir, err := os.Getwd()
	if err != nil {
		report.PrintErrorMessage("Path Error", err)
		return nil, false
	}

	return depm.NewModule("showcase", workDir), true
}

// receiverType resolves the receiver segment of the query to the type the
// lookup dispatches on.
func receiverType(query, recvName string, mod *depm.Module, static, byref bool) (types.Type, bool) {
	// the module's own name gives a module reference
	if recvName == mod.Name {
		return &types.ModuleType{M: mod}, true
	}

	var instType types.Type
	if decl, ok := depm.NewUniverse().GetSymbol(recvName); ok {
		instType = decl.Type
	} else if decls, ok := mod.GlobalTable.Lookup(recvName); ok && decls[0].DefKind == types.DefKindType {
		instType = decls[0].Type
	} else {
		span := &report.TextSpan{StartLine: 0, StartCol: 0, EndLine: 0, EndCol: len(recvName) - 1}
		report.ReportSourceError(query, "<query>", span, "undefined type: `%s`", recvName)
		return nil, false
	}

	if static {
		return &types.MetaType{Instance: instType}, true
	}

	if byref {
		return &types.RefType{ElemType: instType}, true
	}

	return instType, true
}
