// Package ast provides the abstract syntax tree node definitions for the
// Rowan compiler.  This subsystem only produces the nodes member resolution
// synthesizes: receivers, declaration references, and the access forms built
// over them.
package ast

import "rowanc/report"

// ASTNode represents a node in the AST.
type ASTNode interface {
	// Span returns the text span over which the node extends in source text.
	Span() *report.TextSpan
}

// ASTBase is the base struct for all AST nodes.
type ASTBase struct {
	span *report.TextSpan
}

// NewASTBaseOn creates a new AST base node over the given span.
func NewASTBaseOn(span *report.TextSpan) ASTBase {
	return ASTBase{span: span}
}

// NewASTBaseOver creates a new AST base node spanning from start to end.
func NewASTBaseOver(start, end *report.TextSpan) ASTBase {
	return ASTBase{span: report.NewSpanOver(start, end)}
}

func (ab *ASTBase) Span() *report.TextSpan {
	return ab.span
}
