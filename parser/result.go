package parser

import (
	"github.com/ayzg/candi/ast"
	"github.com/ayzg/candi/report"
	"github.com/ayzg/candi/token"
)

// Result is the outcome of a parsing step (§3.3): either a node and the
// cursor position one past the consumed tokens, or a failure carrying an
// accumulated diagnostic chain.
type Result struct {
	Node       *ast.Node
	NextCursor int
	OK         bool
	Diagnostic *report.Diagnostic
}

// success builds a successful Result.
func success(node *ast.Node, next int) Result {
	return Result{Node: node, NextCursor: next, OK: true}
}

// fail builds a failing Result whose Node is the invalid marker, recording
// the offending token and message as a fresh diagnostic frame.
func fail(production string, toks []token.Token, offendingIdx, end int, msg string, args ...interface{}) Result {
	tok := at(toks, offendingIdx, end+1)
	return Result{
		Node:       ast.New(ast.Invalid, "", tok.Span),
		NextCursor: offendingIdx,
		OK:         false,
		Diagnostic: report.Raise(production, tok.Span, msg, args...),
	}
}

// wrap re-raises an existing failing Result's diagnostic under a new
// production frame, accumulating the chain (§3.3).
func wrap(production string, toks []token.Token, at_ int, end int, msg string, inner Result) Result {
	tok := at(toks, at_, end+1)
	return Result{
		Node:       ast.New(ast.Invalid, "", tok.Span),
		NextCursor: inner.NextCursor,
		OK:         false,
		Diagnostic: report.Wrap(production, tok.Span, msg, inner.Diagnostic),
	}
}
