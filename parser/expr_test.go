package parser

import (
	"strings"
	"testing"

	"github.com/ayzg/candi/ast"
	"github.com/ayzg/candi/lexer"
	"github.com/ayzg/candi/token"
)

func mustTokenize(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, err := lexer.Tokenize(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", src, err)
	}
	return toks
}

func TestParseValueStatementSimpleArithmetic(t *testing.T) {
	toks := mustTokenize(t, "1+1;")
	res := ParseValueStatement(toks, 0, len(toks))
	if !res.OK {
		t.Fatalf("ParseValueStatement failed: %v", res.Diagnostic)
	}
	expr := res.Node.Child(0)
	if expr.Kind != ast.Addition {
		t.Fatalf("got kind %s, want addition", expr.Kind)
	}
}

func TestParseValueStatementParenPrecedence(t *testing.T) {
	toks := mustTokenize(t, "(1+1)*1;")
	res := ParseValueStatement(toks, 0, len(toks))
	if !res.OK {
		t.Fatalf("ParseValueStatement failed: %v", res.Diagnostic)
	}
	top := res.Node.Child(0)
	if top.Kind != ast.Multiplication {
		t.Fatalf("got kind %s, want multiplication", top.Kind)
	}
	if top.Child(0).Kind != ast.Addition {
		t.Fatalf("got lhs kind %s, want addition", top.Child(0).Kind)
	}
}

func TestParseValueStatementChainedAssignment(t *testing.T) {
	toks := mustTokenize(t, "a=b=c;")
	res := ParseValueStatement(toks, 0, len(toks))
	if !res.OK {
		t.Fatalf("ParseValueStatement failed: %v", res.Diagnostic)
	}
	top := res.Node.Child(0)
	if top.Kind != ast.SimpleAssignment {
		t.Fatalf("got kind %s, want simple_assignment", top.Kind)
	}
	rhs := top.Child(1)
	if rhs.Kind != ast.SimpleAssignment {
		t.Fatalf("assignment should nest right-associatively, got %s", rhs.Kind)
	}
}

func TestParseValueStatementLeftAssociativeSubtraction(t *testing.T) {
	toks := mustTokenize(t, "a+b-c;")
	res := ParseValueStatement(toks, 0, len(toks))
	if !res.OK {
		t.Fatalf("ParseValueStatement failed: %v", res.Diagnostic)
	}
	top := res.Node.Child(0)
	if top.Kind != ast.Subtraction {
		t.Fatalf("got kind %s, want subtraction (left-associative)", top.Kind)
	}
	if top.Child(0).Kind != ast.Addition {
		t.Fatalf("got lhs kind %s, want addition", top.Child(0).Kind)
	}
}

func TestParseValueStatementPrecedenceMultiplyOverAdd(t *testing.T) {
	toks := mustTokenize(t, "1+1*1;")
	res := ParseValueStatement(toks, 0, len(toks))
	if !res.OK {
		t.Fatalf("ParseValueStatement failed: %v", res.Diagnostic)
	}
	top := res.Node.Child(0)
	if top.Kind != ast.Addition {
		t.Fatalf("got kind %s, want addition", top.Kind)
	}
	if top.Child(1).Kind != ast.Multiplication {
		t.Fatalf("got rhs kind %s, want multiplication", top.Child(1).Kind)
	}
}

func TestParseValueStatementFunctionCall(t *testing.T) {
	toks := mustTokenize(t, "foo();")
	res := ParseValueStatement(toks, 0, len(toks))
	if !res.OK {
		t.Fatalf("ParseValueStatement failed: %v", res.Diagnostic)
	}
	top := res.Node.Child(0)
	if top.Kind != ast.FunctionCall {
		t.Fatalf("got kind %s, want function_call", top.Kind)
	}
}

func TestParseValueStatementMemberCallChain(t *testing.T) {
	toks := mustTokenize(t, "a.b().c;")
	res := ParseValueStatement(toks, 0, len(toks))
	if !res.OK {
		t.Fatalf("ParseValueStatement failed: %v", res.Diagnostic)
	}
	top := res.Node.Child(0)
	if top.Kind != ast.Period {
		t.Fatalf("got kind %s, want period (outer .c)", top.Kind)
	}
	if top.Child(1).Literal != "c" {
		t.Fatalf("got rhs literal %q, want %q", top.Child(1).Literal, "c")
	}

	call := top.Child(0)
	if call.Kind != ast.FunctionCall {
		t.Fatalf("got lhs kind %s, want function_call (the a.b() call)", call.Kind)
	}

	callee := call.Child(0)
	if callee.Kind != ast.Period {
		t.Fatalf("got callee kind %s, want period (a.b)", callee.Kind)
	}
	if callee.Child(0).Literal != "a" || callee.Child(1).Literal != "b" {
		t.Fatalf("got callee children %q.%q, want a.b", callee.Child(0).Literal, callee.Child(1).Literal)
	}
}

func TestParseValueStatementUnaryBindsLooserThanMemberAccess(t *testing.T) {
	toks := mustTokenize(t, "-a.b;")
	res := ParseValueStatement(toks, 0, len(toks))
	if !res.OK {
		t.Fatalf("ParseValueStatement failed: %v", res.Diagnostic)
	}
	top := res.Node.Child(0)
	if top.Kind != ast.Negation {
		t.Fatalf("got kind %s, want negation wrapping the whole member access", top.Kind)
	}
	inner := top.Child(0)
	if inner.Kind != ast.Period {
		t.Fatalf("got negation's operand kind %s, want period (a.b binds first)", inner.Kind)
	}
	if inner.Child(0).Literal != "a" || inner.Child(1).Literal != "b" {
		t.Fatalf("got period children %q.%q, want a.b", inner.Child(0).Literal, inner.Child(1).Literal)
	}
}

func TestParseValueStatementMissingTerminator(t *testing.T) {
	toks := mustTokenize(t, "1+1")
	res := ParseValueStatement(toks, 0, len(toks))
	if res.OK {
		t.Fatalf("expected failure parsing a statement with no terminating ';'")
	}
}
