package parser

import (
	"github.com/ayzg/candi/ast"
	"github.com/ayzg/candi/report"
	"github.com/ayzg/candi/token"
)

// parseStatement runs one directive parser for the statement beginning at i,
// recovering a panicked *report.Diagnostic (§7's "thrown as fatal" expression
// and scope errors) into an ordinary failing Result instead of letting it
// escape the block. This is the block/statement boundary spec.md requires
// such errors be non-recoverable no further than.
func parseStatement(toks []token.Token, i, end int, parse func([]token.Token, int, int) Result) (stmt Result) {
	defer func() {
		if x := recover(); x == nil {
			return
		} else if diag, ok := x.(*report.Diagnostic); ok {
			stmt = Result{Node: ast.New(ast.Invalid, "", diag.Span), NextCursor: i, OK: false, Diagnostic: diag}
		} else {
			panic(x)
		}
	}()
	return parse(toks, i, end)
}

// ParseIdentifierStatement parses an identifier-led assignment statement
// `<alnumus> = <expr>;` (§4.4, §4.6). The source material's version only
// accepted a number literal on the right-hand side and flagged itself
// "temporary"; this builds the full value expression instead, as its own
// comment calls for.
func ParseIdentifierStatement(toks []token.Token, begin, end int) Result {
	if at(toks, begin, end).Kind != token.ALNUMUS {
		return fail("parse_identifier_statement", toks, begin, end, "expected an identifier")
	}
	if at(toks, begin+1, end).Kind != token.SIMPLE_ASSIGNMENT {
		return fail("parse_identifier_statement", toks, begin+1, end, "expected '=' after identifier")
	}

	scope := FindStatement(toks, token.SIMPLE_ASSIGNMENT, token.EOS, begin+1, end)
	if !scope.OK {
		return fail("parse_identifier_statement", toks, begin+1, end, "missing ';' terminating assignment")
	}
	rhs := BuildStatement(toks, scope.ContainedBegin, scope.ContainedEnd)

	node := ast.New(ast.SimpleAssignment, "", tokSpan(toks, begin, scope.ScopeEnd))
	node.Push(toNode(toks, begin))
	node.Push(rhs)
	return success(node, scope.ScopeEnd)
}

// ParsePragmaticBlock parses a sequence of declarations terminated at `eof`
// or the enclosing `}` (§4.6). Each statement must begin with an identifier,
// `#type`, `#var`, `#class`, or `#func`.
func ParsePragmaticBlock(toks []token.Token, begin, end int) Result {
	node := ast.New(ast.PragmaticBlock, "", tokSpan(toks, begin, end))

	i := begin
	for i < end && at(toks, i, end).Kind != token.EOF {
		var stmt Result
		switch at(toks, i, end).Kind {
		case token.ALNUMUS:
			stmt = parseStatement(toks, i, end, ParseIdentifierStatement)
		case token.TYPE:
			stmt = parseStatement(toks, i, end, ParseDirectiveType)
		case token.VAR:
			stmt = parseStatement(toks, i, end, ParseDirectiveVar)
		case token.CLASS:
			stmt = parseStatement(toks, i, end, ParseDirectiveClass)
		case token.FUNC:
			stmt = parseStatement(toks, i, end, ParseDirectiveFunc)
		default:
			return fail("parse_pragmatic_block", toks, i, end, "invalid statement")
		}
		if !stmt.OK {
			return wrap("parse_pragmatic_block", toks, i, end, "invalid statement", stmt)
		}
		node.Push(stmt.Node)
		i = stmt.NextCursor
	}

	return success(node, i)
}

// ParseFunctionalBlock parses a sequence of executable statements terminated
// at `eof` or the enclosing `}` (§4.6). Each statement must begin with an
// identifier, `#var`, or `#return`; `#if`/`#while`/`#for`/`#on` extend this
// set (§4.4).
func ParseFunctionalBlock(toks []token.Token, begin, end int) Result {
	node := ast.New(ast.FunctionalBlock, "", tokSpan(toks, begin, end))

	i := begin
	for i < end && at(toks, i, end).Kind != token.EOF {
		var stmt Result
		switch at(toks, i, end).Kind {
		case token.ALNUMUS:
			stmt = parseStatement(toks, i, end, ParseIdentifierStatement)
		case token.VAR:
			stmt = parseStatement(toks, i, end, ParseDirectiveVar)
		case token.RETURN:
			stmt = parseStatement(toks, i, end, ParseDirectiveReturn)
		case token.IF:
			stmt = parseStatement(toks, i, end, ParseDirectiveIf)
		case token.WHILE:
			stmt = parseStatement(toks, i, end, ParseDirectiveWhile)
		case token.FOR:
			stmt = parseStatement(toks, i, end, ParseDirectiveFor)
		case token.ON:
			stmt = parseStatement(toks, i, end, ParseDirectiveOn)
		default:
			return fail("parse_functional_block", toks, i, end, "invalid statement")
		}
		if !stmt.OK {
			return wrap("parse_functional_block", toks, i, end, "invalid statement", stmt)
		}
		node.Push(stmt.Node)
		i = stmt.NextCursor
	}

	return success(node, i)
}
