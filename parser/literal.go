package parser

import (
	"github.com/ayzg/candi/ast"
	"github.com/ayzg/candi/token"
)

// ParseLiteral dispatches a single leaf token — a literal of any kind, an
// identifier, or `none` — to its one-token AST node (§4.4 "None",
// §3.2 literal kinds).
func ParseLiteral(toks []token.Token, begin, end int) Result {
	tok := at(toks, begin, end)
	switch tok.Kind {
	case token.STRING_LITERAL, token.NUMBER_LITERAL, token.REAL_LITERAL,
		token.ALNUMUS, token.NONE_LITERAL, token.UNSIGNED_LITERAL,
		token.OCTET_LITERAL, token.BIT_LITERAL:
		return success(toNode(toks, begin), begin+1)
	default:
		return fail("parse_literal", toks, begin, end, "invalid literal")
	}
}

// ParseOperand parses a single value-expression operand at begin: a literal,
// identifier, unary-prefixed operand, or parenthesized subexpression, with
// any trailing `.name`/`(...)` suffix chain folded in (§4.3, exposed per §6
// as `parse_operand`).
func ParseOperand(toks []token.Token, begin, end int) Result {
	pos := begin
	node := parseOperand(toks, &pos, end)
	return success(node, pos)
}

// ParseArguments splits a call's already-bracketed `(...)` scope into
// individual argument expressions (§6 `parse_arguments`).
func ParseArguments(toks []token.Token, begin, end int) Result {
	scope := FindParenScope(toks, begin, end)
	if !scope.OK {
		return fail("parse_arguments", toks, begin, end, "mismatched parenthesis in argument list")
	}
	args := buildArguments(toks, scope)
	return success(args, scope.ScopeEnd)
}

// ParseValueStatement parses an expression-statement terminated by `;`
// starting at begin, returning the `expression_` node and a cursor one past
// the terminating token (§6 `parse_value_statement`). Unlike FindStatement's
// usual callers (a directive keyword or an `=` that is itself excluded from
// the parsed range), begin here is the expression's own first token, so the
// terminating `;` is found directly rather than reusing FindStatement's
// skip-the-opener convention.
func ParseValueStatement(toks []token.Token, begin, end int) Result {
	depth := 0
	i := begin
	for i < end {
		k := at(toks, i, end).Kind
		switch {
		case isOpenBracket(k):
			depth++
		case isCloseBracket(k):
			depth--
		case depth == 0 && k == token.EOS:
			expr := ast.New(ast.Expression, "", tokSpan(toks, begin, i))
			expr.Push(BuildStatement(toks, begin, i))
			return success(expr, i+1)
		}
		i++
	}
	return fail("parse_value_statement", toks, begin, end, "missing ';' terminating statement")
}
