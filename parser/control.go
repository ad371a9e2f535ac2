package parser

import (
	"github.com/ayzg/candi/ast"
	"github.com/ayzg/candi/token"
)

// ParseDirectiveReturn parses `#return <expr>;`, whose body is parsed by the
// expression builder (§4.4).
func ParseDirectiveReturn(toks []token.Token, begin, end int) Result {
	if at(toks, begin, end).Kind != token.RETURN {
		return fail("parse_directive_return", toks, begin, end, "expected a return directive")
	}

	scope := FindStatement(toks, token.RETURN, token.EOS, begin, end)
	if !scope.OK {
		return fail("parse_directive_return", toks, begin, end, "missing ';' terminating return statement")
	}

	expr := ast.New(ast.Expression, "", tokSpan(toks, scope.ContainedBegin, scope.ContainedEnd))
	expr.Push(BuildStatement(toks, scope.ContainedBegin, scope.ContainedEnd))

	node := ast.New(ast.Return, "", tokSpan(toks, scope.ScopeBegin, scope.ScopeEnd))
	node.Push(expr)
	return success(node, scope.ScopeEnd)
}

// ParseDirectiveIf parses `#if <cond> {body}` with any chain of `#elif`/
// `#else` siblings (§4.4). The sibling chain is folded into nested `if_`
// children: an `#elif` becomes a nested if_ node, a trailing `#else` a bare
// functional_block_ node.
func ParseDirectiveIf(toks []token.Token, begin, end int) Result {
	return parseConditionalHeaded(toks, begin, end, token.IF, ast.If, true)
}

// ParseDirectiveWhile parses `#while <cond> {body}` (§4.4).
func ParseDirectiveWhile(toks []token.Token, begin, end int) Result {
	return parseConditionalHeaded(toks, begin, end, token.WHILE, ast.While, false)
}

// ParseDirectiveFor parses `#for <selector> {body}` (§4.4).
func ParseDirectiveFor(toks []token.Token, begin, end int) Result {
	return parseConditionalHeaded(toks, begin, end, token.FOR, ast.For, false)
}

// ParseDirectiveOn parses `#on <selector> {body}` (§4.4).
func ParseDirectiveOn(toks []token.Token, begin, end int) Result {
	return parseConditionalHeaded(toks, begin, end, token.ON, ast.On, false)
}

// parseConditionalHeaded implements the shared shape spec.md describes for
// `#if`/`#while`/`#for`/`#on`: a condition/selector expression, then a `{…}`
// functional block. allowSiblings enables the `#elif`/`#else` chain, which
// only `#if` supports.
func parseConditionalHeaded(toks []token.Token, begin, end int, directiveKind int, kind ast.Kind, allowSiblings bool) Result {
	if at(toks, begin, end).Kind != directiveKind {
		return fail("parse_conditional", toks, begin, end, "expected directive kind %q", token.KindName(directiveKind))
	}

	i := begin + 1
	condBegin := i
	for {
		tok := at(toks, i, end)
		if tok.Kind == token.OPEN_LIST {
			break
		}
		if tok.Kind == token.EOF {
			return fail("parse_conditional", toks, i, end, "missing '{' introducing block body")
		}
		i++
	}
	if i == condBegin {
		return fail("parse_conditional", toks, condBegin, end, "missing condition expression")
	}
	cond := BuildStatement(toks, condBegin, i)

	bodyScope := FindListScope(toks, i, end)
	if !bodyScope.OK {
		return fail("parse_conditional", toks, i, end, "mismatched block braces")
	}
	body := ParseFunctionalBlock(toks, bodyScope.ContainedBegin, bodyScope.ContainedEnd)
	if !body.OK {
		return wrap("parse_conditional", toks, bodyScope.ContainedBegin, end, "invalid block body", body)
	}

	node := ast.New(kind, "", tokSpan(toks, begin, bodyScope.ScopeEnd))
	node.Push(cond)
	node.Push(body.Node)
	next := bodyScope.ScopeEnd

	if allowSiblings {
		switch at(toks, next, end).Kind {
		case token.ELIF:
			sibling := parseConditionalHeaded(toks, next, end, token.ELIF, ast.If, true)
			if !sibling.OK {
				return wrap("parse_conditional", toks, next, end, "invalid elif clause", sibling)
			}
			node.Push(sibling.Node)
			next = sibling.NextCursor
		case token.ELSE:
			elseBodyStart := next + 1
			if at(toks, elseBodyStart, end).Kind != token.OPEN_LIST {
				return fail("parse_conditional", toks, elseBodyStart, end, "expected '{' introducing else block")
			}
			elseScope := FindListScope(toks, elseBodyStart, end)
			if !elseScope.OK {
				return fail("parse_conditional", toks, elseBodyStart, end, "mismatched else block braces")
			}
			elseBody := ParseFunctionalBlock(toks, elseScope.ContainedBegin, elseScope.ContainedEnd)
			if !elseBody.OK {
				return wrap("parse_conditional", toks, elseScope.ContainedBegin, end, "invalid else block", elseBody)
			}
			node.Push(elseBody.Node)
			next = elseScope.ScopeEnd
		}
	}

	return success(node, next)
}
