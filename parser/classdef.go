package parser

import (
	"github.com/ayzg/candi/ast"
	"github.com/ayzg/candi/token"
)

// ParseDirectiveClass parses `#class Name { <pragmatic-block> };`; the body
// is parsed by the pragmatic-block parser (§4.4).
func ParseDirectiveClass(toks []token.Token, begin, end int) Result {
	if at(toks, begin, end).Kind != token.CLASS {
		return fail("parse_directive_class", toks, begin, end, "expected a class directive")
	}

	i := begin + 1
	if at(toks, i, end).Kind != token.ALNUMUS {
		return fail("parse_directive_class", toks, i, end, "expected a class name after #class")
	}
	nameNode := toNode(toks, i)
	i++

	if at(toks, i, end).Kind != token.OPEN_LIST {
		return fail("parse_directive_class", toks, i, end, "expected '{' opening class body")
	}
	bodyScope := FindListScope(toks, i, end)
	if !bodyScope.OK {
		return fail("parse_directive_class", toks, i, end, "mismatched class body braces")
	}

	body := ParsePragmaticBlock(toks, bodyScope.ContainedBegin, bodyScope.ContainedEnd)
	if !body.OK {
		return wrap("parse_directive_class", toks, bodyScope.ContainedBegin, end, "invalid class body", body)
	}

	if at(toks, bodyScope.ScopeEnd, end).Kind != token.EOS {
		return fail("parse_directive_class", toks, bodyScope.ScopeEnd, end, "expected ';' terminating class definition")
	}

	node := ast.New(ast.ClassDefinition, "", tokSpan(toks, begin, bodyScope.ScopeEnd+1))
	node.Push(nameNode)
	node.Push(body.Node)
	return success(node, bodyScope.ScopeEnd+1)
}
