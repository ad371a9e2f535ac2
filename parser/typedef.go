package parser

import (
	"github.com/ayzg/candi/ast"
	"github.com/ayzg/candi/token"
)

// ParseDirectiveType parses `#type X = <type-expression>;`, where the
// right-hand side is either an identifier or an intrinsic-type construction
// (§4.4).
func ParseDirectiveType(toks []token.Token, begin, end int) Result {
	if at(toks, begin, end).Kind != token.TYPE {
		return fail("parse_directive_type", toks, begin, end, "expected a type directive")
	}

	i := begin + 1
	if at(toks, i, end).Kind != token.ALNUMUS {
		return fail("parse_directive_type", toks, i, end, "expected an identifier after #type")
	}
	nameNode := toNode(toks, i)
	i++

	if at(toks, i, end).Kind != token.SIMPLE_ASSIGNMENT {
		return fail("parse_directive_type", toks, i, end, "expected '=' in type definition")
	}
	i++

	var rhs *ast.Node
	if at(toks, i, end).Kind == token.ALNUMUS {
		rhs = toNode(toks, i)
		i++
	} else {
		cso := ParseCandiSpecialObject(toks, i, end)
		if !cso.OK {
			return wrap("parse_directive_type", toks, i, end, "expected a type expression", cso)
		}
		rhs = cso.Node
		i = cso.NextCursor
	}

	if at(toks, i, end).Kind != token.EOS {
		return fail("parse_directive_type", toks, i, end, "expected ';' terminating type definition")
	}

	node := ast.New(ast.TypeDefinition, "", tokSpan(toks, begin, i+1))
	node.Push(nameNode)
	node.Push(rhs)
	return success(node, i+1)
}
