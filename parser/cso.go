package parser

import (
	"github.com/ayzg/candi/ast"
	"github.com/ayzg/candi/token"
)

// ParseCandiSpecialObject dispatches an intrinsic-type token to its parser
// (§4.5). begin must hold one of the `a*` intrinsic kinds.
func ParseCandiSpecialObject(toks []token.Token, begin, end int) Result {
	switch at(toks, begin, end).Kind {
	case token.AINT:
		return parseCsoInt(toks, begin, end)
	case token.AUINT:
		return parseCsoUint(toks, begin, end)
	case token.AREAL:
		return atomicCso(toks, begin, end, ast.AReal)
	case token.AOCTET:
		return atomicCso(toks, begin, end, ast.AOctet)
	case token.ABIT:
		return atomicCso(toks, begin, end, ast.ABit)
	case token.ATYPE:
		return atomicCso(toks, begin, end, ast.AType)
	case token.AVALUE:
		return atomicCso(toks, begin, end, ast.AValue)
	case token.AIDENTITY:
		return atomicCso(toks, begin, end, ast.AIdentity)
	case token.APOINTER:
		return parseCsoPointer(toks, begin, end)
	case token.AARRAY:
		return parseCsoArray(toks, begin, end)
	default:
		return fail("parse_cso", toks, begin, end, "invalid intrinsic type")
	}
}

// atomicCso builds the single-token node for an unconstrained intrinsic
// (`&real`, `&octet`, `&bit`, `&type`, `&value`, `&identity`) (§4.5).
func atomicCso(toks []token.Token, begin, end int, kind ast.Kind) Result {
	tok := at(toks, begin, end)
	return success(ast.New(kind, tok.Literal, tok.Span), begin+1)
}

// parseSignedBound parses an optional leading unary minus followed by a
// number literal, used by the `&int[lo...hi]` bound positions (§4.5).
func parseSignedBound(toks []token.Token, i, end int) (*ast.Node, int, bool) {
	if at(toks, i, end).Kind == token.SUBTRACTION {
		if at(toks, i+1, end).Kind != token.NUMBER_LITERAL {
			return nil, i, false
		}
		neg := unaryNode(toks, i)
		neg.Push(toNode(toks, i+1))
		return neg, i + 2, true
	}
	if at(toks, i, end).Kind != token.NUMBER_LITERAL {
		return nil, i, false
	}
	return toNode(toks, i), i + 1, true
}

// parseCsoInt parses `&int` or the constrained form `&int[<signed>...<signed>]`
// (§4.5).
func parseCsoInt(toks []token.Token, begin, end int) Result {
	if at(toks, begin+1, end).Kind != token.OPEN_FRAME {
		tok := at(toks, begin, end)
		return success(ast.New(ast.AInt, tok.Literal, tok.Span), begin+1)
	}

	i := begin + 2
	lowNode, i, ok := parseSignedBound(toks, i, end)
	if !ok {
		return fail("parse_cso_int", toks, i, end, "expected a signed integer bound")
	}
	if at(toks, i, end).Kind != token.ELLIPSIS {
		return fail("parse_cso_int", toks, i, end, "expected '...' between integer bounds")
	}
	i++
	highNode, i, ok := parseSignedBound(toks, i, end)
	if !ok {
		return fail("parse_cso_int", toks, i, end, "expected a signed integer bound")
	}
	if at(toks, i, end).Kind != token.CLOSE_FRAME {
		return fail("parse_cso_int", toks, i, end, "expected ']' closing integer constraint")
	}

	node := ast.New(ast.AInt, "", tokSpan(toks, begin, end))
	node.Push(lowNode)
	node.Push(highNode)
	return success(node, i+1)
}

// parseCsoUint parses `&uint` or the constrained form `&uint[<uint>...<uint>]`
// (§4.5). Bounds carry no sign.
func parseCsoUint(toks []token.Token, begin, end int) Result {
	if at(toks, begin+1, end).Kind != token.OPEN_FRAME {
		tok := at(toks, begin, end)
		return success(ast.New(ast.AUint, tok.Literal, tok.Span), begin+1)
	}

	i := begin + 2
	if at(toks, i, end).Kind != token.NUMBER_LITERAL {
		return fail("parse_cso_uint", toks, i, end, "expected an unsigned integer bound")
	}
	low := toNode(toks, i)
	i++
	if at(toks, i, end).Kind != token.ELLIPSIS {
		return fail("parse_cso_uint", toks, i, end, "expected '...' between integer bounds")
	}
	i++
	if at(toks, i, end).Kind != token.NUMBER_LITERAL {
		return fail("parse_cso_uint", toks, i, end, "expected an unsigned integer bound")
	}
	high := toNode(toks, i)
	i++
	if at(toks, i, end).Kind != token.CLOSE_FRAME {
		return fail("parse_cso_uint", toks, i, end, "expected ']' closing integer constraint")
	}

	node := ast.New(ast.AUint, "", tokSpan(toks, begin, end))
	node.Push(low)
	node.Push(high)
	return success(node, i+1)
}

// parseCsoPointer parses `&pointer[<identifier|intrinsic>]`; the pointee
// constraint is required (§4.5).
func parseCsoPointer(toks []token.Token, begin, end int) Result {
	if at(toks, begin+1, end).Kind != token.OPEN_FRAME {
		return fail("parse_cso_pointer", toks, begin, end, "pointer must be constrained to a type")
	}

	i := begin + 2
	var constraint *ast.Node
	if at(toks, i, end).Kind == token.ALNUMUS {
		constraint = toNode(toks, i)
		i++
	} else {
		cso := ParseCandiSpecialObject(toks, i, end)
		if !cso.OK {
			return wrap("parse_cso_pointer", toks, i, end, "invalid type in &pointer constraint", cso)
		}
		constraint = cso.Node
		i = cso.NextCursor
	}

	if at(toks, i, end).Kind != token.CLOSE_FRAME {
		return fail("parse_cso_pointer", toks, i, end, "expected ']' closing pointer constraint")
	}

	node := ast.New(ast.APointer, "", tokSpan(toks, begin, end))
	node.Push(constraint)
	return success(node, i+1)
}

// parseCsoArray parses `&array[<identifier|intrinsic>, <uint>]`; both the
// element type and the element count are required (§4.5).
func parseCsoArray(toks []token.Token, begin, end int) Result {
	if at(toks, begin+1, end).Kind != token.OPEN_FRAME {
		return fail("parse_cso_array", toks, begin, end, "array must be constrained to a type")
	}

	i := begin + 2
	var elemType *ast.Node
	if at(toks, i, end).Kind == token.ALNUMUS {
		elemType = toNode(toks, i)
		i++
	} else {
		cso := ParseCandiSpecialObject(toks, i, end)
		if !cso.OK {
			return wrap("parse_cso_array", toks, i, end, "invalid type in &array constraint", cso)
		}
		elemType = cso.Node
		i = cso.NextCursor
	}

	if at(toks, i, end).Kind != token.COMMA {
		return fail("parse_cso_array", toks, i, end, "array constraint must provide a comma-separated element count")
	}
	i++
	if at(toks, i, end).Kind != token.NUMBER_LITERAL {
		return fail("parse_cso_array", toks, i, end, "invalid array size")
	}
	count := toNode(toks, i)
	i++

	if at(toks, i, end).Kind != token.CLOSE_FRAME {
		return fail("parse_cso_array", toks, i, end, "expected ']' closing array constraint")
	}

	node := ast.New(ast.AArray, "", tokSpan(toks, begin, end))
	node.Push(elemType)
	node.Push(count)
	return success(node, i+1)
}
