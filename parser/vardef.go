package parser

import (
	"github.com/ayzg/candi/ast"
	"github.com/ayzg/candi/token"
)

// parseTypeConstraints parses a `[<type-constraints>]` bracket starting at
// frameBegin (which must hold `[`) into a type_constraints_ node wrapping
// either a bare identifier or an intrinsic-type constraint (§4.4 forms 3/4,
// shared by variable and function declarations).
func parseTypeConstraints(toks []token.Token, frameBegin, end int) Result {
	frameScope := FindFrameScope(toks, frameBegin, end)
	if !frameScope.OK {
		return fail("parse_type_constraints", toks, frameBegin, end, "mismatched type constraint brackets")
	}
	if frameScope.IsEmpty() {
		return fail("parse_type_constraints", toks, frameBegin, end, "empty type constraint")
	}

	var inner *ast.Node
	if at(toks, frameScope.ContainedBegin, end).Kind == token.ALNUMUS && frameScope.ContainedBegin+1 == frameScope.ContainedEnd {
		inner = toNode(toks, frameScope.ContainedBegin)
	} else {
		cso := ParseCandiSpecialObject(toks, frameScope.ContainedBegin, frameScope.ContainedEnd)
		if !cso.OK {
			return wrap("parse_type_constraints", toks, frameScope.ContainedBegin, end, "invalid type constraint", cso)
		}
		inner = cso.Node
	}

	constraints := ast.New(ast.TypeConstraints, "", tokSpan(toks, frameScope.ScopeBegin, frameScope.ScopeEnd))
	constraints.Push(inner)
	return success(constraints, frameScope.ScopeEnd)
}

// ParseDirectiveVar parses one of the four `#var` syntactic forms (§4.4):
// anonymous, anonymous-with-assignment, constrained, and
// constrained-with-assignment.
func ParseDirectiveVar(toks []token.Token, begin, end int) Result {
	if at(toks, begin, end).Kind != token.VAR {
		return fail("parse_directive_var", toks, begin, end, "expected a var directive")
	}

	i := begin + 1
	if at(toks, i, end).Kind == token.OPEN_FRAME {
		return parseConstrainedVar(toks, begin, i, end)
	}

	if at(toks, i, end).Kind != token.ALNUMUS {
		return fail("parse_directive_var", toks, i, end, "expected an identifier or type constraint after #var")
	}
	nameNode := toNode(toks, i)
	j := i + 1

	switch at(toks, j, end).Kind {
	case token.EOS:
		node := ast.New(ast.AnonVariableDefinition, "", tokSpan(toks, begin, j+1))
		node.Push(nameNode)
		return success(node, j+1)

	case token.SIMPLE_ASSIGNMENT:
		scope := FindStatement(toks, token.SIMPLE_ASSIGNMENT, token.EOS, j, end)
		if !scope.OK {
			return fail("parse_directive_var", toks, j, end, "missing ';' terminating var statement")
		}
		rhs := BuildStatement(toks, scope.ContainedBegin, scope.ContainedEnd)

		node := ast.New(ast.AnonVariableDefinitionAssignment, "", tokSpan(toks, begin, scope.ScopeEnd))
		node.Push(nameNode)
		node.Push(rhs)
		return success(node, scope.ScopeEnd)

	default:
		return fail("parse_directive_var", toks, j, end, "expected ';' or '=' after variable name")
	}
}

// parseConstrainedVar handles `#var [<constraints>] name;` and
// `#var [<constraints>] name = <expr>;`.
func parseConstrainedVar(toks []token.Token, varBegin, frameBegin, end int) Result {
	constraints := parseTypeConstraints(toks, frameBegin, end)
	if !constraints.OK {
		return wrap("parse_directive_var", toks, frameBegin, end, "invalid variable type constraint", constraints)
	}

	i := constraints.NextCursor
	if at(toks, i, end).Kind != token.ALNUMUS {
		return fail("parse_directive_var", toks, i, end, "expected an identifier after type constraint")
	}
	nameNode := toNode(toks, i)
	j := i + 1

	switch at(toks, j, end).Kind {
	case token.EOS:
		node := ast.New(ast.ConstrainedVariableDefinition, "", tokSpan(toks, varBegin, j+1))
		node.Push(constraints.Node)
		node.Push(nameNode)
		return success(node, j+1)

	case token.SIMPLE_ASSIGNMENT:
		scope := FindStatement(toks, token.SIMPLE_ASSIGNMENT, token.EOS, j, end)
		if !scope.OK {
			return fail("parse_directive_var", toks, j, end, "missing ';' terminating var statement")
		}
		rhs := BuildStatement(toks, scope.ContainedBegin, scope.ContainedEnd)

		node := ast.New(ast.ConstrainedVariableDefinition, "", tokSpan(toks, varBegin, scope.ScopeEnd))
		node.Push(constraints.Node)
		node.Push(nameNode)
		node.Push(rhs)
		return success(node, scope.ScopeEnd)

	default:
		return fail("parse_directive_var", toks, j, end, "expected ';' or '=' after variable name")
	}
}
