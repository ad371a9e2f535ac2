package parser

import (
	"github.com/ayzg/candi/ast"
	"github.com/ayzg/candi/token"
)

// ParseDirectiveFunc parses one of the four `#func` syntactic forms (§4.4):
// shorthand void-arg, full (with argument list), shorthand constrained, and
// full constrained.
func ParseDirectiveFunc(toks []token.Token, begin, end int) Result {
	if at(toks, begin, end).Kind != token.FUNC {
		return fail("parse_directive_func", toks, begin, end, "expected a func directive")
	}

	i := begin + 1
	if at(toks, i, end).Kind == token.OPEN_FRAME {
		return parseConstrainedFunc(toks, begin, i, end)
	}

	if at(toks, i, end).Kind != token.ALNUMUS {
		return fail("parse_directive_func", toks, i, end, "expected a function name after #func")
	}
	nameNode := toNode(toks, i)
	j := i + 1

	switch at(toks, j, end).Kind {
	case token.OPEN_LIST:
		bodyScope := FindListScope(toks, j, end)
		if !bodyScope.OK {
			return fail("parse_directive_func", toks, j, end, "mismatched function body braces")
		}
		if at(toks, bodyScope.ScopeEnd, end).Kind != token.EOS {
			return fail("parse_directive_func", toks, bodyScope.ScopeEnd, end, "expected ';' after function body")
		}
		body := ParseFunctionalBlock(toks, bodyScope.ContainedBegin, bodyScope.ContainedEnd)
		if !body.OK {
			return wrap("parse_directive_func", toks, bodyScope.ContainedBegin, end, "invalid function body", body)
		}

		node := ast.New(ast.ShorthandVoidMethodDefinition, "", tokSpan(toks, begin, bodyScope.ScopeEnd+1))
		node.Push(nameNode)
		node.Push(body.Node)
		return success(node, bodyScope.ScopeEnd+1)

	case token.OPEN_SCOPE:
		argScope := FindParenScope(toks, j, end)
		if !argScope.OK {
			return fail("parse_directive_func", toks, j, end, "mismatched argument list parenthesis")
		}
		if at(toks, argScope.ScopeEnd, end).Kind != token.OPEN_LIST {
			return fail("parse_directive_func", toks, argScope.ScopeEnd, end, "expected a function body after argument list")
		}
		bodyScope := FindListScope(toks, argScope.ScopeEnd, end)
		if !bodyScope.OK {
			return fail("parse_directive_func", toks, argScope.ScopeEnd, end, "mismatched function body braces")
		}
		if at(toks, bodyScope.ScopeEnd, end).Kind != token.EOS {
			return fail("parse_directive_func", toks, bodyScope.ScopeEnd, end, "expected ';' after function body")
		}

		argsNode := parseParameterList(toks, argScope)
		body := ParseFunctionalBlock(toks, bodyScope.ContainedBegin, bodyScope.ContainedEnd)
		if !body.OK {
			return wrap("parse_directive_func", toks, bodyScope.ContainedBegin, end, "invalid function body", body)
		}

		node := ast.New(ast.MethodDefinition, "", tokSpan(toks, begin, bodyScope.ScopeEnd+1))
		node.Push(nameNode)
		node.Push(argsNode)
		node.Push(body.Node)
		return success(node, bodyScope.ScopeEnd+1)

	default:
		return fail("parse_directive_func", toks, j, end, "expected an argument list or function body")
	}
}

// parseConstrainedFunc handles `#func [<constraints>] name {body};` and
// `#func [<constraints>] name (args) {body};`.
func parseConstrainedFunc(toks []token.Token, funcBegin, frameBegin, end int) Result {
	constraints := parseTypeConstraints(toks, frameBegin, end)
	if !constraints.OK {
		return wrap("parse_directive_func", toks, frameBegin, end, "invalid function type constraint", constraints)
	}

	i := constraints.NextCursor
	if at(toks, i, end).Kind != token.ALNUMUS {
		return fail("parse_directive_func", toks, i, end, "expected a function name after type constraint")
	}
	nameNode := toNode(toks, i)
	j := i + 1

	switch at(toks, j, end).Kind {
	case token.OPEN_LIST:
		bodyScope := FindListScope(toks, j, end)
		if !bodyScope.OK {
			return fail("parse_directive_func", toks, j, end, "mismatched function body braces")
		}
		if at(toks, bodyScope.ScopeEnd, end).Kind != token.EOS {
			return fail("parse_directive_func", toks, bodyScope.ScopeEnd, end, "expected ';' after function body")
		}
		body := ParseFunctionalBlock(toks, bodyScope.ContainedBegin, bodyScope.ContainedEnd)
		if !body.OK {
			return wrap("parse_directive_func", toks, bodyScope.ContainedBegin, end, "invalid function body", body)
		}

		node := ast.New(ast.ShorthandConstrainedVoidMethodDefinition, "", tokSpan(toks, funcBegin, bodyScope.ScopeEnd+1))
		node.Push(constraints.Node)
		node.Push(nameNode)
		node.Push(body.Node)
		return success(node, bodyScope.ScopeEnd+1)

	case token.OPEN_SCOPE:
		argScope := FindParenScope(toks, j, end)
		if !argScope.OK {
			return fail("parse_directive_func", toks, j, end, "mismatched argument list parenthesis")
		}
		if at(toks, argScope.ScopeEnd, end).Kind != token.OPEN_LIST {
			return fail("parse_directive_func", toks, argScope.ScopeEnd, end, "expected a function body after argument list")
		}
		bodyScope := FindListScope(toks, argScope.ScopeEnd, end)
		if !bodyScope.OK {
			return fail("parse_directive_func", toks, argScope.ScopeEnd, end, "mismatched function body braces")
		}
		if at(toks, bodyScope.ScopeEnd, end).Kind != token.EOS {
			return fail("parse_directive_func", toks, bodyScope.ScopeEnd, end, "expected ';' after function body")
		}

		argsNode := parseParameterList(toks, argScope)
		body := ParseFunctionalBlock(toks, bodyScope.ContainedBegin, bodyScope.ContainedEnd)
		if !body.OK {
			return wrap("parse_directive_func", toks, bodyScope.ContainedBegin, end, "invalid function body", body)
		}

		node := ast.New(ast.MethodDefinition, "", tokSpan(toks, funcBegin, bodyScope.ScopeEnd+1))
		node.Push(constraints.Node)
		node.Push(nameNode)
		node.Push(argsNode)
		node.Push(body.Node)
		return success(node, bodyScope.ScopeEnd+1)

	default:
		return fail("parse_directive_func", toks, j, end, "expected an argument list or function body")
	}
}

// parseParameterList splits an argument-list scope on commas, producing one
// child per parameter: a bare identifier, or a constrained parameter built
// the same way a constrained variable declaration is (§4.4's argument lists
// reuse the variable-declaration constraint grammar; no defaults).
func parseParameterList(toks []token.Token, scope ScopeResult) *ast.Node {
	args := ast.New(ast.Arguments, "()", tokSpan(toks, scope.ScopeBegin, scope.ScopeEnd))
	if scope.IsEmpty() {
		return args
	}

	for _, part := range SplitScope(toks, scope.ContainedBegin, scope.ContainedEnd, token.COMMA) {
		b, e := part[0], part[1]
		if at(toks, b, e).Kind == token.OPEN_FRAME {
			constraints := parseTypeConstraints(toks, b, e)
			if !constraints.OK {
				args.Push(ast.New(ast.Invalid, "", tokSpan(toks, b, e)))
				continue
			}
			param := ast.New(ast.ConstrainedVariableDefinition, "", tokSpan(toks, b, e))
			param.Push(constraints.Node)
			if at(toks, constraints.NextCursor, e).Kind == token.ALNUMUS {
				param.Push(toNode(toks, constraints.NextCursor))
			}
			args.Push(param)
		} else {
			args.Push(toNode(toks, b))
		}
	}
	return args
}
