package eval

import "github.com/ayzg/candi/ast"

// evalPragmaticStatement evaluates one child of a pragmatic_block_ (§4.6):
// type/var/class/func declarations, or a top-level identifier assignment.
func (ev *Evaluator) evalPragmaticStatement(node *ast.Node, env *Environment) (Value, signal) {
	switch node.Kind {
	case ast.TypeDefinition:
		// Type aliases have no runtime representation in the constant
		// evaluator (§4.7 only evaluates values); recorded and skipped.
		return NoneValue(), signal{}

	case ast.AnonVariableDefinition, ast.AnonVariableDefinitionAssignment,
		ast.ConstrainedVariableDefinition:
		return ev.evalVarDecl(node, env), signal{}

	case ast.ClassDefinition:
		return ev.evalClassDecl(node, env), signal{}

	case ast.MethodDefinition, ast.ShorthandVoidMethodDefinition,
		ast.ShorthandConstrainedVoidMethodDefinition:
		return ev.evalFuncDecl(node, env), signal{}

	case ast.SimpleAssignment:
		return ev.Eval(node, env), signal{}

	default:
		ev.error(node, "unsupported pragmatic-block statement %s", node.Kind)
		return Value{}, signal{}
	}
}

// evalFunctionalBlock evaluates a functional_block_'s statements in order,
// stopping at the first non-local control transfer (§4.6, §4.7).
func (ev *Evaluator) evalFunctionalBlock(node *ast.Node, env *Environment) signal {
	for _, stmt := range node.Children {
		if sig := ev.evalStatement(stmt, env); sig.kind != signalNone {
			return sig
		}
	}
	return signal{}
}

// evalStatement evaluates one statement inside a functional block.
func (ev *Evaluator) evalStatement(node *ast.Node, env *Environment) signal {
	switch node.Kind {
	case ast.SimpleAssignment:
		ev.Eval(node, env)
		return signal{}

	case ast.AnonVariableDefinition, ast.AnonVariableDefinitionAssignment,
		ast.ConstrainedVariableDefinition:
		ev.evalVarDecl(node, env)
		return signal{}

	case ast.Return:
		return signal{kind: signalReturn, value: ev.Eval(node.Child(0), env)}

	case ast.If:
		return ev.evalIf(node, env)

	case ast.While:
		return ev.evalWhile(node, env)

	case ast.For:
		return ev.evalWhile(node, env)

	case ast.On:
		return ev.evalOn(node, env)

	default:
		ev.error(node, "unsupported functional-block statement %s", node.Kind)
		return signal{}
	}
}

// evalIf evaluates `#if`/`#elif`/`#else` chains. A chain node has a
// condition, a body, and an optional trailing sibling that is either another
// if_ (an elif) or a plain functional_block_ (an else) (§4.4).
func (ev *Evaluator) evalIf(node *ast.Node, env *Environment) signal {
	cond := ev.Eval(node.Child(0), env)
	if asBit(cond) {
		return ev.evalFunctionalBlock(node.Child(1), env.Child())
	}

	if node.Child(2) == nil {
		return signal{}
	}
	sibling := node.Child(2)
	if sibling.Kind == ast.If {
		return ev.evalIf(sibling, env)
	}
	return ev.evalFunctionalBlock(sibling, env.Child())
}

// evalWhile evaluates `#while`/`#for`: re-testing the condition/selector
// expression and re-running the body until it is falsy (§4.4). Open Question
// #3-adjacent: the source material never specifies distinct `for` iteration
// semantics (no induction-variable syntax exists in the grammar), so `for` is
// treated identically to `while` here — see DESIGN.md.
func (ev *Evaluator) evalWhile(node *ast.Node, env *Environment) signal {
	for {
		cond := ev.Eval(node.Child(0), env)
		if !asBit(cond) {
			return signal{}
		}
		if sig := ev.evalFunctionalBlock(node.Child(1), env.Child()); sig.kind != signalNone {
			if sig.kind == signalBreak {
				return signal{}
			}
			if sig.kind == signalContinue {
				continue
			}
			return sig
		}
	}
}

// evalOn evaluates `#on <selector> {body}` as a single-shot gate: the body
// runs once if the selector is truthy (§4.4; the source material's `on`
// construct has no further runtime semantics extracted — see DESIGN.md).
func (ev *Evaluator) evalOn(node *ast.Node, env *Environment) signal {
	cond := ev.Eval(node.Child(0), env)
	if !asBit(cond) {
		return signal{}
	}
	return ev.evalFunctionalBlock(node.Child(1), env.Child())
}
