package eval

import (
	"strconv"

	"github.com/ayzg/candi/ast"
)

// evalVarDecl creates a binding in the current environment and returns the
// bound value; redeclaration in the same environment is an error (§4.7). It
// handles all three variable-declaration node kinds the parser produces:
// anonymous, anonymous-with-assignment, and constrained (which itself covers
// both the bare and assigned constrained forms via child count, §4.4). An
// uninitialized constrained declaration takes its default from the
// constraint's CSO kind rather than NONE (Open Question #2, see DESIGN.md):
// `&pointer[T]` defaults to a POINTER over a NONE cell, `&array[T,N]` to an
// N-slot NONE-filled ARRAY, and the numeric atomic kinds to their zero value.
func (ev *Evaluator) evalVarDecl(node *ast.Node, env *Environment) Value {
	var nameNode, rhsNode, constraintsNode *ast.Node
	value := NoneValue()

	switch node.Kind {
	case ast.AnonVariableDefinition:
		nameNode = node.Child(0)

	case ast.AnonVariableDefinitionAssignment:
		nameNode = node.Child(0)
		rhsNode = node.Child(1)

	case ast.ConstrainedVariableDefinition:
		constraintsNode = node.Child(0)
		nameNode = node.Child(1)
		if node.Child(2) != nil {
			rhsNode = node.Child(2)
		}

	default:
		ev.error(node, "not a variable declaration: %s", node.Kind)
	}

	if rhsNode != nil {
		value = ev.Eval(rhsNode, env)
	} else if constraintsNode != nil {
		value = defaultForConstraint(constraintsNode.Child(0))
	}

	if !env.Define(nameNode.Literal, value) {
		ev.error(node, "redeclaration of %q in the same scope", nameNode.Literal)
	}
	return value
}

// defaultForConstraint computes the zero value a constrained variable holds
// before its first assignment, from the constraint's CSO kind. A bare
// user-defined type name (an `alnumus_` constraint) has no runtime
// representation in the constant evaluator and defaults to NONE, same as an
// unconstrained declaration.
func defaultForConstraint(cso *ast.Node) Value {
	switch cso.Kind {
	case ast.AInt:
		return NumberValue(0)
	case ast.AUint:
		return UnsignedValue(0)
	case ast.AReal:
		return RealValue(0)
	case ast.AOctet:
		return ByteValue(0)
	case ast.ABit:
		return BitValue(false)
	case ast.APointer:
		return PointerValue(&Cell{Value: NoneValue()})
	case ast.AArray:
		count := arrayCount(cso.Child(1))
		return ArrayValue(make([]Value, count))
	default:
		return NoneValue()
	}
}

// arrayCount reads an &array[...] constraint's element-count literal.
func arrayCount(n *ast.Node) int {
	count, _ := strconv.Atoi(n.Literal)
	return count
}

// evalFuncDecl binds the name to a FUNCTION value capturing the parameter
// list, body, and the current environment (§4.7). Covers all four `#func`
// syntactic forms: the argument list is absent for the two shorthand forms
// (an implicit empty parameter list), and the type constraint child (present
// in the two constrained forms) carries no runtime weight for the constant
// evaluator.
func (ev *Evaluator) evalFuncDecl(node *ast.Node, env *Environment) Value {
	var nameNode, argsNode, bodyNode *ast.Node

	switch node.Kind {
	case ast.ShorthandVoidMethodDefinition:
		nameNode, bodyNode = node.Child(0), node.Child(1)

	case ast.ShorthandConstrainedVoidMethodDefinition:
		nameNode, bodyNode = node.Child(1), node.Child(2)

	case ast.MethodDefinition:
		if node.Child(0).Kind == ast.TypeConstraints {
			nameNode, argsNode, bodyNode = node.Child(1), node.Child(2), node.Child(3)
		} else {
			nameNode, argsNode, bodyNode = node.Child(0), node.Child(1), node.Child(2)
		}

	default:
		ev.error(node, "not a function declaration: %s", node.Kind)
	}

	closure := &Closure{Body: bodyNode, Env: env}
	if argsNode != nil {
		closure.Params = paramNames(argsNode)
	}

	fn := FunctionValue(closure)
	if !env.Define(nameNode.Literal, fn) {
		ev.error(node, "redeclaration of %q in the same scope", nameNode.Literal)
	}
	return fn
}

// paramNames extracts the declared parameter names from an arguments_ node,
// whose children are either a bare alnumus_ or a constrained_variable_
// definition_ wrapping one (§4.4 argument lists reuse the variable constraint
// grammar).
func paramNames(argsNode *ast.Node) []string {
	names := make([]string, 0, len(argsNode.Children))
	for _, p := range argsNode.Children {
		switch p.Kind {
		case ast.Alnumus:
			names = append(names, p.Literal)
		case ast.ConstrainedVariableDefinition:
			if name := p.Child(1); name != nil {
				names = append(names, name.Literal)
			}
		}
	}
	return names
}

// evalClassDecl evaluates the body's declarations into a fresh member table
// and binds the name to an OBJECT template (§4.7). This resolves Open
// Question #3 (see DESIGN.md): the class's own declaration statements are
// evaluated once, eagerly, against a scratch environment to produce the
// template's field defaults and method closures; instantiation (a call to
// the class name) then copies this template into a fresh Instance.
func (ev *Evaluator) evalClassDecl(node *ast.Node, env *Environment) Value {
	nameNode, bodyNode := node.Child(0), node.Child(1)

	tmpl := &Instance{
		Class:   nameNode.Literal,
		Members: make(map[string]Value),
		Methods: make(map[string]*Closure),
	}

	scratch := env.Child()
	for _, stmt := range bodyNode.Children {
		switch stmt.Kind {
		case ast.AnonVariableDefinition, ast.AnonVariableDefinitionAssignment,
			ast.ConstrainedVariableDefinition:
			v := ev.evalVarDecl(stmt, scratch)
			name := memberDeclName(stmt)
			tmpl.Members[name] = v

		case ast.MethodDefinition, ast.ShorthandVoidMethodDefinition,
			ast.ShorthandConstrainedVoidMethodDefinition:
			fn := ev.evalFuncDecl(stmt, scratch)
			tmpl.Methods[methodDeclName(stmt)] = fn.Fn

		case ast.TypeDefinition:
			// no runtime representation; see evalPragmaticStatement.

		default:
			ev.error(stmt, "unsupported class member %s", stmt.Kind)
		}
	}

	obj := ObjectValue(tmpl)
	if !env.Define(nameNode.Literal, obj) {
		ev.error(node, "redeclaration of %q in the same scope", nameNode.Literal)
	}
	return obj
}

func memberDeclName(node *ast.Node) string {
	if node.Kind == ast.ConstrainedVariableDefinition {
		return node.Child(1).Literal
	}
	return node.Child(0).Literal
}

func methodDeclName(node *ast.Node) string {
	switch node.Kind {
	case ast.ShorthandVoidMethodDefinition:
		return node.Child(0).Literal
	case ast.ShorthandConstrainedVoidMethodDefinition:
		return node.Child(1).Literal
	case ast.MethodDefinition:
		if node.Child(0).Kind == ast.TypeConstraints {
			return node.Child(1).Literal
		}
		return node.Child(0).Literal
	}
	return ""
}
