package eval

import (
	"strconv"
	"strings"

	"github.com/ayzg/candi/ast"
)

// evalLiteral parses a literal node's textual form into its runtime value —
// one evaluator per literal kind, as §4.7 specifies.
func (ev *Evaluator) evalLiteral(node *ast.Node) Value {
	switch node.Kind {
	case ast.NumberLiteral:
		n, err := strconv.ParseInt(node.Literal, 10, 64)
		if err != nil {
			ev.error(node, "invalid number literal %q", node.Literal)
		}
		return NumberValue(n)

	case ast.RealLiteral:
		r, err := strconv.ParseFloat(node.Literal, 64)
		if err != nil {
			ev.error(node, "invalid real literal %q", node.Literal)
		}
		return RealValue(r)

	case ast.UnsignedLiteral:
		u, err := strconv.ParseUint(strings.TrimSuffix(node.Literal, "u"), 10, 64)
		if err != nil {
			ev.error(node, "invalid unsigned literal %q", node.Literal)
		}
		return UnsignedValue(u)

	case ast.OctetLiteral:
		b, err := strconv.ParseUint(strings.TrimSuffix(node.Literal, "c"), 10, 8)
		if err != nil {
			ev.error(node, "invalid octet literal %q", node.Literal)
		}
		return ByteValue(uint8(b))

	case ast.BitLiteral:
		b, err := strconv.ParseUint(strings.TrimSuffix(node.Literal, "b"), 10, 64)
		if err != nil {
			ev.error(node, "invalid bit literal %q", node.Literal)
		}
		return BitValue(b != 0)

	case ast.StringLiteral:
		return StringValue(unquoteStringLiteral(node.Literal))

	case ast.NoneLiteral:
		return NoneValue()

	default:
		ev.error(node, "not a literal kind: %s", node.Kind)
		return Value{}
	}
}

// unquoteStringLiteral strips the `'...'` delimiters and resolves backslash
// escapes recognised by the lexer (§4.1).
func unquoteStringLiteral(lit string) string {
	if len(lit) >= 2 {
		lit = lit[1 : len(lit)-1]
	}
	var b strings.Builder
	for i := 0; i < len(lit); i++ {
		if lit[i] == '\\' && i+1 < len(lit) {
			i++
			switch lit[i] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			default:
				b.WriteByte(lit[i])
			}
			continue
		}
		b.WriteByte(lit[i])
	}
	return b.String()
}

// evalBinary recursively evaluates both children, then applies the operator
// with C-like numeric promotion across the NUMBER/REAL/UNSIGNED lattice
// (§4.7). Logical/equality/relational operators apply to any value kind that
// isNumeric; string equality is handled as its own case.
func (ev *Evaluator) evalBinary(node *ast.Node, env *Environment) Value {
	lhs := ev.Eval(node.Child(0), env)
	rhs := ev.Eval(node.Child(1), env)

	switch node.Kind {
	case ast.Equality:
		return BitValue(valuesEqual(lhs, rhs))
	case ast.Inequality:
		return BitValue(!valuesEqual(lhs, rhs))
	}

	if !lhs.isNumeric() || !rhs.isNumeric() {
		ev.error(node, "operator %s requires numeric operands", node.Kind)
	}

	switch node.Kind {
	case ast.LogicalAnd:
		return BitValue(asBit(lhs) && asBit(rhs))
	case ast.LogicalOr:
		return BitValue(asBit(lhs) || asBit(rhs))
	}

	// Usual arithmetic conversion: REAL dominates, then UNSIGNED, then NUMBER
	// (§4.7); BYTE/BIT promote to NUMBER before arithmetic.
	if lhs.Kind == Real || rhs.Kind == Real {
		l, r := asReal(lhs), asReal(rhs)
		switch node.Kind {
		case ast.Addition:
			return RealValue(l + r)
		case ast.Subtraction:
			return RealValue(l - r)
		case ast.Multiplication:
			return RealValue(l * r)
		case ast.Division:
			return RealValue(l / r)
		case ast.Less:
			return BitValue(l < r)
		case ast.LessEq:
			return BitValue(l <= r)
		case ast.Greater:
			return BitValue(l > r)
		case ast.GreaterEq:
			return BitValue(l >= r)
		default:
			ev.error(node, "operator %s is not valid on real operands", node.Kind)
		}
	}

	if lhs.Kind == Unsigned || rhs.Kind == Unsigned {
		l, r := asUnsigned(lhs), asUnsigned(rhs)
		switch node.Kind {
		case ast.Addition:
			return UnsignedValue(l + r)
		case ast.Subtraction:
			return UnsignedValue(l - r)
		case ast.Multiplication:
			return UnsignedValue(l * r)
		case ast.Division:
			return UnsignedValue(l / r)
		case ast.Modulo:
			return UnsignedValue(l % r)
		case ast.Less:
			return BitValue(l < r)
		case ast.LessEq:
			return BitValue(l <= r)
		case ast.Greater:
			return BitValue(l > r)
		case ast.GreaterEq:
			return BitValue(l >= r)
		default:
			ev.error(node, "operator %s is not valid on unsigned operands", node.Kind)
		}
	}

	l, r := asNumber(lhs), asNumber(rhs)
	switch node.Kind {
	case ast.Addition:
		return NumberValue(l + r)
	case ast.Subtraction:
		return NumberValue(l - r)
	case ast.Multiplication:
		return NumberValue(l * r)
	case ast.Division:
		return NumberValue(l / r)
	case ast.Modulo:
		return NumberValue(l % r)
	case ast.Less:
		return BitValue(l < r)
	case ast.LessEq:
		return BitValue(l <= r)
	case ast.Greater:
		return BitValue(l > r)
	case ast.GreaterEq:
		return BitValue(l >= r)
	default:
		ev.error(node, "unsupported binary operator %s", node.Kind)
		return Value{}
	}
}

func asBit(v Value) bool {
	switch v.Kind {
	case Bit:
		return v.Bit
	case Number:
		return v.Number != 0
	case Unsigned:
		return v.Unsigned != 0
	case Real:
		return v.Real != 0
	case Byte:
		return v.Byte != 0
	default:
		return false
	}
}

func asReal(v Value) float64 {
	switch v.Kind {
	case Real:
		return v.Real
	case Number:
		return float64(v.Number)
	case Unsigned:
		return float64(v.Unsigned)
	case Byte:
		return float64(v.Byte)
	case Bit:
		if v.Bit {
			return 1
		}
		return 0
	default:
		return 0
	}
}

func asUnsigned(v Value) uint64 {
	switch v.Kind {
	case Unsigned:
		return v.Unsigned
	case Number:
		return uint64(v.Number)
	case Byte:
		return uint64(v.Byte)
	case Bit:
		if v.Bit {
			return 1
		}
		return 0
	default:
		return 0
	}
}

func asNumber(v Value) int64 {
	switch v.Kind {
	case Number:
		return v.Number
	case Byte:
		return int64(v.Byte)
	case Bit:
		if v.Bit {
			return 1
		}
		return 0
	default:
		return 0
	}
}

func valuesEqual(a, b Value) bool {
	if a.Kind == String || b.Kind == String {
		return a.Kind == String && b.Kind == String && a.Str == b.Str
	}
	if a.isNumeric() && b.isNumeric() {
		return asReal(a) == asReal(b)
	}
	return false
}

// evalNegation applies prefix `!`/`-` to its single operand.
func (ev *Evaluator) evalNegation(node *ast.Node, env *Environment) Value {
	operand := ev.Eval(node.Child(0), env)
	if node.Literal == "!" {
		return BitValue(!asBit(operand))
	}
	switch operand.Kind {
	case Real:
		return RealValue(-operand.Real)
	case Unsigned:
		return NumberValue(-int64(operand.Unsigned))
	default:
		return NumberValue(-asNumber(operand))
	}
}

// evalAssignment assigns the evaluated right-hand side to an already-declared
// name, right-associatively per §4.3's `=` table entry (the parser already
// shapes the tree so chained `a = b = c` nests rhs-first).
func (ev *Evaluator) evalAssignment(node *ast.Node, env *Environment) Value {
	lhs := node.Child(0)
	if lhs.Kind != ast.Alnumus {
		ev.error(node, "left-hand side of assignment must be a name")
	}
	rhs := ev.Eval(node.Child(1), env)
	if !env.Assign(lhs.Literal, rhs) {
		ev.error(node, "undefined name %q", lhs.Literal)
	}
	return rhs
}

// evalMemberAccess resolves Open Question #3 (see DESIGN.md): `period_` on an
// OBJECT looks up the field in the instance's member table first, then in its
// class's method table, bound with the instance as an implicit receiver in a
// fresh call frame.
func (ev *Evaluator) evalMemberAccess(node *ast.Node, env *Environment) Value {
	receiver := ev.Eval(node.Child(0), env)
	name := node.Child(1)
	if name.Kind != ast.Alnumus {
		ev.error(node, "member access requires a field or method name")
	}

	if receiver.Kind != Object {
		ev.error(node, "member access on a non-object value")
	}
	if v, ok := receiver.Obj.Members[name.Literal]; ok {
		return v
	}
	if _, ok := receiver.Obj.Methods[name.Literal]; ok {
		return boundMethodValue(receiver.Obj, name.Literal)
	}

	ev.error(node, "object of class %q has no member %q", receiver.Obj.Class, name.Literal)
	return Value{}
}

// boundMethodValue wraps a class method as a callable FUNCTION value whose
// captured environment binds the implicit receiver as "self".
func boundMethodValue(inst *Instance, methodName string) Value {
	m := inst.Methods[methodName]
	recvEnv := m.Env.Child()
	recvEnv.Define("self", ObjectValue(inst))
	return FunctionValue(&Closure{Params: m.Params, Body: m.Body, Env: recvEnv})
}

// evalCall creates a child environment, binds positional arguments, evaluates
// the body's return statement, and yields the result (§4.7). A call whose
// callee is an OBJECT template (the value a class declaration binds, §4.7
// "Class declaration evaluator") is instead treated as instantiation: a
// fresh Instance is copied from the template's member/method tables.
func (ev *Evaluator) evalCall(node *ast.Node, env *Environment) Value {
	callee := ev.Eval(node.Child(0), env)
	if callee.Kind == Object {
		return instantiate(callee.Obj)
	}
	if callee.Kind != Function {
		ev.error(node, "call target is not a function")
	}

	argNodes := node.Child(1).Children
	args := make([]Value, len(argNodes))
	for i, a := range argNodes {
		args[i] = ev.Eval(a, env)
	}

	fn := callee.Fn
	if len(args) != len(fn.Params) {
		ev.error(node, "function expects %d argument(s), got %d", len(fn.Params), len(args))
	}

	callEnv := fn.Env.Child()
	for i, p := range fn.Params {
		callEnv.Define(p, args[i])
	}

	sig := ev.evalFunctionalBlock(fn.Body, callEnv)
	if sig.kind == signalReturn {
		return sig.value
	}
	return NoneValue()
}

// instantiate copies a class template into a fresh, independently mutable
// Instance (§3.4: OBJECT values share state only among handles to the same
// instance, never across distinct instantiations).
func instantiate(tmpl *Instance) Value {
	inst := &Instance{
		Class:   tmpl.Class,
		Members: make(map[string]Value, len(tmpl.Members)),
		Methods: tmpl.Methods,
	}
	for k, v := range tmpl.Members {
		inst.Members[k] = v
	}
	return ObjectValue(inst)
}
