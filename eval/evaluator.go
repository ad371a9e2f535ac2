package eval

import (
	"github.com/ayzg/candi/ast"
	"github.com/ayzg/candi/report"
)

// signalKind distinguishes the non-local control transfers a functional block
// can produce: a plain fall-through carries signalNone.
type signalKind int

const (
	signalNone signalKind = iota
	signalReturn
	signalBreak
	signalContinue
)

// signal threads a non-local control transfer back up the statement walk,
// the same way the source's evaluator interface implies `#return`/`#break`/
// `#continue` unwind a functional block without walking its remaining
// statements.
type signal struct {
	kind  signalKind
	value Value
}

// Evaluator walks the AST with a type switch dispatching one function per
// node family — literal, binary-op, declaration, call, class — mirroring the
// teacher's walk package's one-file-per-family split (walk_expr.go,
// walk_stmt.go, walk_def.go; see DESIGN.md).
type Evaluator struct {
	Global *Environment
}

// NewEvaluator creates an Evaluator with a fresh global environment.
func NewEvaluator() *Evaluator {
	return &Evaluator{Global: NewEnvironment()}
}

// Run evaluates a root pragmatic_block_ node (the parser's Parse output)
// against the evaluator's global environment, recovering any panicked
// *report.Diagnostic into an ordinary error (§4.7, §7).
func (ev *Evaluator) Run(root *ast.Node) (result Value, err error) {
	defer func() {
		if x := recover(); x != nil {
			if diag, ok := x.(*report.Diagnostic); ok {
				err = diag
				return
			}
			panic(x)
		}
	}()

	result = NoneValue()
	for _, child := range root.Children {
		result, _ = ev.evalPragmaticStatement(child, ev.Global)
	}
	return result, nil
}

// Eval evaluates a single expression node against env — the entry point used
// by both statement evaluators (for initializers/conditions) and recursively
// by the binary-op and call evaluators.
func (ev *Evaluator) Eval(node *ast.Node, env *Environment) Value {
	switch node.Kind {
	case ast.NumberLiteral, ast.RealLiteral, ast.StringLiteral,
		ast.OctetLiteral, ast.BitLiteral, ast.UnsignedLiteral, ast.NoneLiteral:
		return ev.evalLiteral(node)

	case ast.Alnumus:
		v, ok := env.Get(node.Literal)
		if !ok {
			ev.error(node, "undefined name %q", node.Literal)
		}
		return v

	case ast.Addition, ast.Subtraction, ast.Multiplication, ast.Division,
		ast.Modulo, ast.LogicalAnd, ast.LogicalOr, ast.Equality,
		ast.Inequality, ast.Less, ast.LessEq, ast.Greater, ast.GreaterEq:
		return ev.evalBinary(node, env)

	case ast.SimpleAssignment:
		return ev.evalAssignment(node, env)

	case ast.Negation:
		return ev.evalNegation(node, env)

	case ast.Period:
		return ev.evalMemberAccess(node, env)

	case ast.FunctionCall:
		return ev.evalCall(node, env)

	case ast.Expression:
		return ev.Eval(node.Child(0), env)

	default:
		ev.error(node, "cannot evaluate node of kind %s", node.Kind)
		return Value{}
	}
}

// error raises a non-recoverable evaluator diagnostic (§4.7's undefined
// name/type mismatch/redeclaration errors), in the same panic-and-recover
// convention the parser uses for its own fatal errors (§7).
func (ev *Evaluator) error(node *ast.Node, msg string, args ...interface{}) {
	panic(report.Raise("eval", node.Span, msg, args...))
}
