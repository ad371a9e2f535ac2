// Package eval implements the constant evaluator (§4.7, §3.4): a
// tree-walking interpreter over the parser's AST that produces sum-typed
// runtime values against a lexically scoped Environment.
package eval

import (
	"fmt"

	"github.com/ayzg/candi/ast"
)

// Kind is the closed set of runtime value variants (§3.4).
type Kind int

const (
	None Kind = iota
	Number
	Real
	Unsigned
	Byte
	Bit
	String
	Function
	Object
	// Pointer and Array resolve Open Question #2 (see DESIGN.md): the
	// source material parses &pointer/&array constraints but never
	// evaluates them, so these variants and their semantics are this
	// repo's own addition.
	Pointer
	Array
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Number:
		return "number"
	case Real:
		return "real"
	case Unsigned:
		return "unsigned"
	case Byte:
		return "byte"
	case Bit:
		return "bit"
	case String:
		return "string"
	case Function:
		return "function"
	case Object:
		return "object"
	case Pointer:
		return "pointer"
	case Array:
		return "array"
	default:
		return "unknown"
	}
}

// Closure is the FUNCTION value payload: the parameter names, the body node
// to evaluate on call, and the environment captured at declaration time
// (§3.4).
type Closure struct {
	Params []string
	Body   *ast.Node
	Env    *Environment
}

// Instance is the OBJECT value payload: a shared, mutable member table.
// Unlike every other Value variant, multiple Value handles may reference the
// same *Instance (§3.4 "Only the OBJECT variant requires shared ownership").
type Instance struct {
	Class   string
	Members map[string]Value
	Methods map[string]*Closure
}

// Cell is a mutable single-value box backing a POINTER value.
type Cell struct {
	Value Value
}

// Value is the tagged runtime value every evaluator function produces and
// consumes (§3.4). All variants except Object are copied on assignment.
type Value struct {
	Kind     Kind
	Number   int64
	Real     float64
	Unsigned uint64
	Byte     uint8
	Bit      bool
	Str      string
	Fn       *Closure
	Obj      *Instance
	Ptr      *Cell
	Elems    []Value
}

func NumberValue(n int64) Value      { return Value{Kind: Number, Number: n} }
func RealValue(r float64) Value      { return Value{Kind: Real, Real: r} }
func UnsignedValue(u uint64) Value   { return Value{Kind: Unsigned, Unsigned: u} }
func ByteValue(b uint8) Value        { return Value{Kind: Byte, Byte: b} }
func BitValue(b bool) Value          { return Value{Kind: Bit, Bit: b} }
func StringValue(s string) Value     { return Value{Kind: String, Str: s} }
func NoneValue() Value               { return Value{Kind: None} }
func FunctionValue(c *Closure) Value { return Value{Kind: Function, Fn: c} }
func ObjectValue(i *Instance) Value  { return Value{Kind: Object, Obj: i} }
func PointerValue(c *Cell) Value     { return Value{Kind: Pointer, Ptr: c} }
func ArrayValue(elems []Value) Value { return Value{Kind: Array, Elems: elems} }

// String renders a value the way the CLI's `run` subcommand prints a
// program's final result.
func (v Value) String() string {
	switch v.Kind {
	case None:
		return "none"
	case Number:
		return fmt.Sprintf("%d", v.Number)
	case Real:
		return fmt.Sprintf("%g", v.Real)
	case Unsigned:
		return fmt.Sprintf("%d", v.Unsigned)
	case Byte:
		return fmt.Sprintf("%d", v.Byte)
	case Bit:
		return fmt.Sprintf("%t", v.Bit)
	case String:
		return v.Str
	case Function:
		return "<function>"
	case Object:
		return fmt.Sprintf("<object %s>", v.Obj.Class)
	case Pointer:
		return "<pointer>"
	case Array:
		return fmt.Sprintf("<array of %d>", len(v.Elems))
	default:
		return "<invalid>"
	}
}

// isNumeric reports whether the value participates in the NUMBER/REAL/
// UNSIGNED arithmetic lattice (§4.7).
func (v Value) isNumeric() bool {
	switch v.Kind {
	case Number, Real, Unsigned, Byte, Bit:
		return true
	default:
		return false
	}
}
