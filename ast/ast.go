// Package ast defines the Candi abstract syntax tree.
package ast

import "github.com/ayzg/candi/report"

// Kind is the closed set of AST node kinds (§3.2).
type Kind int

const (
	Invalid Kind = iota
	Pass // "none_" pass marker; no parser or evaluator code produces it.

	PragmaticBlock
	FunctionalBlock
	Expression
	Arguments

	Addition
	Subtraction
	Multiplication
	Division
	Modulo
	LogicalAnd
	LogicalOr
	Equality
	Inequality
	Less
	LessEq
	Greater
	GreaterEq
	SimpleAssignment
	Negation
	Period
	FunctionCall

	Alnumus
	NumberLiteral
	RealLiteral
	StringLiteral
	OctetLiteral
	BitLiteral
	UnsignedLiteral
	NoneLiteral

	AnonVariableDefinition
	AnonVariableDefinitionAssignment
	ConstrainedVariableDefinition
	TypeConstraints
	TypeDefinition

	MethodDefinition
	ShorthandVoidMethodDefinition
	ShorthandConstrainedVoidMethodDefinition
	ClassDefinition

	If
	While
	For
	On
	Return

	AInt
	AUint
	AReal
	AOctet
	ABit
	APointer
	AArray
	AType
	AValue
	AIdentity
)

var kindNames = map[Kind]string{
	Invalid: "invalid", Pass: "none",

	PragmaticBlock: "pragmatic_block", FunctionalBlock: "functional_block",
	Expression: "expression", Arguments: "arguments",

	Addition: "addition", Subtraction: "subtraction",
	Multiplication: "multiplication", Division: "division", Modulo: "modulo",
	LogicalAnd: "logical_AND", LogicalOr: "logical_OR",
	Equality: "equality", Inequality: "inequality",
	Less: "less", LessEq: "less_eq", Greater: "greater", GreaterEq: "greater_eq",
	SimpleAssignment: "simple_assignment", Negation: "negation",
	Period: "period", FunctionCall: "function_call",

	Alnumus: "alnumus", NumberLiteral: "number_literal",
	RealLiteral: "real_literal", StringLiteral: "string_literal",
	OctetLiteral: "octet_literal", BitLiteral: "bit_literal",
	UnsignedLiteral: "unsigned_literal", NoneLiteral: "none_literal",

	AnonVariableDefinition:           "anon_variable_definition",
	AnonVariableDefinitionAssignment: "anon_variable_definition_assignment",
	ConstrainedVariableDefinition:    "constrained_variable_definition",
	TypeConstraints:                  "type_constraints",
	TypeDefinition:                   "type_definition",

	MethodDefinition:                         "method_definition",
	ShorthandVoidMethodDefinition:             "shorthand_void_method_definition",
	ShorthandConstrainedVoidMethodDefinition:  "shorthand_constrained_void_method_definition",
	ClassDefinition: "class_definition",

	If: "if", While: "while", For: "for", On: "on", Return: "return",

	AInt: "aint", AUint: "auint", AReal: "areal", AOctet: "aoctet",
	ABit: "abit", APointer: "apointer", AArray: "aarray",
	AType: "atype", AValue: "avalue", AIdentity: "aidentity",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Node is a single AST node.  Each node exclusively owns its Children; there
// are no back-references from child to parent (§3.2 Ownership). The tree is
// finite, acyclic, and built bottom-up.
type Node struct {
	Kind     Kind
	Literal  string
	Span     *report.TextSpan
	Children []*Node
}

// New creates a leaf node of the given kind.
func New(kind Kind, literal string, span *report.TextSpan) *Node {
	return &Node{Kind: kind, Literal: literal, Span: span}
}

// Push appends a child and returns the node itself, for chained construction.
func (n *Node) Push(child *Node) *Node {
	n.Children = append(n.Children, child)
	return n
}

// Child returns the i'th child, or nil if out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}
