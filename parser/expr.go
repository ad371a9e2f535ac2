package parser

import (
	"github.com/ayzg/candi/ast"
	"github.com/ayzg/candi/report"
	"github.com/ayzg/candi/token"
)

// isOperandKind reports whether kind can stand alone as a primary operand: a
// literal of any kind, or an identifier.
func isOperandKind(kind int) bool {
	switch kind {
	case token.NUMBER_LITERAL, token.REAL_LITERAL, token.STRING_LITERAL,
		token.OCTET_LITERAL, token.BIT_LITERAL, token.UNSIGNED_LITERAL,
		token.ALNUMUS, token.NONE_LITERAL:
		return true
	}
	return false
}

// BuildStatement is the expression builder (§4.3): given [begin, end) known
// to hold a single expression, it materialises one AST node for it.
//
// The source material's build_statement threads an explicit optional
// "last_pass" node through the recursion as it assembles a binary operation
// one token at a time (§9 "last pass"). This is the textbook
// precedence-climbing algorithm under another name; §9 explicitly permits
// "flatten[ing] it into an explicit operator stack" as long as the AST
// produced for §8's scenarios is unchanged, which is what parseOperand/
// climbBinary below do — climbBinary's inner loop is the same continuation
// the source's last_pass represents, just iterative rather than
// continuation-passing.
//
// Scope and expression errors are non-recoverable within the current
// expression (§7): BuildStatement panics with a *report.Diagnostic to be
// recovered by the caller at the nearest statement/block boundary.
func BuildStatement(toks []token.Token, begin, end int) *ast.Node {
	if begin >= end {
		panic(report.Raise("build_statement", tokSpan(toks, begin, end), "empty expression"))
	}

	pos := begin
	lhs := parseOperand(toks, &pos, end)
	result := climbBinary(toks, lhs, &pos, end, 0)

	if pos != end {
		panic(report.Raise("build_statement", tokSpan(toks, pos, end), "unexpected trailing token %q", toks[pos].Literal))
	}

	return result
}

// parseOperand parses one primary operand at *pos: a unary-prefixed
// subexpression, a parenthesized subexpression, or a plain literal/
// identifier, then folds in every immediately-following `.name` or `(...)`
// suffix left-to-right via parseSuffixChain. `.` and `()` share the single
// highest-importance group (§4.3 "member / call (highest)", left-assoc), so
// they must be resolved together at this primary level rather than letting
// `.` fall through to climbBinary — otherwise a call suffix attaches to the
// bare name instead of to the period_ node built from it, and a unary
// operand built from only a bare primary would bind looser than `.`
// (`-a.b` must parse as `negation_(period_(a,b))`, not
// `period_(negation_(a), b)`). *pos is advanced past the consumed tokens.
func parseOperand(toks []token.Token, pos *int, end int) *ast.Node {
	tok := at(toks, *pos, end)

	switch {
	case isUnaryOperator(tok.Kind):
		opNode := unaryNode(toks, *pos)
		*pos++
		if *pos >= end {
			panic(report.Raise("build_statement", tokSpan(toks, *pos, end), "operator must be followed by an operand"))
		}
		opNode.Push(parseOperand(toks, pos, end))
		return opNode

	case tok.Kind == token.OPEN_SCOPE:
		scope := FindParenScope(toks, *pos, end)
		if !scope.OK {
			panic(report.Raise("build_statement", tokSpan(toks, *pos, end), "mismatched parenthesis"))
		}
		if scope.IsEmpty() {
			panic(report.Raise("build_statement", tokSpan(toks, *pos, end), "empty parenthesis"))
		}
		inner := BuildStatement(toks, scope.ContainedBegin, scope.ContainedEnd)
		*pos = scope.ScopeEnd
		return parseSuffixChain(toks, inner, pos, end)

	default:
		if !isOperandKind(tok.Kind) {
			panic(report.Raise("build_statement", tokSpan(toks, *pos, end), "invalid right-hand side operand"))
		}
		node := toNode(toks, *pos)
		*pos++
		return parseSuffixChain(toks, node, pos, end)
	}
}

// parseSuffixChain folds every immediately-following `.name` or `(...)`
// onto operand, left-associatively and in encounter order, so `a.b().c`
// builds period_(function_call_(period_(a,b), arguments_()), c) rather than
// resolving `.` and `()` as separate precedence levels (§4.3 "Function-call
// suffix"; §8 scenario 5).
func parseSuffixChain(toks []token.Token, operand *ast.Node, pos *int, end int) *ast.Node {
	for {
		tok := at(toks, *pos, end)
		switch tok.Kind {
		case token.OPEN_SCOPE:
			argScope := FindParenScope(toks, *pos, end)
			if !argScope.OK {
				panic(report.Raise("build_statement", tokSpan(toks, *pos, end), "mismatched parenthesis in function call arguments"))
			}

			call := ast.New(ast.FunctionCall, "()", spanOver(toks, operand.Span, argScope.ScopeEnd, end))
			call.Push(operand)
			call.Push(buildArguments(toks, argScope))

			operand = call
			*pos = argScope.ScopeEnd

		case token.PERIOD:
			nameIdx := *pos + 1
			if nameIdx >= end || at(toks, nameIdx, end).Kind != token.ALNUMUS {
				panic(report.Raise("build_statement", tokSpan(toks, *pos, end), "`.` must be followed by a member name"))
			}

			per := toNode(toks, *pos)
			per.Push(operand)
			per.Push(toNode(toks, nameIdx))

			operand = per
			*pos = nameIdx + 1

		default:
			return operand
		}
	}
}

// buildArguments splits a call's parenthesized scope on commas and builds
// one expression per slot, producing the arguments_ node (§3.2).
func buildArguments(toks []token.Token, scope ScopeResult) *ast.Node {
	args := ast.New(ast.Arguments, "()", nil)
	if scope.IsEmpty() {
		return args
	}
	for _, part := range SplitScope(toks, scope.ContainedBegin, scope.ContainedEnd, token.COMMA) {
		args.Push(BuildStatement(toks, part[0], part[1]))
	}
	return args
}

// climbBinary is the classic precedence-climbing loop (§4.3/§9): it repeatedly
// consumes a binary operator whose importance is at least minImportance,
// parses its right operand, and — before finalising that operator — lets any
// immediately following higher- (or equal-and-right-associative-) importance
// operator bind the right operand first by recursing.
func climbBinary(toks []token.Token, lhs *ast.Node, pos *int, end int, minImportance int) *ast.Node {
	for {
		opTok := at(toks, *pos, end)
		if !isBinaryOperator(opTok.Kind) || binaryImportance(opTok.Kind) < minImportance {
			return lhs
		}

		opIdx := *pos
		importance := binaryImportance(opTok.Kind)
		*pos++

		if *pos >= end {
			panic(report.Raise("build_statement", tokSpan(toks, *pos, end), "operator must be followed by an operand"))
		}

		rhs := parseOperand(toks, pos, end)

		for {
			lookahead := at(toks, *pos, end)
			if !isBinaryOperator(lookahead.Kind) {
				break
			}
			lookImportance := binaryImportance(lookahead.Kind)
			if lookImportance > importance || (lookImportance == importance && binaryRightAssoc(lookahead.Kind)) {
				rhs = climbBinary(toks, rhs, pos, end, lookImportance)
			} else {
				break
			}
		}

		node := toNode(toks, opIdx)
		node.Push(lhs)
		node.Push(rhs)
		lhs = node
	}
}

// spanOver returns a span covering from a node's own span to the token one
// before endExclusive.
func spanOver(toks []token.Token, start *report.TextSpan, endExclusive, hardEnd int) *report.TextSpan {
	lastIdx := endExclusive - 1
	if lastIdx >= len(toks) {
		lastIdx = len(toks) - 1
	}
	if lastIdx < 0 {
		return start
	}
	if start == nil {
		return toks[lastIdx].Span
	}
	return report.NewSpanOver(start, toks[lastIdx].Span)
}
