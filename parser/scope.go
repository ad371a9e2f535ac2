package parser

import (
	"github.com/ayzg/candi/report"
	"github.com/ayzg/candi/token"
)

// ScopeResult is the outcome of a scope or statement finder (§4.2): the
// bracketed range itself plus the sub-range strictly inside the brackets.
// ScopeEnd is one past the closing token.
type ScopeResult struct {
	OK                           bool
	ScopeBegin, ScopeEnd         int
	ContainedBegin, ContainedEnd int
	Diagnostic                   *report.Diagnostic
}

// IsEmpty reports whether the contained range holds no tokens.
func (s ScopeResult) IsEmpty() bool {
	return s.ContainedBegin >= s.ContainedEnd
}

// findBracketScope matches begin (which must hold openKind) against its
// closing closeKind, tracking all three bracket kinds simultaneously so a
// `{` nested inside a `(` must close before the `)` does (§4.2, §9
// "Scope-search policy").
func findBracketScope(toks []token.Token, begin, end, openKind, closeKind int) ScopeResult {
	if begin >= end || toks[begin].Kind != openKind {
		return ScopeResult{OK: false, Diagnostic: report.Raise("find_scope", tokSpan(toks, begin, end), "expected opening bracket")}
	}

	stack := []int{openKind}
	i := begin + 1
	for i < end && len(stack) > 0 {
		k := toks[i].Kind
		switch {
		case isOpenBracket(k):
			stack = append(stack, k)
		case isCloseBracket(k):
			top := stack[len(stack)-1]
			if !bracketsMatch(top, k) {
				return ScopeResult{OK: false, Diagnostic: report.Raise("find_scope", toks[i].Span, "mismatched bracket %q", token.KindName(k))}
			}
			stack = stack[:len(stack)-1]
		}
		i++
	}

	if len(stack) != 0 {
		return ScopeResult{OK: false, Diagnostic: report.Raise("find_scope", tokSpan(toks, begin, end), "mismatched parenthesis")}
	}

	return ScopeResult{
		OK:             true,
		ScopeBegin:     begin,
		ScopeEnd:       i,
		ContainedBegin: begin + 1,
		ContainedEnd:   i - 1,
	}
}

// FindParenScope matches `(` / `)` starting at begin (§4.2).
func FindParenScope(toks []token.Token, begin, end int) ScopeResult {
	return findBracketScope(toks, begin, end, token.OPEN_SCOPE, token.CLOSE_SCOPE)
}

// FindListScope matches `{` / `}` starting at begin (§4.2).
func FindListScope(toks []token.Token, begin, end int) ScopeResult {
	return findBracketScope(toks, begin, end, token.OPEN_LIST, token.CLOSE_LIST)
}

// FindFrameScope matches `[` / `]` starting at begin (§4.2).
func FindFrameScope(toks []token.Token, begin, end int) ScopeResult {
	return findBracketScope(toks, begin, end, token.OPEN_FRAME, token.CLOSE_FRAME)
}

// tokSpan returns the span of the token at idx, falling back to the last
// token in range for diagnostics raised past the end of input.
func tokSpan(toks []token.Token, idx, end int) *report.TextSpan {
	if idx < end && idx < len(toks) {
		return toks[idx].Span
	}
	if len(toks) > 0 {
		return toks[len(toks)-1].Span
	}
	return nil
}
