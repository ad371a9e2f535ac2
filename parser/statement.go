package parser

import "github.com/ayzg/candi/token"

// FindStatement advances from begin to the first closeKind token at bracket
// depth zero, treating all three bracket kinds as nesting symmetrically so a
// `;` inside a `(...)` or `{...}` is not mistaken for the statement's own
// terminator (§4.2). begin is expected to hold openKind (or an opening
// bracket when openKind is itself a bracket, e.g. a function body scope).
func FindStatement(toks []token.Token, openKind, closeKind, begin, end int) ScopeResult {
	depth := 0
	for i := begin; i < end; i++ {
		k := toks[i].Kind

		if isOpenBracket(k) {
			depth++
			continue
		}

		if isCloseBracket(k) {
			depth--
			if depth == 0 && k == closeKind {
				return ScopeResult{OK: true, ScopeBegin: begin, ScopeEnd: i + 1, ContainedBegin: begin + 1, ContainedEnd: i}
			}
			continue
		}

		if depth == 0 && k == closeKind {
			return ScopeResult{OK: true, ScopeBegin: begin, ScopeEnd: i + 1, ContainedBegin: begin + 1, ContainedEnd: i}
		}
	}

	return ScopeResult{OK: false}
}

// FindOpenStatement is the identifier-led-statement variant of FindStatement,
// for statements whose leading token kind (e.g. `alnumus`) may recur inside
// the statement body at depth zero. FindStatement's bracket depth tracking
// already ignores the opening kind once scanning begins, so this is the same
// scan under another name (§4.2). The parser itself does not call it:
// ParseIdentifierStatement uses FindStatement.
func FindOpenStatement(toks []token.Token, openKind, closeKind, begin, end int) ScopeResult {
	return FindStatement(toks, openKind, closeKind, begin, end)
}

// SplitScope splits an already-bracketed scope's contained range at every
// top-level sepKind token into a sequence of sub-ranges suitable for further
// parsing (e.g. a comma-separated argument list) (§4.2).
func SplitScope(toks []token.Token, begin, end, sepKind int) [][2]int {
	if begin >= end {
		return nil
	}

	var parts [][2]int
	depth := 0
	partStart := begin

	for i := begin; i < end; i++ {
		k := toks[i].Kind
		switch {
		case isOpenBracket(k):
			depth++
		case isCloseBracket(k):
			depth--
		case depth == 0 && k == sepKind:
			parts = append(parts, [2]int{partStart, i})
			partStart = i + 1
		}
	}

	parts = append(parts, [2]int{partStart, end})
	return parts
}
