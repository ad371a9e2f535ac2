// Package preprocess implements the token-level `#include`/`#macro`
// expansion pass that runs between tokenization and parsing (§2, §4.4,
// §6). Its single-pass, hideset-free substitution is grounded on the
// chibicc-family preprocessors (see DESIGN.md): Candi has no conditional
// compilation to track, so the design simplifies to include-splicing plus
// one macro-substitution sweep guarded by a recursion-depth counter.
package preprocess

import (
	"fmt"

	"github.com/ayzg/candi/report"
	"github.com/ayzg/candi/token"
)

// Resolver tokenizes the file named by an `#include "path"` directive,
// returning its token stream (the trailing eof is stripped by Expand).
type Resolver func(path string) ([]token.Token, error)

// maxIncludeDepth bounds recursive #include expansion against cycles; the
// source material has no such guard because it never extracted a
// preprocessor at all (see DESIGN.md).
const maxIncludeDepth = 64

// maxMacroDepth bounds macro-body re-expansion the same way.
const maxMacroDepth = 64

// macro is a registered `#macro name(params) { body };` definition.
type macro struct {
	params []string
	body   []token.Token
}

// Expand runs `#include` splicing followed by `#macro` registration and
// call-site substitution over toks, producing a new token sequence ending in
// `eof` (§6 "Token stream to/from preprocessor").
func Expand(toks []token.Token, resolve Resolver) ([]token.Token, error) {
	spliced, err := expandIncludes(toks, resolve, 0)
	if err != nil {
		return nil, err
	}

	macros := make(map[string]*macro)
	stripped, err := collectMacros(spliced, macros)
	if err != nil {
		return nil, err
	}

	return expandMacroCalls(stripped, macros, 0)
}

// expandIncludes replaces every `#include "path"` directive with the
// referenced file's token stream, minus its trailing eof.
func expandIncludes(toks []token.Token, resolve Resolver, depth int) ([]token.Token, error) {
	if depth > maxIncludeDepth {
		return nil, fmt.Errorf("preprocess: #include nesting exceeds %d levels", maxIncludeDepth)
	}

	var out []token.Token
	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		if tok.Kind != token.INCLUDE {
			out = append(out, tok)
			continue
		}

		if i+1 >= len(toks) || toks[i+1].Kind != token.STRING_LITERAL {
			return nil, &report.Diagnostic{Production: "preprocess", Message: "expected a filename after #include", Span: tok.Span}
		}
		path := toks[i+1].Literal
		if len(path) >= 2 {
			path = path[1 : len(path)-1] // drop the quote delimiters kept in the literal
		}

		included, err := resolve(path)
		if err != nil {
			return nil, fmt.Errorf("preprocess: #include %q: %w", path, err)
		}
		included, err = expandIncludes(included, resolve, depth+1)
		if err != nil {
			return nil, err
		}
		if n := len(included); n > 0 && included[n-1].Kind == token.EOF {
			included = included[:n-1]
		}

		out = append(out, included...)
		i++ // skip the filename literal
	}
	return out, nil
}

// collectMacros scans for `#macro name(params) { body };` definitions,
// registering each and removing its defining tokens from the stream.
func collectMacros(toks []token.Token, macros map[string]*macro) ([]token.Token, error) {
	var out []token.Token
	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		if tok.Kind != token.MACRO {
			out = append(out, tok)
			continue
		}

		end, err := parseMacroDef(toks, i, macros)
		if err != nil {
			return nil, err
		}
		i = end - 1 // loop's i++ advances past the terminating eos
	}
	return out, nil
}

// parseMacroDef parses one `#macro name(p1, p2) { body };` definition
// beginning at i and registers it, returning the index one past the
// terminating `;`.
func parseMacroDef(toks []token.Token, i int, macros map[string]*macro) (int, error) {
	pos := i + 1
	if pos >= len(toks) || toks[pos].Kind != token.ALNUMUS {
		return 0, &report.Diagnostic{Production: "preprocess", Message: "expected a macro name after #macro", Span: tokenSpanAt(toks, pos)}
	}
	name := toks[pos].Literal
	pos++

	if pos >= len(toks) || toks[pos].Kind != token.OPEN_SCOPE {
		return 0, &report.Diagnostic{Production: "preprocess", Message: "expected '(' after macro name", Span: tokenSpanAt(toks, pos)}
	}
	closeParen, err := matchBracket(toks, pos, token.OPEN_SCOPE, token.CLOSE_SCOPE)
	if err != nil {
		return 0, err
	}
	var params []string
	for _, t := range toks[pos+1 : closeParen] {
		if t.Kind == token.ALNUMUS {
			params = append(params, t.Literal)
		}
	}
	pos = closeParen + 1

	if pos >= len(toks) || toks[pos].Kind != token.OPEN_LIST {
		return 0, &report.Diagnostic{Production: "preprocess", Message: "expected '{' opening macro body", Span: tokenSpanAt(toks, pos)}
	}
	closeBrace, err := matchBracket(toks, pos, token.OPEN_LIST, token.CLOSE_LIST)
	if err != nil {
		return 0, err
	}
	body := append([]token.Token(nil), toks[pos+1:closeBrace]...)
	pos = closeBrace + 1

	if pos >= len(toks) || toks[pos].Kind != token.EOS {
		return 0, &report.Diagnostic{Production: "preprocess", Message: "expected ';' terminating macro definition", Span: tokenSpanAt(toks, pos)}
	}
	pos++

	macros[name] = &macro{params: params, body: body}
	return pos, nil
}

// expandMacroCalls substitutes every call-shaped `name(actuals)` run whose
// name matches a registered macro, recursively re-expanding the result up to
// maxMacroDepth.
func expandMacroCalls(toks []token.Token, macros map[string]*macro, depth int) ([]token.Token, error) {
	if len(macros) == 0 {
		return toks, nil
	}
	if depth > maxMacroDepth {
		return nil, fmt.Errorf("preprocess: macro expansion exceeds %d levels", maxMacroDepth)
	}

	var out []token.Token
	expanded := false
	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		m, ok := macros[tok.Literal]
		if tok.Kind != token.ALNUMUS || !ok || i+1 >= len(toks) || toks[i+1].Kind != token.OPEN_SCOPE {
			out = append(out, tok)
			continue
		}

		closeParen, err := matchBracket(toks, i+1, token.OPEN_SCOPE, token.CLOSE_SCOPE)
		if err != nil {
			return nil, err
		}
		actuals := splitOnComma(toks[i+2 : closeParen])
		substituted := substituteParams(m, actuals)

		out = append(out, substituted...)
		expanded = true
		i = closeParen
	}

	if !expanded {
		return out, nil
	}
	return expandMacroCalls(out, macros, depth+1)
}

// substituteParams replaces each parameter occurrence in a macro's body with
// its corresponding actual argument's tokens.
func substituteParams(m *macro, actuals [][]token.Token) []token.Token {
	var out []token.Token
	for _, t := range m.body {
		substituted := false
		if t.Kind == token.ALNUMUS {
			for pi, p := range m.params {
				if p == t.Literal && pi < len(actuals) {
					out = append(out, actuals[pi]...)
					substituted = true
					break
				}
			}
		}
		if !substituted {
			out = append(out, t)
		}
	}
	return out
}

// splitOnComma splits a token run at every top-level comma, tracking all
// three bracket kinds symmetrically like the parser's scope finders (§4.2).
func splitOnComma(toks []token.Token) [][]token.Token {
	if len(toks) == 0 {
		return nil
	}

	var parts [][]token.Token
	depth := 0
	start := 0
	for i, t := range toks {
		switch t.Kind {
		case token.OPEN_SCOPE, token.OPEN_LIST, token.OPEN_FRAME:
			depth++
		case token.CLOSE_SCOPE, token.CLOSE_LIST, token.CLOSE_FRAME:
			depth--
		case token.COMMA:
			if depth == 0 {
				parts = append(parts, toks[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, toks[start:])
	return parts
}

// matchBracket finds the index of the bracket that closes the opener at
// openIdx, tracking nested brackets of the same kind.
func matchBracket(toks []token.Token, openIdx, openKind, closeKind int) (int, error) {
	depth := 0
	for i := openIdx; i < len(toks); i++ {
		switch toks[i].Kind {
		case openKind:
			depth++
		case closeKind:
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, &report.Diagnostic{Production: "preprocess", Message: "mismatched bracket", Span: tokenSpanAt(toks, openIdx)}
}

func tokenSpanAt(toks []token.Token, i int) *report.TextSpan {
	if i >= 0 && i < len(toks) {
		return toks[i].Span
	}
	if len(toks) > 0 {
		return toks[len(toks)-1].Span
	}
	return nil
}
