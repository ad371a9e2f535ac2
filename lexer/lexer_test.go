package lexer

import (
	"strings"
	"testing"

	"github.com/ayzg/candi/token"
)

func kinds(t *testing.T, src string) []int {
	t.Helper()
	toks, err := Tokenize(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", src, err)
	}
	ks := make([]int, len(toks))
	for i, tok := range toks {
		ks[i] = tok.Kind
	}
	return ks
}

func TestTokenizePunctuation(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []int
	}{
		{"parens", "()", []int{token.OPEN_SCOPE, token.CLOSE_SCOPE, token.EOF}},
		{"braces", "{}", []int{token.OPEN_LIST, token.CLOSE_LIST, token.EOF}},
		{"brackets", "[]", []int{token.OPEN_FRAME, token.CLOSE_FRAME, token.EOF}},
		{"semicolon", ";", []int{token.EOS, token.EOF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kinds(t, tt.src)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestTokenizeNumericLiterals(t *testing.T) {
	tests := []struct {
		name string
		src  string
		lit  string
		kind int
	}{
		{"integer", "42;", "42", token.NUMBER_LITERAL},
		{"real", "3.14;", "3.14", token.REAL_LITERAL},
		{"unsigned", "10u;", "10u", token.UNSIGNED_LITERAL},
		{"octet", "255c;", "255c", token.OCTET_LITERAL},
		{"bit", "1b;", "1b", token.BIT_LITERAL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := Tokenize(strings.NewReader(tt.src))
			if err != nil {
				t.Fatalf("Tokenize(%q): %v", tt.src, err)
			}
			if len(toks) == 0 || toks[0].Kind != tt.kind || toks[0].Literal != tt.lit {
				t.Fatalf("got %+v, want kind=%d literal=%q", toks[0], tt.kind, tt.lit)
			}
		})
	}
}

func TestTokenizeStringLiteral(t *testing.T) {
	toks, err := Tokenize(strings.NewReader(`'hello\nworld';`))
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if toks[0].Kind != token.STRING_LITERAL {
		t.Fatalf("got kind %d, want STRING_LITERAL", toks[0].Kind)
	}
}

func TestTokenizeDirectiveKeyword(t *testing.T) {
	toks, err := Tokenize(strings.NewReader("#var x;"))
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if toks[0].Kind != token.VAR {
		t.Fatalf("got kind %d, want VAR", toks[0].Kind)
	}
}

func TestTokenizeMixedModeRejected(t *testing.T) {
	// bare `var` commits the file to bare-keyword mode; a later `#func`
	// directive keyword conflicts with that commitment (§4.1).
	_, err := Tokenize(strings.NewReader("var x; #func f() {}"))
	if err == nil {
		t.Fatalf("expected a mixed-mode keyword error, got none")
	}
}
