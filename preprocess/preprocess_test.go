package preprocess

import (
	"strings"
	"testing"

	"github.com/ayzg/candi/lexer"
	"github.com/ayzg/candi/token"
)

func tokenizeOrFatal(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, err := lexer.Tokenize(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", src, err)
	}
	return toks
}

func literals(toks []token.Token) []string {
	out := make([]string, 0, len(toks))
	for _, tok := range toks {
		if tok.Kind == token.EOF {
			continue
		}
		out = append(out, tok.Literal)
	}
	return out
}

func TestExpandIncludeSplicesFile(t *testing.T) {
	main := tokenizeOrFatal(t, `include 'lib.cd' var x = 1;`)

	resolve := func(path string) ([]token.Token, error) {
		if path != "lib.cd" {
			t.Fatalf("resolve called with unexpected path %q", path)
		}
		return tokenizeOrFatal(t, "var y = 2;"), nil
	}

	out, err := Expand(main, resolve)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}

	got := strings.Join(literals(out), " ")
	want := "var y = 2 ; var x = 1 ;"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestExpandIncludeNestedSplice(t *testing.T) {
	main := tokenizeOrFatal(t, `include 'a.cd'`)

	resolve := func(path string) ([]token.Token, error) {
		switch path {
		case "a.cd":
			return tokenizeOrFatal(t, `include 'b.cd'`), nil
		case "b.cd":
			return tokenizeOrFatal(t, "var z = 9;"), nil
		}
		t.Fatalf("unexpected include path %q", path)
		return nil, nil
	}

	out, err := Expand(main, resolve)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	got := strings.Join(literals(out), " ")
	if got != "var z = 9 ;" {
		t.Fatalf("got %q, want %q", got, "var z = 9 ;")
	}
}

func TestExpandIncludeMissingFilenameIsError(t *testing.T) {
	main := tokenizeOrFatal(t, "include")
	resolve := func(path string) ([]token.Token, error) {
		t.Fatalf("resolve should not be called")
		return nil, nil
	}
	if _, err := Expand(main, resolve); err == nil {
		t.Fatalf("expected an error for a dangling #include")
	}
}

func noIncludes(path string) ([]token.Token, error) {
	return nil, nil
}

func TestExpandMacroSubstitutesArguments(t *testing.T) {
	toks := tokenizeOrFatal(t, `macro sum(a, b) { a + b }; var x = sum(1, 2);`)

	out, err := Expand(toks, noIncludes)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}

	got := strings.Join(literals(out), " ")
	want := "var x = 1 + 2 ;"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestExpandMacroNestedCall(t *testing.T) {
	toks := tokenizeOrFatal(t, `macro double(a) { a + a }; macro quad(a) { double(a) + double(a) }; var x = quad(1);`)

	out, err := Expand(toks, noIncludes)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}

	got := strings.Join(literals(out), " ")
	want := "var x = 1 + 1 + 1 + 1 ;"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestExpandLeavesUnmatchedCallsAlone(t *testing.T) {
	toks := tokenizeOrFatal(t, `macro sum(a, b) { a + b }; var x = other(1, 2);`)

	out, err := Expand(toks, noIncludes)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}

	got := strings.Join(literals(out), " ")
	want := "var x = other ( 1 , 2 ) ;"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
