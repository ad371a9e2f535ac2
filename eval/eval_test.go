package eval

import (
	"strings"
	"testing"

	"github.com/ayzg/candi/lexer"
	"github.com/ayzg/candi/parser"
)

func run(t *testing.T, src string) Value {
	t.Helper()
	toks, err := lexer.Tokenize(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Tokenize(%q): %v", src, err)
	}
	root, err := parser.Parse(toks)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	result, err := NewEvaluator().Run(root)
	if err != nil {
		t.Fatalf("Run(%q): %v", src, err)
	}
	return result
}

func TestEvalArithmetic(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"var x = 1+2;", "3"},
		{"var x = (1+1)*3;", "6"},
		{"var x = 10/4;", "2"},
		{"var x = 10%4;", "2"},
	}
	for _, tt := range tests {
		got := run(t, tt.src)
		if got.String() != tt.want {
			t.Errorf("eval(%q) = %s, want %s", tt.src, got.String(), tt.want)
		}
	}
}

func TestEvalRealPromotion(t *testing.T) {
	got := run(t, "var x = 1+2.5;")
	if got.Kind != Real {
		t.Fatalf("expected REAL result, got %s", got.Kind)
	}
	if got.Real != 3.5 {
		t.Fatalf("got %v, want 3.5", got.Real)
	}
}

func TestEvalAssignmentChain(t *testing.T) {
	got := run(t, "var a = 1; var b = 1; var c = 5; a = b = c;")
	if got.String() != "5" {
		t.Fatalf("got %s, want 5", got.String())
	}
}

func TestEvalFunctionCall(t *testing.T) {
	got := run(t, `
		func add(x, y) {
			return x + y;
		};
		var r = add(2, 3);
	`)
	if got.String() != "5" {
		t.Fatalf("got %s, want 5", got.String())
	}
}

func TestEvalIfElse(t *testing.T) {
	got := run(t, `
		var x = 0;
		func pick() {
			if x == 0 {
				return 1;
			} else {
				return 2;
			}
		};
		var r = pick();
	`)
	if got.String() != "1" {
		t.Fatalf("got %s, want 1", got.String())
	}
}

func TestEvalWhileLoop(t *testing.T) {
	got := run(t, `
		func count() {
			var i = 0;
			var total = 0;
			while i < 5 {
				total = total + i;
				i = i + 1;
			}
			return total;
		};
		var r = count();
	`)
	if got.String() != "10" {
		t.Fatalf("got %s, want 10", got.String())
	}
}

func TestEvalClassInstantiation(t *testing.T) {
	got := run(t, `
		class Point {
			var x = 0;
			var y = 0;
		};
		var p1 = Point();
		var p2 = Point();
	`)
	if got.Kind != Object {
		t.Fatalf("expected OBJECT result, got %s", got.Kind)
	}
}

func TestEvalConstrainedDefaults(t *testing.T) {
	got := run(t, "var [&pointer[&int]] p;")
	if got.Kind != Pointer {
		t.Fatalf("expected POINTER default, got %s", got.Kind)
	}
	if got.Ptr.Value.Kind != None {
		t.Fatalf("expected pointer to wrap a NONE cell, got %s", got.Ptr.Value.Kind)
	}

	got = run(t, "var [&array[&int, 3]] arr;")
	if got.Kind != Array {
		t.Fatalf("expected ARRAY default, got %s", got.Kind)
	}
	if len(got.Elems) != 3 {
		t.Fatalf("got %d elements, want 3", len(got.Elems))
	}

	got = run(t, "var [&int] n;")
	if got.Kind != Number || got.Number != 0 {
		t.Fatalf("expected NUMBER 0 default, got %s %v", got.Kind, got.Number)
	}
}

func TestEvalUndefinedNameIsError(t *testing.T) {
	toks, err := lexer.Tokenize(strings.NewReader("var x = y;"))
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	root, err := parser.Parse(toks)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := NewEvaluator().Run(root); err == nil {
		t.Fatalf("expected an undefined-name error, got none")
	}
}
