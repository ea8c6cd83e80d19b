package lambda

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dhamidi/parsekit/parse"
)

func TestParseCanonicalTerm(t *testing.T) {
	term, err := Parse("λx(λy(x y) λz z)")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := Abs{
		Param: "x",
		Body: App{
			Fn: Abs{
				Param: "y",
				Body:  App{Fn: Var{Name: "x"}, Arg: Var{Name: "y"}},
			},
			Arg: Abs{Param: "z", Body: Var{Name: "z"}},
		},
	}
	if diff := cmp.Diff(want, term); diff != "" {
		t.Errorf("term mismatch (-want +got):\n%s", diff)
	}
}

func TestParseVariants(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Term
	}{
		{"variable", "x", Var{Name: "x"}},
		{"identity", "λx x", Abs{Param: "x", Body: Var{Name: "x"}}},
		{"application", "(f x)", App{Fn: Var{Name: "f"}, Arg: Var{Name: "x"}}},
		{
			"nested application",
			"((f x) y)",
			App{
				Fn:  App{Fn: Var{Name: "f"}, Arg: Var{Name: "x"}},
				Arg: Var{Name: "y"},
			},
		},
		{"surrounding trivia", "  λx x  ", Abs{Param: "x", Body: Var{Name: "x"}}},
		{
			"comments between tokens",
			"(f // apply\n x)",
			App{Fn: Var{Name: "f"}, Arg: Var{Name: "x"}},
		},
		{
			"block comment",
			"λx /* body */ x",
			Abs{Param: "x", Body: Var{Name: "x"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, term); diff != "" {
				t.Errorf("term mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	term, err := Parse("λx(λy(x y) λz z)")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	rendered := term.String()
	if rendered != "λx (λy (x y) λz z)" {
		t.Errorf("String() = %q", rendered)
	}

	again, err := Parse(rendered)
	if err != nil {
		t.Fatalf("Parse of rendered form failed: %v", err)
	}
	if diff := cmp.Diff(term, again); diff != "" {
		t.Errorf("round trip changed the term (-first +second):\n%s", diff)
	}
}

func TestParseMissingCloseParen(t *testing.T) {
	_, err := Parse("λx(λy(x y) λz z")
	if err == nil {
		t.Fatal("Parse accepted a term with an unclosed application")
	}

	var perr *parse.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error is %T, want *parse.ParseError", err)
	}
	if !strings.Contains(perr.Expected, ")") {
		t.Errorf("Expected = %q, want it to name \")\"", perr.Expected)
	}
}

func TestParseFailures(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty input", "", "a name"},
		{"missing body", "λx", "a name"},
		{"missing argument", "(f )", "a name"},
		{"missing binder", "λ (x y)", "a name"},
		{"trailing input", "x y", "end of input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded", tt.input)
			}
			var perr *parse.ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("error is %T, want *parse.ParseError", err)
			}
			if perr.Expected != tt.expected {
				t.Errorf("Expected = %q, want %q", perr.Expected, tt.expected)
			}
		})
	}
}

func TestParseErrorReport(t *testing.T) {
	input := "λx(λy(x y) λz z"
	_, err := Parse(input, parse.WithLabel("term.lam"))

	var perr *parse.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error is %T, want *parse.ParseError", err)
	}

	out := parse.Reporter{Label: "term.lam"}.Report(input, perr)
	if !strings.HasPrefix(out, "term.lam:1:16:") {
		t.Errorf("report = %q, want position 1:16", out)
	}
	if !strings.Contains(out, input) {
		t.Errorf("report does not include the source line: %q", out)
	}
}

func TestMarshalJSON(t *testing.T) {
	term, err := Parse("λx (x y)")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	data, err := json.Marshal(term)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	want := `{"kind":"abs","param":"x","body":{"kind":"app","fn":{"kind":"var","name":"x"},"arg":{"kind":"var","name":"y"}}}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}
