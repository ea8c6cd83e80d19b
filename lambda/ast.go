// Package lambda implements a parser for untyped λ-calculus terms,
// the reference grammar written against the parse primitives. Terms
// are λ<name><body> for abstractions, (<fn> <arg>) for applications,
// and a bare name for variables.
package lambda

import "fmt"

// Term is the interface implemented by all term nodes.
type Term interface {
	term()
	fmt.Stringer
}

// Abs is an abstraction binding Param in Body.
type Abs struct {
	Param string
	Body  Term
}

// App applies Fn to Arg.
type App struct {
	Fn  Term
	Arg Term
}

// Var references a bound or free name.
type Var struct {
	Name string
}

func (Abs) term() {}
func (App) term() {}
func (Var) term() {}

func (t Abs) String() string {
	return fmt.Sprintf("λ%s %s", t.Param, t.Body)
}

func (t App) String() string {
	return fmt.Sprintf("(%s %s)", t.Fn, t.Arg)
}

func (t Var) String() string {
	return t.Name
}
