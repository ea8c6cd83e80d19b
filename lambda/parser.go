package lambda

import (
	"github.com/dhamidi/parsekit/parse"
)

// Parser reads λ-calculus terms from an input buffer. It wraps a
// parse.Parser, so all of the cursor and primitive operations are
// available alongside the grammar methods.
type Parser struct {
	*parse.Parser
}

// NewParser returns a term parser over input.
func NewParser(input string, opts ...parse.Option) *Parser {
	return &Parser{Parser: parse.New(input, opts...)}
}

// Parse parses input as a single term and requires the whole input to
// be consumed, trailing trivia aside.
func Parse(input string, opts ...parse.Option) (Term, error) {
	p := NewParser(input, opts...)
	term, err := p.ParseTerm()
	if err != nil {
		return nil, err
	}
	p.SkipTrivia()
	if p.Remaining() {
		return nil, p.Expected("end of input")
	}
	return term, nil
}

// ParseTerm parses one term, leaving the cursor after it.
func (p *Parser) ParseTerm() (Term, error) {
	p.SkipTrivia()
	switch {
	case p.PeekOneIs('λ'):
		p.AdvanceOne()
		name, err := p.ParseName()
		if err != nil {
			return nil, err
		}
		body, err := p.ParseTerm()
		if err != nil {
			return nil, err
		}
		return Abs{Param: name, Body: body}, nil

	case p.PeekOneIs('('):
		p.AdvanceOne()
		fn, err := p.ParseTerm()
		if err != nil {
			return nil, err
		}
		arg, err := p.ParseTerm()
		if err != nil {
			return nil, err
		}
		if err := p.Consume(")"); err != nil {
			return nil, err
		}
		return App{Fn: fn, Arg: arg}, nil

	default:
		name, err := p.ParseName()
		if err != nil {
			return nil, err
		}
		return Var{Name: name}, nil
	}
}
