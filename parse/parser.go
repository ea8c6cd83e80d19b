package parse

import (
	"strconv"
	"strings"
)

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithLabel sets the label used to name the input in diagnostics,
// typically a file name.
func WithLabel(label string) Option {
	return func(p *Parser) {
		p.label = label
	}
}

// WithTrivia replaces the default whitespace and comment policy.
func WithTrivia(trivia Trivia) Option {
	return func(p *Parser) {
		p.trivia = trivia
	}
}

// WithNameRunes sets the symbol characters permitted in names in
// addition to ASCII letters and digits.
func WithNameRunes(symbols string) Option {
	return func(p *Parser) {
		p.nameRunes = symbols
	}
}

// Parser owns an input buffer and the cursor over it, and provides the
// token-level primitives grammar code is written in terms of. Grammar
// packages embed or wrap a Parser and add their own methods; a failing
// primitive returns a *ParseError and leaves the cursor at the failure
// position, so callers that want to try another alternative must
// Save and Restore around the attempt.
type Parser struct {
	Cursor
	label     string
	trivia    Trivia
	nameRunes string
}

// New returns a parser positioned at the start of input.
func New(input string, opts ...Option) *Parser {
	p := &Parser{
		Cursor:    Cursor{buffer: []rune(input)},
		trivia:    DefaultTrivia,
		nameRunes: "_.-/$",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Label returns the diagnostic label set via WithLabel.
func (p *Parser) Label() string {
	return p.label
}

// Input returns the full input buffer as a string.
func (p *Parser) Input() string {
	return string(p.buffer)
}

// Expected builds the failure value for a mismatch at the current
// position, capturing a short preview of the upcoming input. Grammar
// code calls it to report expectations of its own; see Consume for the
// shape of primitive failures.
func (p *Parser) Expected(what string) *ParseError {
	return &ParseError{
		Position: p.index,
		Expected: what,
		Found:    preview(p.PeekMany(foundPreviewLen)),
	}
}

const foundPreviewLen = 16

// preview trims an upcoming-input sample to a single line so the
// "found" part of a diagnostic never wraps.
func preview(upcoming []rune) string {
	s := string(upcoming)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s
}

// SkipTrivia consumes whitespace and comments until the next
// significant character or end of input. It never fails: an
// unterminated comment is consumed through end of input. Calling it
// again immediately is a no-op.
func (p *Parser) SkipTrivia() {
	for {
		ch, ok := p.PeekOne()
		if !ok {
			return
		}
		switch {
		case p.isSpace(ch):
			p.AdvanceOne()
		case p.skipLineComment():
		case p.skipBlockComment():
		default:
			return
		}
	}
}

// SkipSpaces consumes whitespace only, leaving comments in place.
func (p *Parser) SkipSpaces() {
	for {
		ch, ok := p.PeekOne()
		if !ok || !p.isSpace(ch) {
			return
		}
		p.AdvanceOne()
	}
}

func (p *Parser) isSpace(ch rune) bool {
	return p.trivia.IsSpace != nil && p.trivia.IsSpace(ch)
}

// skipLineComment consumes one line comment, including its terminating
// newline, and reports whether it found one.
func (p *Parser) skipLineComment() bool {
	for _, open := range p.trivia.Lines {
		if !p.StartsWith(open) {
			continue
		}
		p.AdvanceMany(len([]rune(open)))
		for p.Remaining() {
			if p.AdvanceOne() == '\n' {
				break
			}
		}
		return true
	}
	return false
}

// skipBlockComment consumes one block comment through its closing
// delimiter, or through end of input when unterminated, and reports
// whether it found one.
func (p *Parser) skipBlockComment() bool {
	for _, delims := range p.trivia.Blocks {
		open, close := delims[0], delims[1]
		if !p.StartsWith(open) {
			continue
		}
		p.AdvanceMany(len([]rune(open)))
		for p.Remaining() {
			if p.StartsWith(close) {
				p.AdvanceMany(len([]rune(close)))
				return true
			}
			p.AdvanceOne()
		}
		return true
	}
	return false
}

// StartsWith reports whether the upcoming input begins with text. The
// cursor does not move and trivia is not skipped.
func (p *Parser) StartsWith(text string) bool {
	want := []rune(text)
	have := p.PeekMany(len(want))
	if len(have) != len(want) {
		return false
	}
	for i := range want {
		if have[i] != want[i] {
			return false
		}
	}
	return true
}

// Consume skips trivia and then consumes literal. On mismatch it fails
// with the cursor left at the first significant character, so the
// diagnostic points past any skipped whitespace and comments.
func (p *Parser) Consume(literal string) error {
	p.SkipTrivia()
	return p.ConsumeExact(literal)
}

// ConsumeExact consumes literal at the current position, without
// skipping trivia first.
func (p *Parser) ConsumeExact(literal string) error {
	if !p.StartsWith(literal) {
		return p.Expected(strconv.Quote(literal))
	}
	p.AdvanceMany(len([]rune(literal)))
	return nil
}

// TakeWhile consumes the maximal run of characters satisfying f and
// returns it. The run may be empty, in which case the cursor does not
// move.
func (p *Parser) TakeWhile(f func(rune) bool) string {
	start := p.index
	for {
		ch, ok := p.PeekOne()
		if !ok || !f(ch) {
			break
		}
		p.AdvanceOne()
	}
	return string(p.buffer[start:p.index])
}

// ParseName skips trivia and consumes a maximal nonempty run of name
// characters: ASCII letters, digits, and the symbol set configured via
// WithNameRunes. On an empty run it fails without moving the cursor
// past the skipped trivia.
func (p *Parser) ParseName() (string, error) {
	p.SkipTrivia()
	name := p.TakeWhile(p.isNameRune)
	if name == "" {
		return "", p.Expected("a name")
	}
	return name, nil
}

func (p *Parser) isNameRune(ch rune) bool {
	switch {
	case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
		return true
	}
	return strings.ContainsRune(p.nameRunes, ch)
}

// PeekIs reports whether the next character satisfies f. Trivia is not
// skipped: callers skip once before a dispatch point and then branch
// on lookahead.
func (p *Parser) PeekIs(f func(rune) bool) bool {
	ch, ok := p.PeekOne()
	return ok && f(ch)
}

// PeekOneIs reports whether the next character equals ch.
func (p *Parser) PeekOneIs(ch rune) bool {
	got, ok := p.PeekOne()
	return ok && got == ch
}
