package parse

import (
	"strconv"
	"strings"
)

// ParseU64 skips trivia and parses an unsigned integer in decimal,
// hex ("0x"), or binary ("0b") notation. Underscores between digits
// are ignored. A value that does not fit in 64 bits is a ParseError,
// not a panic.
func (p *Parser) ParseU64() (uint64, error) {
	p.SkipTrivia()
	start := p.index
	base := 10
	digit := isDigit
	switch string(p.PeekMany(2)) {
	case "0x", "0X":
		p.AdvanceMany(2)
		base = 16
		digit = isHexDigit
	case "0b", "0B":
		p.AdvanceMany(2)
		base = 2
		digit = isBinDigit
	}
	text := p.TakeWhile(func(ch rune) bool { return digit(ch) || ch == '_' })
	text = strings.ReplaceAll(text, "_", "")
	if text == "" {
		return 0, p.Expected("a digit")
	}
	n, err := strconv.ParseUint(text, base, 64)
	if err != nil {
		return 0, &ParseError{
			Position: start,
			Expected: "a valid number",
			Found:    p.Slice(start, p.index),
		}
	}
	return n, nil
}

// ParseI64 skips trivia and parses a decimal integer with an optional
// leading sign.
func (p *Parser) ParseI64() (int64, error) {
	p.SkipTrivia()
	start := p.index
	if ch, ok := p.PeekOne(); ok && (ch == '+' || ch == '-') {
		p.AdvanceOne()
	}
	digits := p.TakeWhile(func(ch rune) bool { return isDigit(ch) || ch == '_' })
	if strings.Trim(digits, "_") == "" {
		return 0, p.Expected("a digit")
	}
	text := strings.ReplaceAll(p.Slice(start, p.index), "_", "")
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, &ParseError{
			Position: start,
			Expected: "a valid number",
			Found:    p.Slice(start, p.index),
		}
	}
	return n, nil
}

// ParseF64 skips trivia and parses a floating point number: an
// optional sign, a nonempty digit run, an optional fraction, and an
// optional exponent. A lone trailing "." or "e" is left unconsumed
// rather than treated as part of the number.
func (p *Parser) ParseF64() (float64, error) {
	p.SkipTrivia()
	start := p.index
	if ch, ok := p.PeekOne(); ok && (ch == '+' || ch == '-') {
		p.AdvanceOne()
	}
	if p.TakeWhile(isDigit) == "" {
		return 0, p.Expected("a digit")
	}
	if next := p.PeekMany(2); len(next) == 2 && next[0] == '.' && isDigit(next[1]) {
		p.AdvanceOne()
		p.TakeWhile(isDigit)
	}
	if ch, ok := p.PeekOne(); ok && (ch == 'e' || ch == 'E') {
		mark := p.Save()
		p.AdvanceOne()
		if ch, ok := p.PeekOne(); ok && (ch == '+' || ch == '-') {
			p.AdvanceOne()
		}
		if p.TakeWhile(isDigit) == "" {
			p.Restore(mark)
		}
	}
	text := p.Slice(start, p.index)
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, &ParseError{
			Position: start,
			Expected: "a valid number",
			Found:    text,
		}
	}
	return f, nil
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isBinDigit(ch rune) bool {
	return ch == '0' || ch == '1'
}
