package parse

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// ParseChar consumes one character without skipping trivia, decoding
// backslash escapes: \0 \n \r \t \' \" \\ and \u{...} with hex digits.
// An unrecognized escape is a ParseError positioned at the backslash.
func (p *Parser) ParseChar() (rune, error) {
	start := p.index
	ch, ok := p.PeekOne()
	if !ok {
		return 0, p.Expected("a character")
	}
	if ch != '\\' {
		return p.AdvanceOne(), nil
	}
	p.AdvanceOne()
	esc, ok := p.PeekOne()
	if !ok {
		return 0, p.Expected("an escape character")
	}
	p.AdvanceOne()
	switch esc {
	case '0':
		return 0, nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case '\'':
		return '\'', nil
	case '"':
		return '"', nil
	case '\\':
		return '\\', nil
	case 'u':
		if err := p.ConsumeExact("{"); err != nil {
			return 0, err
		}
		digits := p.TakeWhile(isHexDigit)
		if err := p.ConsumeExact("}"); err != nil {
			return 0, err
		}
		code, err := strconv.ParseUint(digits, 16, 32)
		if err != nil || !utf8.ValidRune(rune(code)) {
			return 0, &ParseError{
				Position: start,
				Expected: "a unicode code point",
				Found:    p.Slice(start, p.index),
			}
		}
		return rune(code), nil
	default:
		return 0, &ParseError{
			Position: start,
			Expected: "a valid escape",
			Found:    "\\" + string(esc),
		}
	}
}

// ParseQuotedChar skips trivia and parses a single-quoted character
// like 'x' or '\n'.
func (p *Parser) ParseQuotedChar() (rune, error) {
	p.SkipTrivia()
	if err := p.ConsumeExact("'"); err != nil {
		return 0, err
	}
	ch, err := p.ParseChar()
	if err != nil {
		return 0, err
	}
	if err := p.ConsumeExact("'"); err != nil {
		return 0, err
	}
	return ch, nil
}

// ParseQuotedString skips trivia and parses a string delimited by
// quote, decoding the escape set understood by ParseChar. Reaching end
// of input before the closing quote fails with the cursor at end of
// input.
func (p *Parser) ParseQuotedString(quote rune) (string, error) {
	p.SkipTrivia()
	if err := p.ConsumeExact(string(quote)); err != nil {
		return "", err
	}
	var sb strings.Builder
	for {
		ch, ok := p.PeekOne()
		if !ok {
			return "", p.Expected("a closing quote")
		}
		if ch == quote {
			p.AdvanceOne()
			return sb.String(), nil
		}
		decoded, err := p.ParseChar()
		if err != nil {
			return "", err
		}
		sb.WriteRune(decoded)
	}
}
