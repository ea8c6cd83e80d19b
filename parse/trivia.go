package parse

// Trivia describes which input is insignificant between tokens: a
// whitespace predicate, the prefixes that open line comments, and the
// delimiter pairs that bracket block comments. Every slice may be
// empty; a nil IsSpace skips no whitespace.
type Trivia struct {
	IsSpace func(rune) bool
	Lines   []string
	Blocks  [][2]string
}

// DefaultTrivia skips ASCII whitespace, // line comments, and
// /* ... */ block comments.
var DefaultTrivia = Trivia{
	IsSpace: IsASCIISpace,
	Lines:   []string{"//"},
	Blocks:  [][2]string{{"/*", "*/"}},
}

// IsASCIISpace reports whether ch is an ASCII whitespace character.
func IsASCIISpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}
