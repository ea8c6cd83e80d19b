package parse

import "fmt"

// ParseError describes a parse failure: what was expected, what was
// found instead, and the rune offset of the mismatch. It is created by
// a primitive at the point of failure and never modified afterwards;
// grammar code propagates it unchanged and the top-level caller
// renders it with a Reporter.
type ParseError struct {
	Position int
	Expected string
	Found    string
}

func (e *ParseError) Error() string {
	if e.Found == "" {
		return fmt.Sprintf("expected %s, found end of input", e.Expected)
	}
	return fmt.Sprintf("expected %s, found %q", e.Expected, e.Found)
}
