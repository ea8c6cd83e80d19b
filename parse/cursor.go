// Package parse provides the machinery hand-written recursive-descent
// parsers are built from: a rune-indexed cursor over an input buffer,
// token-level primitives on top of it, and diagnostic rendering for
// parse failures. Grammar logic stays with the caller, which wraps a
// Parser and writes ordinary conditional and recursive code against
// the primitives.
package parse

// Checkpoint is a saved cursor position. Restoring it rewinds the
// cursor to exactly the position captured by Save, enabling manual
// backtracking between grammar alternatives.
type Checkpoint struct {
	index int
}

// Cursor tracks the current position in an input buffer. Positions are
// measured in runes, not bytes, so a multi-byte character counts as a
// single step and column math stays correct for non-ASCII input.
//
// A cursor is owned by exactly one parser instance for the duration of
// a parse and must not be shared between goroutines. Independent
// cursors over independent buffers are freely concurrent.
type Cursor struct {
	buffer []rune
	index  int
}

// NewCursor returns a cursor positioned at the start of input.
func NewCursor(input string) *Cursor {
	return &Cursor{buffer: []rune(input)}
}

// PeekOne returns the rune at the current position without advancing.
// The second result is false at end of input.
func (c *Cursor) PeekOne() (rune, bool) {
	if c.index >= len(c.buffer) {
		return 0, false
	}
	return c.buffer[c.index], true
}

// PeekMany returns up to n runes starting at the current position,
// fewer if the input ends first. The cursor does not move.
func (c *Cursor) PeekMany(n int) []rune {
	end := c.index + n
	if end > len(c.buffer) {
		end = len(c.buffer)
	}
	return c.buffer[c.index:end]
}

// AdvanceOne consumes the current rune and returns it. Calling it at
// end of input is a bug in the caller, not an input error, and panics;
// check PeekOne or Remaining first.
func (c *Cursor) AdvanceOne() rune {
	if c.index >= len(c.buffer) {
		panic("parse: AdvanceOne called at end of input")
	}
	ch := c.buffer[c.index]
	c.index++
	return ch
}

// AdvanceMany consumes up to n runes, stopping at end of input.
func (c *Cursor) AdvanceMany(n int) {
	c.index += n
	if c.index > len(c.buffer) {
		c.index = len(c.buffer)
	}
}

// Remaining reports whether any input is left to consume.
func (c *Cursor) Remaining() bool {
	return c.index < len(c.buffer)
}

// Pos returns the current position as a rune offset from the start of
// input.
func (c *Cursor) Pos() int {
	return c.index
}

// Len returns the total input length in runes.
func (c *Cursor) Len() int {
	return len(c.buffer)
}

// Save captures the current position for a later Restore.
func (c *Cursor) Save() Checkpoint {
	return Checkpoint{index: c.index}
}

// Restore rewinds the cursor to a previously saved position.
func (c *Cursor) Restore(cp Checkpoint) {
	c.index = cp.index
}

// Slice returns the input between two rune offsets.
func (c *Cursor) Slice(from, to int) string {
	return string(c.buffer[from:to])
}
