package parse

import (
	"testing"
)

func TestCursorPeekOne(t *testing.T) {
	c := NewCursor("ab")

	ch, ok := c.PeekOne()
	if !ok || ch != 'a' {
		t.Fatalf("PeekOne() = %q, %v, want 'a', true", ch, ok)
	}
	if c.Pos() != 0 {
		t.Errorf("PeekOne moved the cursor to %d", c.Pos())
	}

	c.AdvanceOne()
	c.AdvanceOne()
	if _, ok := c.PeekOne(); ok {
		t.Error("PeekOne at end of input reported a character")
	}
}

func TestCursorPeekMany(t *testing.T) {
	c := NewCursor("abc")

	if got := string(c.PeekMany(2)); got != "ab" {
		t.Errorf("PeekMany(2) = %q, want %q", got, "ab")
	}
	if got := string(c.PeekMany(10)); got != "abc" {
		t.Errorf("PeekMany(10) = %q, want %q", got, "abc")
	}
	if c.Pos() != 0 {
		t.Errorf("PeekMany moved the cursor to %d", c.Pos())
	}
}

func TestCursorRuneUnits(t *testing.T) {
	c := NewCursor("λx")

	if ch := c.AdvanceOne(); ch != 'λ' {
		t.Fatalf("AdvanceOne() = %q, want 'λ'", ch)
	}
	if c.Pos() != 1 {
		t.Errorf("Pos() = %d after one multi-byte rune, want 1", c.Pos())
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestCursorAdvanceOnePastEnd(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("AdvanceOne at end of input did not panic")
		}
	}()
	c := NewCursor("")
	c.AdvanceOne()
}

func TestCursorAdvanceManyClamps(t *testing.T) {
	c := NewCursor("ab")
	c.AdvanceMany(10)
	if c.Pos() != 2 {
		t.Errorf("Pos() = %d, want 2", c.Pos())
	}
	if c.Remaining() {
		t.Error("Remaining() = true at end of input")
	}
}

func TestCursorSaveRestore(t *testing.T) {
	c := NewCursor("abcdef")
	c.AdvanceMany(2)

	cp := c.Save()
	c.AdvanceMany(3)
	if c.Pos() != 5 {
		t.Fatalf("Pos() = %d, want 5", c.Pos())
	}

	c.Restore(cp)
	if c.Pos() != 2 {
		t.Errorf("Restore left cursor at %d, want 2", c.Pos())
	}
	if ch, _ := c.PeekOne(); ch != 'c' {
		t.Errorf("PeekOne after Restore = %q, want 'c'", ch)
	}
}

func TestCursorSlice(t *testing.T) {
	c := NewCursor("λx λy")
	if got := c.Slice(1, 2); got != "x" {
		t.Errorf("Slice(1, 2) = %q, want %q", got, "x")
	}
}
