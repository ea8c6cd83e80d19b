package parse

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// Reporter renders a ParseError against the original input as a
// diagnostic for a human reader: a label:line:column header, the
// offending source line, and a caret under the failing column.
type Reporter struct {
	// Label names the input in the header, typically a file name.
	// An empty label renders as "<input>".
	Label string
	// Color styles the header and caret with ANSI escapes.
	Color bool
}

// LineCol converts a rune offset into 1-based line and column numbers
// by counting line breaks in the input before pos.
func LineCol(input string, pos int) (line, col int) {
	line, col = 1, 1
	for i, ch := range []rune(input) {
		if i >= pos {
			break
		}
		if ch == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// Report renders err as a three-line diagnostic over input. The result
// ends with a newline.
func (r Reporter) Report(input string, err *ParseError) string {
	label := r.Label
	if label == "" {
		label = "<input>"
	}
	line, col := LineCol(input, err.Position)

	header := fmt.Sprintf("%s:%d:%d: %s", label, line, col, err.Error())
	src := sourceLine(input, line)
	marker := caret(src, col)
	if r.Color {
		header = color.New(color.Bold).Sprint(header)
		marker = color.New(color.FgRed, color.Bold).Sprint(marker)
	}

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteByte('\n')
	sb.WriteString(src)
	sb.WriteByte('\n')
	sb.WriteString(marker)
	sb.WriteByte('\n')
	return sb.String()
}

// sourceLine extracts the 1-based line from input, without its
// terminator.
func sourceLine(input string, line int) string {
	lines := strings.Split(input, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	return strings.TrimSuffix(lines[line-1], "\r")
}

// caret builds the marker line: padding sized by the display width of
// the source text before the failing column, then a single ^. Tabs are
// copied through so the caret stays aligned however wide the terminal
// renders them.
func caret(src string, col int) string {
	var pad strings.Builder
	for i, ch := range []rune(src) {
		if i >= col-1 {
			break
		}
		if ch == '\t' {
			pad.WriteByte('\t')
			continue
		}
		pad.WriteString(strings.Repeat(" ", runewidth.RuneWidth(ch)))
	}
	return pad.String() + "^"
}
