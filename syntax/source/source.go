// Package source maps byte offsets in source text to line and column
// positions and renders annotated source snippets for diagnostics.
package source

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/teya-lang/teya/syntax/token"
)

// File is a named source text with a precomputed line index.
type File struct {
	Name    string
	Content string

	// lineStarts[i] is the byte offset of the first byte of line i+1.
	lineStarts []int
}

// NewFile indexes content for position lookups. The name is used only in
// diagnostics and may be empty (e.g. for REPL input).
func NewFile(name, content string) *File {
	starts := []int{0}

	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			starts = append(starts, i+1)
		}
	}

	return &File{
		Name:       name,
		Content:    content,
		lineStarts: starts,
	}
}

// Position is a 1-based line and column location.
// Column counts runes, not bytes.
type Position struct {
	Line   int
	Column int
}

// String returns the position in "line:column" form.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Position converts a byte offset into a [Position]. Offsets past the end
// of the file report the position just past the final rune.
func (f *File) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}

	if offset > len(f.Content) {
		offset = len(f.Content)
	}

	// First line start greater than offset, minus one.
	line := sort.SearchInts(f.lineStarts, offset+1) - 1

	start := f.lineStarts[line]

	return Position{
		Line:   line + 1,
		Column: utf8.RuneCountInString(f.Content[start:offset]) + 1,
	}
}

// NumLines returns the number of lines in the file.
func (f *File) NumLines() int {
	return len(f.lineStarts)
}

// Line returns the text of the 1-based line n without its trailing
// newline. Out-of-range lines return the empty string.
func (f *File) Line(n int) string {
	if n < 1 || n > len(f.lineStarts) {
		return ""
	}

	start := f.lineStarts[n-1]

	end := len(f.Content)
	if n < len(f.lineStarts) {
		end = f.lineStarts[n] - 1
	}

	return strings.TrimSuffix(f.Content[start:end], "\r")
}

// Snippet renders the source line containing sp with a caret marker
// underneath the spanned text:
//
//	  3 | foo : ;
//	    |       ^
//
// Spans that cross lines are marked on their first line only.
func (f *File) Snippet(sp token.Span) string {
	pos := f.Position(sp.Start)
	line := f.Line(pos.Line)

	num := strconv.Itoa(pos.Line)
	gutter := strings.Repeat(" ", len(num))

	var b strings.Builder

	b.WriteString("  ")
	b.WriteString(num)
	b.WriteString(" | ")
	b.WriteString(line)
	b.WriteByte('\n')

	b.WriteString("  ")
	b.WriteString(gutter)
	b.WriteString(" | ")
	b.WriteString(strings.Repeat(" ", pos.Column-1))
	b.WriteString(strings.Repeat("^", f.caretWidth(sp, pos)))
	b.WriteByte('\n')

	return b.String()
}

// caretWidth returns the number of carets to draw for sp, clamped to the
// remainder of its first line and never less than one.
func (f *File) caretWidth(sp token.Span, pos Position) int {
	end := sp.End

	if lineEnd := f.lineStarts[pos.Line-1] + len(f.Line(pos.Line)); end > lineEnd {
		end = lineEnd
	}

	if end <= sp.Start {
		return 1
	}

	return utf8.RuneCountInString(f.Content[sp.Start:end])
}
