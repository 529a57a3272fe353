package repl

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// keywords and commands seed the completion vocabulary before any module
// names are added.
//nolint:gochecknoglobals
var (
	keywords = []string{"module", "import", "as", "Type"}
	commands = []string{":help", ":quit", ":type"}
)

// isWordBoundary reports whether the rune delimits a word for completion
// purposes. Hyphens and colons are intentionally excluded: teya names may
// contain hyphens, and REPL commands start with a colon.
func isWordBoundary(r rune) bool {
	switch r {
	case ' ', '\t',
		'(', ')', '[', ']', '{', '}',
		'\\', ',', ';', '=', '>':
		return true
	}

	return false
}

// wordBounds returns the word at the cursor position and its byte
// boundaries within input. An empty word means the cursor sits on a
// boundary.
func wordBounds(input string, cursor int) (word string, start, end int) {
	if cursor > len(input) {
		cursor = len(input)
	}

	start = cursor

	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	end = cursor

	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	return input[start:end], start, end
}

// computeMatches finds fuzzy completion candidates for the word at the
// cursor.
func (m *model) computeMatches() (fuzzy.Matches, int, int) {
	word, start, end := wordBounds(m.input.Value(), m.input.Position())
	if word == "" {
		return nil, start, end
	}

	return fuzzy.Find(word, m.vocab), start, end
}

// renderCandidateBar builds the single-line completion bar, ellipsized to
// fit the terminal width. Matched characters are highlighted, and the
// candidate under the tab cursor uses the selected style.
func renderCandidateBar(
	matches fuzzy.Matches,
	suggIdx int,
	tabActive bool,
	width int,
) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	sepWidth := lipgloss.Width(sep)
	ellipsis := hintStyle.Render("...")
	ellipsisWidth := lipgloss.Width(ellipsis)

	var b strings.Builder

	used := 0

	for i, match := range matches {
		selected := tabActive && i == suggIdx
		rendered := renderCandidate(match, selected)
		entryWidth := lipgloss.Width(rendered)

		if i > 0 {
			entryWidth += sepWidth
		}

		if used+entryWidth+ellipsisWidth > width && i > 0 {
			b.WriteString(sep)
			b.WriteString(ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += entryWidth
	}

	return b.String()
}

func renderCandidate(match fuzzy.Match, selected bool) string {
	if selected {
		return selectedStyle.Render(match.Str)
	}

	matched := make(map[int]bool, len(match.MatchedIndexes))
	for _, i := range match.MatchedIndexes {
		matched[i] = true
	}

	var b strings.Builder

	for i, r := range match.Str {
		if matched[i] {
			b.WriteString(matchStyle.Render(string(r)))
		} else {
			b.WriteString(suggestionStyle.Render(string(r)))
		}
	}

	return b.String()
}
