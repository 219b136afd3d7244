package indentex

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CountLeftIndent returns number of leading whitespace characters (runes, not bytes). Empty line has no indent at all.
// Lines are expected to have no trailing whitespace, so a line of spaces counts as indented to its full length.
func CountLeftIndent(line string) (int, bool) {
	if line == "" {
		return 0, false
	}

	return utf8.RuneCountInString(line) - utf8.RuneCountInString(strings.TrimLeftFunc(line, unicode.IsSpace)), true
}

// ScanIndents returns indent which is in effect before each line and one extra zero for the end of input.
// Empty lines take indent of the next non-empty line, so they never close an environment.
func ScanIndents(lines []string) []int {
	indents := make([]int, len(lines)+1)

	last := 0
	for i := len(lines) - 1; i >= 0; i-- {
		if indent, ok := CountLeftIndent(lines[i]); ok {
			last = indent
		}

		indents[i] = last
	}

	return indents
}
