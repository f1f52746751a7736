package tui

import (
	"regexp"
	"strings"
)

// ansiEscapePattern matches CSI sequences (colors, cursor movement) that
// terminals sometimes leak into bracketed paste.
var ansiEscapePattern = regexp.MustCompile(`\x1b\[[0-9;?]*[a-zA-Z]`)

// SanitizePaste cleans text arriving through bracketed paste: ANSI escape
// sequences, null bytes, and non-printing control characters are stripped
// (tab, newline, and carriage return survive), CRLF is normalized to LF,
// and trailing whitespace is trimmed.
func SanitizePaste(content string) string {
	content = ansiEscapePattern.ReplaceAllString(content, "")

	var b strings.Builder
	b.Grow(len(content))
	for _, r := range content {
		if r == '\t' || r == '\n' || r == '\r' || (r >= 32 && r != 127) {
			b.WriteRune(r)
		}
	}
	content = b.String()

	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.TrimRight(content, " \t\n\r")
}

var newlinePattern = regexp.MustCompile(`\n+`)

// collapseNewlines replaces each run of newlines with a single space. The
// modals hold single-line inputs, so multi-line pastes flatten to one line
// on the way in.
func collapseNewlines(content string) string {
	return newlinePattern.ReplaceAllString(content, " ")
}
