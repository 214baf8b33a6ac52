// Package textutil contains small text-layout helpers used when rendering
// help text.
package textutil

import "strings"

// Wrap splits text into lines of at most width characters, breaking on
// whitespace. A single word longer than width occupies a line of its own.
// Empty input yields no lines.
func Wrap(text string, width int) []string {
	var (
		lines []string
		line  strings.Builder
	)
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// Column fits s to exactly width characters, right-padding shorter strings
// with spaces and truncating longer ones. Truncation counts runes, so
// multibyte names are never split mid-rune. Used to align name columns in
// help output.
func Column(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-len(runes))
}
