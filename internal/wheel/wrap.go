package wheel

import (
	"iter"
	"strings"
)

// MeasureFunc reports the rendered width of a line of text. The renderer
// supplies a font-backed measure; tests can use character counts.
type MeasureFunc func(s string) float64

// WrapLines greedily wraps text into lines no wider than maxWidth. The
// result is a lazy, finite, restartable sequence. A single word wider than
// maxWidth gets a line of its own rather than being split.
func WrapLines(text string, maxWidth float64, measure MeasureFunc) iter.Seq[string] {
	return func(yield func(string) bool) {
		var line string
		for _, word := range strings.Fields(text) {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if line == "" || measure(candidate) <= maxWidth {
				line = candidate
				continue
			}
			if !yield(line) {
				return
			}
			line = word
		}
		if line != "" {
			yield(line)
		}
	}
}

// ClampLines realizes at most max lines from seq. When lines remain beyond
// the cap, the last kept line is marked with an ellipsis.
func ClampLines(seq iter.Seq[string], max int) []string {
	var lines []string
	truncated := false
	for line := range seq {
		if len(lines) == max {
			truncated = true
			break
		}
		lines = append(lines, line)
	}
	if truncated && len(lines) > 0 {
		lines[len(lines)-1] += "..."
	}
	return lines
}
