package textops

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultMarker is appended to truncated lines by [Truncate].
const DefaultMarker = "..."

// Truncate cuts each line of text to the given display width, appending
// [DefaultMarker] to lines that were shortened.
func Truncate(text string, width int) string {
	return TruncateWith(text, width, DefaultMarker)
}

// TruncateWith cuts each line of text to the given display width, appending
// marker to lines that were shortened. Lines that fit are returned
// unchanged. When width cannot accommodate the marker, the marker itself is
// cut to width; output display width never exceeds width.
func TruncateWith(text string, width int, marker string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = truncateLine(line, width, marker)
	}
	return strings.Join(lines, "\n")
}

func truncateLine(s string, width int, marker string) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= runewidth.StringWidth(marker) {
		return runewidth.Truncate(marker, width, "")
	}
	return runewidth.Truncate(s, width, marker)
}
