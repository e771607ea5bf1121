package textops

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Align pads each line of text with spaces to the given display width.
// Lines already at or beyond the width are returned unchanged; Align never
// truncates. Centering splits the padding, placing the larger half before
// the text when the split is uneven. AlignAuto is treated as AlignLeft.
func Align(text string, width int, align Alignment) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = alignLine(line, width, align)
	}
	return strings.Join(lines, "\n")
}

// Left pads each line on the right to the given display width.
func Left(text string, width int) string { return Align(text, width, AlignLeft) }

// Right pads each line on the left to the given display width.
func Right(text string, width int) string { return Align(text, width, AlignRight) }

// Center pads each line on both sides to the given display width.
func Center(text string, width int) string { return Align(text, width, AlignCenter) }

func alignLine(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := (pad + 1) / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
