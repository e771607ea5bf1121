package textops

import "strings"

// TextFormat bundles the options of [FormatCell].
type TextFormat struct {
	// Width is the target display width for framing and alignment.
	Width int
	// Frame selects truncation, wrapping, or neither for text content.
	Frame Frame
	// Align places the content within Width. AlignAuto right-aligns
	// numeric content and leaves text where it is.
	Align Alignment
	// NoEllipsis truncates without the marker.
	NoEllipsis bool
	// Number controls numeric rendering.
	Number NumberFormat
}

// FormatCell formats a single value for column display. Numeric content is
// rendered through f.Number and right-aligned under AlignAuto; anything
// else is framed to f.Width per f.Frame and then aligned.
func FormatCell(text string, f TextFormat) string {
	if n, ok := f.Number.Format(text); ok {
		align := f.Align
		if align == AlignAuto {
			align = AlignRight
		}
		return Align(n, f.Width, align)
	}

	out := text
	switch f.Frame {
	case FrameTruncate:
		marker := DefaultMarker
		if f.NoEllipsis {
			marker = ""
		}
		out = TruncateWith(out, f.Width, marker)
	case FrameWrap:
		out = strings.Join(Wrap(out, f.Width), "\n")
	}

	if f.Align == AlignAuto {
		return out
	}
	return Align(out, f.Width, f.Align)
}
