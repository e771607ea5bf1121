package textops

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic error handling. They are returned only by
// the Parse* helpers; the transform functions themselves never fail.
var (
	ErrUnknownAlignment = errors.New("unknown alignment")
	ErrUnknownBorder    = errors.New("unknown border style")
	ErrUnknownFrame     = errors.New("unknown frame")
)

// Alignment controls horizontal text placement within a width.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
	// AlignAuto right-aligns numeric content and leaves text untouched.
	// Only [FormatCell] and the table renderer interpret it; Align treats
	// it as AlignLeft.
	AlignAuto
)

// String returns the alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	case AlignAuto:
		return "auto"
	default:
		return "left"
	}
}

// ParseAlignment parses an alignment name. Matching is case-insensitive.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(s) {
	case "left":
		return AlignLeft, nil
	case "right":
		return AlignRight, nil
	case "center":
		return AlignCenter, nil
	case "auto":
		return AlignAuto, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlignment, s)
	}
}

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderNone    BorderStyle = iota // No frame, " | " separators, dashed rule
	BorderASCII                      // +-+|
	BorderRounded                    // ╭─╮╰╯│┬┴├┤┼
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

// String returns the border style name.
func (b BorderStyle) String() string {
	switch b {
	case BorderASCII:
		return "ascii"
	case BorderRounded:
		return "rounded"
	case BorderHeavy:
		return "heavy"
	case BorderDouble:
		return "double"
	default:
		return "none"
	}
}

// ParseBorder parses a border style name. Matching is case-insensitive.
func ParseBorder(s string) (BorderStyle, error) {
	switch strings.ToLower(s) {
	case "none":
		return BorderNone, nil
	case "ascii":
		return BorderASCII, nil
	case "rounded":
		return BorderRounded, nil
	case "heavy":
		return BorderHeavy, nil
	case "double":
		return BorderDouble, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownBorder, s)
	}
}

// Frame selects how [FormatCell] fits text to a width.
type Frame int

const (
	FrameTruncate Frame = iota // Cut to width with an ellipsis
	FrameWrap                  // Word-wrap to width
	FrameNone                  // Leave the text as is
)

// String returns the frame name.
func (f Frame) String() string {
	switch f {
	case FrameWrap:
		return "wrap"
	case FrameNone:
		return "none"
	default:
		return "truncate"
	}
}

// ParseFrame parses a frame name. Matching is case-insensitive.
func ParseFrame(s string) (Frame, error) {
	switch strings.ToLower(s) {
	case "truncate":
		return FrameTruncate, nil
	case "wrap":
		return FrameWrap, nil
	case "none":
		return FrameNone, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFrame, s)
	}
}
