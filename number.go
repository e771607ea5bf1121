package textops

import (
	"strconv"
	"strings"
)

// NumberFormat controls how numeric strings are rendered.
//
// The zero value formats with a '.' decimal separator, no decimal padding,
// and no digit grouping.
type NumberFormat struct {
	// PadDecimals pads (or rounds) the fraction to exactly MaxDecimals
	// digits when set.
	PadDecimals bool
	// MaxDecimals is the number of fraction digits used when PadDecimals is
	// set.
	MaxDecimals int
	// DecimalSep is the decimal separator in both input and output. Zero
	// means '.'.
	DecimalSep rune
	// GroupDigits inserts GroupSep between thousands in the integer part.
	GroupDigits bool
	// GroupSep is the thousands separator in both input and output. Zero
	// means ','.
	GroupSep rune
}

func (f NumberFormat) decimalSep() rune {
	if f.DecimalSep == 0 {
		return '.'
	}
	return f.DecimalSep
}

func (f NumberFormat) groupSep() rune {
	if f.GroupSep == 0 {
		return ','
	}
	return f.GroupSep
}

// Format renders s according to f. The input may already carry the
// configured separators; they are stripped before parsing. The second
// return value reports whether s parsed as a number; when it is false the
// input is returned unchanged.
func (f NumberFormat) Format(s string) (string, bool) {
	normalized := strings.ReplaceAll(s, string(f.groupSep()), "")
	normalized = strings.ReplaceAll(normalized, string(f.decimalSep()), ".")

	n, err := strconv.ParseFloat(strings.TrimSpace(normalized), 64)
	if err != nil {
		return s, false
	}

	prec := -1
	if f.PadDecimals {
		prec = f.MaxDecimals
	}
	formatted := strconv.FormatFloat(n, 'f', prec, 64)

	intPart, fracPart, _ := strings.Cut(formatted, ".")
	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign, intPart = "-", intPart[1:]
	}
	if f.GroupDigits {
		intPart = groupThousands(intPart, f.groupSep())
	}

	out := sign + intPart
	if fracPart != "" {
		out += string(f.decimalSep()) + fracPart
	}
	return out, true
}

func groupThousands(digits string, sep rune) string {
	if len(digits) <= 3 {
		return digits
	}
	var sb strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		sb.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if sb.Len() > 0 {
			sb.WriteRune(sep)
		}
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}
