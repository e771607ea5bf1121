package textops

import "strings"

// IsNumeric reports whether text is a well-formed decimal number: an
// optional single leading '+' or '-', at most one '.', and otherwise only
// ASCII digits, with at least one digit present. The empty string is not
// numeric.
func IsNumeric(text string) bool {
	s := text
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	digits := 0
	dot := false
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			digits++
		case s[i] == '.':
			if dot {
				return false
			}
			dot = true
		default:
			return false
		}
	}
	return digits > 0
}

// IsHex reports whether text is a well-formed hexadecimal number: an
// optional "0x" or "0X" prefix followed by one or more hex digits, either
// case. The empty string, with or without prefix, is not hex.
func IsHex(text string) bool {
	s := text
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		s = rest
	} else if rest, ok := strings.CutPrefix(s, "0X"); ok {
		s = rest
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}
