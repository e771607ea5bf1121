package textops

import "strings"

// Clean removes leading and trailing blank lines, then trims whitespace at
// the outer edges of the document: the first line loses its leading
// whitespace and the last line its trailing whitespace. Interior blank lines
// and interior indentation are preserved. Clean is idempotent and returns ""
// for input with no printable content.
func Clean(text string) string {
	lines := strings.Split(text, "\n")

	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	if start == len(lines) {
		return ""
	}
	end := len(lines)
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}

	lines = lines[start:end]
	lines[0] = strings.TrimLeft(lines[0], " \t")
	lines[len(lines)-1] = strings.TrimRight(lines[len(lines)-1], " \t")
	return strings.Join(lines, "\n")
}
