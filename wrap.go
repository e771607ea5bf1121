package textops

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Wrap greedily word-wraps text to the given display width and returns the
// resulting lines. Tokens are maximal runs of non-whitespace characters; a
// token joins the current line while the line width plus a separating space
// stays within width. A single token wider than width is placed alone on its
// own line, never split. A width of zero or less degenerates to one token
// per line. Input with no tokens yields no lines.
func Wrap(text string, width int) []string {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return nil
	}
	lines := make([]string, 0, len(tokens))
	cur := tokens[0]
	curWidth := runewidth.StringWidth(cur)
	for _, tok := range tokens[1:] {
		w := runewidth.StringWidth(tok)
		if curWidth+1+w <= width {
			cur += " " + tok
			curWidth += 1 + w
			continue
		}
		lines = append(lines, cur)
		cur, curWidth = tok, w
	}
	return append(lines, cur)
}
