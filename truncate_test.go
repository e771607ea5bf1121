package textops_test

import (
	"testing"

	"github.com/flengure/textops"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits unchanged", "hello", 5, "hello"},
		{"shorter unchanged", "hi", 10, "hi"},
		{"cut with marker", "hello world", 8, "hello..."},
		{"width equals marker", "hello", 3, "..."},
		{"width below marker", "hello", 2, ".."},
		{"width one", "hello", 1, "."},
		{"width zero", "hello", 0, ""},
		{"empty", "", 4, ""},
		{"per line", "short\na much longer line", 8, "short\na muc..."},
		{"wide runes", "你好世界", 5, "你..."},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, textops.Truncate(tt.in, tt.width))
		})
	}
}

func TestTruncateWith(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "he…", textops.TruncateWith("hello", 3, "…"))
	assert.Equal(t, "hell", textops.TruncateWith("hello", 4, ""))
	assert.Equal(t, "hello", textops.TruncateWith("hello", 5, ""))
}

func TestTruncateNeverExceedsWidth(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "x", "hello world", "你好世界", "a b c d e"} {
		for w := 0; w <= 12; w++ {
			out := textops.Truncate(s, w)
			assert.LessOrEqual(t, runewidth.StringWidth(out), w, "s=%q w=%d", s, w)
		}
	}
}
