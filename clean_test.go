package textops_test

import (
	"testing"

	"github.com/flengure/textops"
	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", "  \n\t\n   ", ""},
		{"single line", "  hello  ", "hello"},
		{"surrounding blank lines", "\n\n  hello \n world  \n\n", "hello \n world"},
		{"interior blank lines kept", "a\n\nb", "a\n\nb"},
		{"interior indentation kept", "first\n  indented\nlast", "first\n  indented\nlast"},
		{"trailing newline", "hello\n", "hello"},
		{"tabs at boundary", "\t\n\tx\t\n\t", "x"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, textops.Clean(tt.in))
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"hello",
		"\n\n  a\n\n  b  \n\n",
		"  mixed \t\n\n content ",
	}
	for _, in := range inputs {
		once := textops.Clean(in)
		assert.Equal(t, once, textops.Clean(once), "input %q", in)
	}
}
