package textops_test

import (
	"testing"

	"github.com/flengure/textops"
	"github.com/stretchr/testify/assert"
)

func TestNumberFormatZeroValue(t *testing.T) {
	t.Parallel()

	var f textops.NumberFormat

	out, ok := f.Format("1234.5")
	assert.True(t, ok)
	assert.Equal(t, "1234.5", out)

	out, ok = f.Format("abc")
	assert.False(t, ok)
	assert.Equal(t, "abc", out)
}

func TestNumberFormatPadDecimals(t *testing.T) {
	t.Parallel()

	f := textops.NumberFormat{PadDecimals: true, MaxDecimals: 2}

	out, ok := f.Format("3.14159")
	assert.True(t, ok)
	assert.Equal(t, "3.14", out)

	out, ok = f.Format("7")
	assert.True(t, ok)
	assert.Equal(t, "7.00", out)
}

func TestNumberFormatGrouping(t *testing.T) {
	t.Parallel()

	f := textops.NumberFormat{GroupDigits: true}

	tests := []struct {
		in   string
		want string
	}{
		{"123", "123"},
		{"1234", "1,234"},
		{"1234567.89", "1,234,567.89"},
		{"-1234", "-1,234"},
		{"-123", "-123"},
	}
	for _, tt := range tests {
		out, ok := f.Format(tt.in)
		assert.True(t, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, out, "input %q", tt.in)
	}
}

func TestNumberFormatCustomSeparators(t *testing.T) {
	t.Parallel()

	f := textops.NumberFormat{
		GroupDigits: true,
		GroupSep:    '.',
		DecimalSep:  ',',
	}

	// Input carrying the configured separators round-trips.
	out, ok := f.Format("1.234,5")
	assert.True(t, ok)
	assert.Equal(t, "1.234,5", out)
}

func TestNumberFormatRejectsText(t *testing.T) {
	t.Parallel()

	var f textops.NumberFormat
	for _, in := range []string{"", "twelve", "1.2.3", "0x1f"} {
		out, ok := f.Format(in)
		assert.False(t, ok, "input %q", in)
		assert.Equal(t, in, out)
	}
}
