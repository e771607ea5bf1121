package textops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignLineCenterSplit(t *testing.T) {
	t.Parallel()
	// Odd padding: the larger half goes before the text.
	assert.Equal(t, "  Hi ", alignLine("Hi", 5, AlignCenter))
	assert.Equal(t, " x ", alignLine("x", 3, AlignCenter))
}

func TestTruncateLineMarkerDominatesWidth(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "..", truncateLine("hello", 2, "..."))
	assert.Equal(t, "", truncateLine("hello", 0, "..."))
}

func TestParseRowsHeaderFixesColumns(t *testing.T) {
	t.Parallel()

	header, rows := parseRows("a, b\n1, 2, 3\n4", ',')
	require.Equal(t, []string{"a", "b"}, header)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"1", "2"}, rows[0])
	assert.Equal(t, []string{"4", ""}, rows[1])
}

func TestParseRowsEmpty(t *testing.T) {
	t.Parallel()

	header, rows := parseRows("  \n\n", ',')
	assert.Nil(t, header)
	assert.Nil(t, rows)
}

func TestNumericColumns(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"bolt", "42", ""},
		{"7", "1.5", ""},
	}
	got := numericColumns(3, rows)
	// Col 0 mixes text and numbers, col 1 is numeric, col 2 has no data.
	assert.Equal(t, []bool{false, true, false}, got)
}

func TestComputeWidths(t *testing.T) {
	t.Parallel()

	widths := computeWidths([]string{"ab", "c"}, [][]string{{"x", "longer"}})
	assert.Equal(t, []int{2, 6}, widths)
}

func TestGroupThousands(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", groupThousands("", ','))
	assert.Equal(t, "12", groupThousands("12", ','))
	assert.Equal(t, "123", groupThousands("123", ','))
	assert.Equal(t, "1,234", groupThousands("1234", ','))
	assert.Equal(t, "123,456", groupThousands("123456", ','))
	assert.Equal(t, "1.234.567", groupThousands("1234567", '.'))
}
