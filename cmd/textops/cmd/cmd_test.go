package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and captures combined output.
// Commands keep flag state between calls, so each test owns its commands
// and orders its cases accordingly.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestCleanCommand(t *testing.T) {
	_, err := execute("clean")
	require.Error(t, err, "missing required --text")

	out, err := execute("clean", "--text", "\n  hi  \n")
	require.NoError(t, err)
	assert.Equal(t, "hi\n", out)
}

func TestCleanCommandStdin(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(bytes.NewBufferString("  from stdin  \n"))
	rootCmd.SetArgs([]string{"clean", "--text", "-"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "from stdin\n", buf.String())
}

func TestAlignCommands(t *testing.T) {
	out, err := execute("left", "--text", "hi", "--width", "5")
	require.NoError(t, err)
	assert.Equal(t, "hi   \n", out)

	out, err = execute("right", "--text", "hi", "--width", "5")
	require.NoError(t, err)
	assert.Equal(t, "   hi\n", out)

	out, err = execute("center", "--text", "Hi", "--width", "6")
	require.NoError(t, err)
	assert.Equal(t, "  Hi  \n", out)

	_, err = execute("center", "--text", "Hi", "--width", "-1")
	assert.ErrorIs(t, err, ErrInvalidWidth)
}

func TestWrapCommand(t *testing.T) {
	out, err := execute("wrap", "--text", "the quick brown fox", "--width", "10")
	require.NoError(t, err)
	assert.Equal(t, "the quick\nbrown fox\n", out)
}

func TestTruncateCommand(t *testing.T) {
	out, err := execute("truncate", "--text", "hello world", "--width", "8")
	require.NoError(t, err)
	assert.Equal(t, "hello...\n", out)

	out, err = execute("truncate", "--text", "hello world", "--width", "8", "--no-ellipsis")
	require.NoError(t, err)
	assert.Equal(t, "hello wo\n", out)
}

func TestIsCommands(t *testing.T) {
	out, err := execute("is", "hex", "--text", "1A3F")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, err = execute("is", "numeric", "--text", "12.3.4")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestTableCommand(t *testing.T) {
	out, err := execute("table", "--text", `Header1, Header2\nA, B`)
	require.NoError(t, err)
	assert.Equal(t, "Header1 | Header2\n--------+--------\nA       | B\n", out)

	_, err = execute("table", "--text", "A, B", "--border", "dotted")
	assert.Error(t, err)
}

func TestFormatCommand(t *testing.T) {
	out, err := execute("format", "--text", "1234.5", "--width", "10", "--use-thousand-separator")
	require.NoError(t, err)
	assert.Equal(t, "   1,234.5\n", out)
}

func TestUnknownSubcommand(t *testing.T) {
	_, err := execute("bogus")
	assert.Error(t, err)
}
