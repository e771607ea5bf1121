package cmd

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/spf13/cobra"
)

// ErrInvalidWidth reports a negative --width argument. Non-integer widths
// are rejected by flag parsing before a command runs.
var ErrInvalidWidth = errors.New("invalid width")

var rootCmd = &cobra.Command{
	Use:   "textops",
	Short: "Clean, align, wrap, truncate, classify, and tabulate text",
	Long: `textops applies pure string transforms to terminal text.

Commands:
  clean              strip blank lines and edge whitespace
  left|right|center  pad each line with spaces to a width
  wrap               greedy word-wrap to a width
  truncate           cut each line to a width with an ellipsis
  is hex|numeric     classify a string
  table              render delimited rows as an aligned grid
  format             format a single cell (text framing, number styling)

Widths are display widths, so full-width characters count as two columns.
Pass --text - to read the text from standard input.`,
	SilenceUsage: true,
}

// Execute runs the root command. Cobra reports the failure on stderr;
// callers only need the exit code.
func Execute() error {
	return rootCmd.Execute()
}

// textFlag registers the required --text flag on cmd.
func textFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("text", "t", "", `text to transform ("-" reads stdin)`)
	_ = cmd.MarkFlagRequired("text")
}

// widthFlag registers the required --width flag on cmd.
func widthFlag(cmd *cobra.Command) {
	cmd.Flags().IntP("width", "w", 0, "target display width")
	_ = cmd.MarkFlagRequired("width")
}

// readText returns the --text value, reading all of stdin when it is "-".
func readText(cmd *cobra.Command) (string, error) {
	text, err := cmd.Flags().GetString("text")
	if err != nil {
		return "", err
	}
	if text != "-" {
		return text, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// readWidth returns the --width value, rejecting negative widths.
func readWidth(cmd *cobra.Command) (int, error) {
	width, err := cmd.Flags().GetInt("width")
	if err != nil {
		return 0, err
	}
	if width < 0 {
		return 0, fmt.Errorf("%w: %d is negative", ErrInvalidWidth, width)
	}
	return width, nil
}

// readRune returns a single-character string flag as a rune.
func readRune(cmd *cobra.Command, name string) (rune, error) {
	s, err := cmd.Flags().GetString(name)
	if err != nil {
		return 0, err
	}
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) {
		return 0, fmt.Errorf("--%s must be a single character, got %q", name, s)
	}
	return r, nil
}
