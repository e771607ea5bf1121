package cmd

import (
	"fmt"
	"strings"

	"github.com/flengure/textops"
	"github.com/spf13/cobra"
)

var wrapCmd = &cobra.Command{
	Use:   "wrap",
	Short: "Greedy word-wrap the text to --width",
	RunE:  runWrap,
}

func init() {
	textFlag(wrapCmd)
	widthFlag(wrapCmd)
	rootCmd.AddCommand(wrapCmd)
}

func runWrap(cmd *cobra.Command, args []string) error {
	text, err := readText(cmd)
	if err != nil {
		return err
	}
	width, err := readWidth(cmd)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(textops.Wrap(text, width), "\n"))
	return nil
}
