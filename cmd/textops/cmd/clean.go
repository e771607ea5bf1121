package cmd

import (
	"fmt"

	"github.com/flengure/textops"
	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Strip blank lines and whitespace from the edges of the text",
	RunE:  runClean,
}

func init() {
	textFlag(cleanCmd)
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	text, err := readText(cmd)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), textops.Clean(text))
	return nil
}
