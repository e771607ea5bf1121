package cmd

import (
	"fmt"

	"github.com/flengure/textops"
	"github.com/spf13/cobra"
)

var isCmd = &cobra.Command{
	Use:   "is",
	Short: "Classify the text, printing true or false",
}

func init() {
	isCmd.AddCommand(
		newIsCmd("hex", "Report whether the text is a hexadecimal number", textops.IsHex),
		newIsCmd("numeric", "Report whether the text is a decimal number", textops.IsNumeric),
	)
	rootCmd.AddCommand(isCmd)
}

func newIsCmd(use, short string, pred func(string) bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pred(text))
			return nil
		},
	}
	textFlag(cmd)
	return cmd
}
