package cmd

import (
	"fmt"

	"github.com/flengure/textops"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(
		newAlignCmd("left", "Pad each line on the right to --width", textops.AlignLeft),
		newAlignCmd("right", "Pad each line on the left to --width", textops.AlignRight),
		newAlignCmd("center", "Pad each line on both sides to --width", textops.AlignCenter),
	)
}

func newAlignCmd(use, short string, align textops.Alignment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd)
			if err != nil {
				return err
			}
			width, err := readWidth(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), textops.Align(text, width, align))
			return nil
		},
	}
	textFlag(cmd)
	widthFlag(cmd)
	return cmd
}
