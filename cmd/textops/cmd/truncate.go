package cmd

import (
	"fmt"

	"github.com/flengure/textops"
	"github.com/spf13/cobra"
)

var truncateCmd = &cobra.Command{
	Use:   "truncate",
	Short: "Cut each line to --width, marking shortened lines",
	RunE:  runTruncate,
}

func init() {
	textFlag(truncateCmd)
	widthFlag(truncateCmd)
	truncateCmd.Flags().StringP("marker", "m", textops.DefaultMarker, "marker appended to shortened lines")
	truncateCmd.Flags().Bool("no-ellipsis", false, "truncate without a marker")
	rootCmd.AddCommand(truncateCmd)
}

func runTruncate(cmd *cobra.Command, args []string) error {
	text, err := readText(cmd)
	if err != nil {
		return err
	}
	width, err := readWidth(cmd)
	if err != nil {
		return err
	}
	marker, err := cmd.Flags().GetString("marker")
	if err != nil {
		return err
	}
	if noEllipsis, _ := cmd.Flags().GetBool("no-ellipsis"); noEllipsis {
		marker = ""
	}
	fmt.Fprintln(cmd.OutOrStdout(), textops.TruncateWith(text, width, marker))
	return nil
}
