package cmd

import (
	"fmt"

	"github.com/flengure/textops"
	"github.com/spf13/cobra"
)

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Format a single cell value for column display",
	Long: `Format a single value the way the table renderer formats a cell.
Numeric input is styled (decimal padding, digit grouping, custom
separators) and right-aligned under auto alignment; text input is framed
to --width per --frame and then aligned.`,
	RunE: runFormat,
}

func init() {
	textFlag(formatCmd)
	widthFlag(formatCmd)
	formatCmd.Flags().StringP("frame", "f", "truncate", "frame for text content: truncate, wrap, none")
	formatCmd.Flags().StringP("alignment", "a", "auto", "alignment: auto, left, right, center")
	formatCmd.Flags().Bool("no-ellipsis", false, "truncate without a marker")
	formatCmd.Flags().Bool("pad-decimal-digits", false, "pad the fraction to --max-decimal-digits")
	formatCmd.Flags().Int("max-decimal-digits", 2, "fraction digits used when padding")
	formatCmd.Flags().String("decimal-separator", ".", "decimal separator")
	formatCmd.Flags().Bool("use-thousand-separator", false, "group integer digits by thousands")
	formatCmd.Flags().String("thousand-separator", ",", "thousands separator")
	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	text, err := readText(cmd)
	if err != nil {
		return err
	}
	width, err := readWidth(cmd)
	if err != nil {
		return err
	}
	frameName, err := cmd.Flags().GetString("frame")
	if err != nil {
		return err
	}
	frame, err := textops.ParseFrame(frameName)
	if err != nil {
		return err
	}
	alignName, err := cmd.Flags().GetString("alignment")
	if err != nil {
		return err
	}
	align, err := textops.ParseAlignment(alignName)
	if err != nil {
		return err
	}
	decimalSep, err := readRune(cmd, "decimal-separator")
	if err != nil {
		return err
	}
	thousandSep, err := readRune(cmd, "thousand-separator")
	if err != nil {
		return err
	}
	noEllipsis, _ := cmd.Flags().GetBool("no-ellipsis")
	padDecimals, _ := cmd.Flags().GetBool("pad-decimal-digits")
	maxDecimals, _ := cmd.Flags().GetInt("max-decimal-digits")
	groupDigits, _ := cmd.Flags().GetBool("use-thousand-separator")

	out := textops.FormatCell(text, textops.TextFormat{
		Width:      width,
		Frame:      frame,
		Align:      align,
		NoEllipsis: noEllipsis,
		Number: textops.NumberFormat{
			PadDecimals: padDecimals,
			MaxDecimals: maxDecimals,
			DecimalSep:  decimalSep,
			GroupDigits: groupDigits,
			GroupSep:    thousandSep,
		},
	})
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
