package cmd

import (
	"fmt"
	"strings"

	"github.com/flengure/textops"
	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Render delimited rows as an aligned grid",
	Long: `Render delimited text as an aligned grid. The first row is the header;
rows are separated by newlines (literal \n sequences in --text also work)
and cells by --delimiter.`,
	RunE: runTable,
}

func init() {
	textFlag(tableCmd)
	tableCmd.Flags().StringP("delimiter", "d", ",", "cell delimiter")
	tableCmd.Flags().StringP("border", "b", "none", "border style: none, ascii, rounded, heavy, double")
	tableCmd.Flags().String("divider-char", "-", "rule character for the borderless style")
	tableCmd.Flags().Bool("no-divider", false, "omit the rule between header and data")
	tableCmd.Flags().Int("max-cell-width", 0, "cap column widths, truncating over-wide cells (0 = no limit)")
	tableCmd.Flags().Bool("numeric-alignment", false, "right-align columns whose cells are all numeric")
	rootCmd.AddCommand(tableCmd)
}

func runTable(cmd *cobra.Command, args []string) error {
	text, err := readText(cmd)
	if err != nil {
		return err
	}
	// Shells pass \n literally; treat it as a row separator.
	text = strings.ReplaceAll(text, `\n`, "\n")

	delimiter, err := readRune(cmd, "delimiter")
	if err != nil {
		return err
	}
	dividerChar, err := readRune(cmd, "divider-char")
	if err != nil {
		return err
	}
	borderName, err := cmd.Flags().GetString("border")
	if err != nil {
		return err
	}
	border, err := textops.ParseBorder(borderName)
	if err != nil {
		return err
	}
	maxCellWidth, err := cmd.Flags().GetInt("max-cell-width")
	if err != nil {
		return err
	}
	if maxCellWidth < 0 {
		return fmt.Errorf("%w: %d is negative", ErrInvalidWidth, maxCellWidth)
	}

	opts := []textops.TableOption{
		textops.WithDelimiter(delimiter),
		textops.WithBorder(border),
		textops.WithDividerChar(dividerChar),
		textops.WithMaxCellWidth(maxCellWidth),
	}
	if noDivider, _ := cmd.Flags().GetBool("no-divider"); noDivider {
		opts = append(opts, textops.WithoutDivider())
	}
	if numeric, _ := cmd.Flags().GetBool("numeric-alignment"); numeric {
		opts = append(opts, textops.WithNumericAlignment())
	}

	// RenderTable output already ends in a newline.
	fmt.Fprint(cmd.OutOrStdout(), textops.RenderTable(text, opts...))
	return nil
}
