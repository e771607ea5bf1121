package textops

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

type tableConfig struct {
	delimiter    rune
	border       BorderStyle
	dividerChar  rune
	maxCellWidth int
	numericAlign bool
	noDivider    bool
}

// TableOption configures [RenderTable] and [WriteTable].
type TableOption func(*tableConfig)

// WithDelimiter sets the cell delimiter. Default comma.
func WithDelimiter(r rune) TableOption {
	return func(c *tableConfig) { c.delimiter = r }
}

// WithBorder sets the border style. Default [BorderNone].
func WithBorder(b BorderStyle) TableOption {
	return func(c *tableConfig) { c.border = b }
}

// WithDividerChar sets the rule character drawn between header and data in
// the [BorderNone] style. Default '-'.
func WithDividerChar(r rune) TableOption {
	return func(c *tableConfig) { c.dividerChar = r }
}

// WithoutDivider suppresses the rule between header and data in the
// [BorderNone] style.
func WithoutDivider() TableOption {
	return func(c *tableConfig) { c.noDivider = true }
}

// WithMaxCellWidth caps column widths at n display cells; over-wide cells
// are truncated with [DefaultMarker]. Zero means no limit.
func WithMaxCellWidth(n int) TableOption {
	return func(c *tableConfig) { c.maxCellWidth = n }
}

// WithNumericAlignment right-aligns every column whose data cells all parse
// as numbers. Header cells do not participate in the check.
func WithNumericAlignment() TableOption {
	return func(c *tableConfig) { c.numericAlign = true }
}

// RenderTable renders delimited text as an aligned grid. The first
// non-empty line is the header and fixes the column count: shorter rows are
// padded with empty cells and extra cells are dropped. Cells are trimmed of
// surrounding whitespace and left-aligned to the widest cell in their
// column. Output carries one trailing newline per row and no trailing blank
// line; empty input renders as "".
func RenderTable(text string, opts ...TableOption) string {
	var sb strings.Builder
	// strings.Builder writes never fail.
	_ = WriteTable(&sb, text, opts...)
	return sb.String()
}

// WriteTable renders delimited text as an aligned grid into w. See
// [RenderTable] for the grid semantics.
func WriteTable(w io.Writer, text string, opts ...TableOption) error {
	cfg := tableConfig{delimiter: ',', dividerChar: '-'}
	for _, opt := range opts {
		opt(&cfg)
	}

	header, rows := parseRows(text, cfg.delimiter)
	if header == nil {
		return nil
	}

	widths := computeWidths(header, rows)
	if cfg.maxCellWidth > 0 {
		for i := range widths {
			if widths[i] > cfg.maxCellWidth {
				widths[i] = cfg.maxCellWidth
			}
		}
	}

	aligns := make([]Alignment, len(header))
	if cfg.numericAlign {
		for i, numeric := range numericColumns(len(header), rows) {
			if numeric {
				aligns[i] = AlignRight
			}
		}
	}

	if cfg.border == BorderNone {
		return renderPlainTable(w, header, rows, widths, aligns, cfg)
	}
	return renderBorderedTable(w, header, rows, widths, aligns, borderSets[cfg.border])
}

// parseRows splits text into a header and data rows. Blank lines are
// skipped; the header fixes the column count for every data row.
func parseRows(text string, delim rune) ([]string, [][]string) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, nil
	}

	header := splitCells(lines[0], delim)
	rows := make([][]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		cells := splitCells(line, delim)
		if len(cells) > len(header) {
			cells = cells[:len(header)]
		}
		for len(cells) < len(header) {
			cells = append(cells, "")
		}
		rows = append(rows, cells)
	}
	return header, rows
}

func splitCells(line string, delim rune) []string {
	cells := strings.Split(line, string(delim))
	for i, cell := range cells {
		cells[i] = strings.TrimSpace(cell)
	}
	return cells
}

func computeWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// numericColumns reports, per column, whether every non-empty data cell is
// numeric. Columns with no data at all stay left-aligned.
func numericColumns(numCols int, rows [][]string) []bool {
	numeric := make([]bool, numCols)
	seen := make([]bool, numCols)
	for i := range numeric {
		numeric[i] = true
	}
	for _, row := range rows {
		for i, cell := range row {
			if cell == "" {
				continue
			}
			seen[i] = true
			if !IsNumeric(cell) {
				numeric[i] = false
			}
		}
	}
	for i := range numeric {
		numeric[i] = numeric[i] && seen[i]
	}
	return numeric
}

// --- Plain table (BorderNone) ---

func renderPlainTable(w io.Writer, header []string, rows [][]string, widths []int, aligns []Alignment, cfg tableConfig) error {
	if err := writePlainRow(w, header, widths, aligns); err != nil {
		return err
	}
	if !cfg.noDivider {
		if err := writePlainRule(w, widths, cfg.dividerChar); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if err := writePlainRow(w, row, widths, aligns); err != nil {
			return err
		}
	}
	return nil
}

func writePlainRule(w io.Writer, widths []int, div rune) error {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = strings.Repeat(string(div), width)
	}
	junction := string(div) + "+" + string(div)
	_, err := fmt.Fprintln(w, strings.Join(parts, junction))
	return err
}

func writePlainRow(w io.Writer, cells []string, widths []int, aligns []Alignment) error {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = formatTableCell(cells[i], width, aligns[i])
	}
	line := strings.TrimRight(strings.Join(parts, " | "), " ")
	_, err := fmt.Fprintln(w, line)
	return err
}

// --- Bordered table ---

func renderBorderedTable(w io.Writer, header []string, rows [][]string, widths []int, aligns []Alignment, bc borderChars) error {
	if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
		return err
	}
	if err := drawBorderedRow(w, header, widths, aligns, bc.vertical); err != nil {
		return err
	}
	if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
		return err
	}
	for _, row := range rows {
		if err := drawBorderedRow(w, row, widths, aligns, bc.vertical); err != nil {
			return err
		}
	}
	return drawHLine(w, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawBorderedRow(w io.Writer, cells []string, widths []int, aligns []Alignment, vert string) error {
	var sb strings.Builder
	sb.WriteString(vert)
	for i, width := range widths {
		sb.WriteString(" ")
		sb.WriteString(formatTableCell(cells[i], width, aligns[i]))
		sb.WriteString(" ")
		if i < len(widths)-1 {
			sb.WriteString(vert)
		}
	}
	sb.WriteString(vert)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func formatTableCell(s string, width int, align Alignment) string {
	if runewidth.StringWidth(s) > width {
		s = truncateLine(s, width, DefaultMarker)
	}
	return alignLine(s, width, align)
}
