// Package textops provides pure string transforms for terminal text:
// whitespace cleanup, alignment, word wrapping, width-aware truncation,
// numeric/hex classification, and rendering delimited text as an aligned
// table.
//
// Every function takes strings, returns new strings, and is total over
// string content: no operation fails, mutates its input, or touches shared
// state, so all of them are safe for concurrent use. Widths are display
// widths — terminal cells as counted by [github.com/mattn/go-runewidth] —
// so multi-byte and full-width characters line up correctly.
//
// # Cleaning
//
// [Clean] strips blank lines and whitespace from the edges of a document
// while leaving its interior untouched:
//
//	textops.Clean("\n  hello\n\n world \n\n") // "hello\n\n world"
//
// # Alignment
//
// [Align], [Left], [Right], and [Center] pad each line to a target width.
// Lines at or beyond the width pass through unchanged; alignment never
// truncates.
//
//	textops.Center("Hi", 6) // "  Hi  "
//
// # Wrapping and truncation
//
// [Wrap] greedily word-wraps to a width, returning one string per line;
// tokens wider than the width are placed alone, never split. [Truncate]
// cuts each line to a width and marks shortened lines with "..."
// ([TruncateWith] takes a custom marker). Truncated output never exceeds
// the requested width, marker included.
//
// # Classification
//
// [IsNumeric] and [IsHex] are strict well-formedness predicates:
//
//	textops.IsNumeric("-12.5") // true
//	textops.IsHex("0x1A3F")    // true
//	textops.IsHex("1G3F")      // false
//
// # Tables
//
// [RenderTable] parses delimited rows (first row is the header), sizes each
// column to its widest cell, and renders an aligned grid. [WriteTable] is
// the [io.Writer] form. Options select the delimiter, border style, a cap
// on cell widths, and right-alignment of numeric columns:
//
//	textops.RenderTable("Name, Qty\nbolt, 42", textops.WithBorder(textops.BorderASCII))
//
// # Cell formatting
//
// [FormatCell] formats a single value for column display: numeric content
// is rendered through [NumberFormat] (decimal padding, digit grouping,
// custom separators) and right-aligned, text is framed per [Frame] and then
// aligned.
//
// # Errors
//
// The transforms never return errors. The only fallible functions are the
// flag-parsing helpers [ParseAlignment], [ParseBorder], and [ParseFrame],
// which wrap the sentinels [ErrUnknownAlignment], [ErrUnknownBorder], and
// [ErrUnknownFrame].
package textops
