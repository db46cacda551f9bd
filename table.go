package coursegen

import (
	"io"
	"strings"
)

// Table is a header row plus data rows, as read from or written to CSV.
type Table struct {
	Header []string
	Rows   [][]string
}

// ScheduleHeader is the header of the schedule CSV. The extract command
// writes it and the schedule regenerator reads files with this layout.
var ScheduleHeader = []string{"Date", "Type", "Topic / Readings", "Notes", "Due"}

// NormalizeRows turns extracted rows into a table with the given header.
// Rows whose cells are all blank and rows repeating the header labels are
// dropped; the rest are padded with empty cells or truncated to the header
// width.
func NormalizeRows(rows [][]string, header []string) *Table {
	t := &Table{Header: header, Rows: make([][]string, 0, len(rows))}
	width := len(header)
	for _, row := range rows {
		if isBlankRow(row) || IsHeaderRow(row, header) {
			continue
		}
		out := make([]string, width)
		copy(out, row)
		t.Rows = append(t.Rows, out)
	}
	return t
}

// IsHeaderRow reports whether row repeats the header: at least two of its
// cells equal a header label, ignoring case and surrounding space.
func IsHeaderRow(row, header []string) bool {
	matches := 0
	for _, cell := range row {
		cell = strings.TrimSpace(cell)
		for _, label := range header {
			if cell != "" && strings.EqualFold(cell, label) {
				matches++
				break
			}
		}
	}
	return matches >= 2
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// TableReader reads a table from a delimited text stream.
type TableReader interface {
	// ReadTable reads the first record as the header and the remaining
	// records as rows. Records may have differing lengths.
	ReadTable(r io.Reader) (*Table, error)
}

// TableWriter writes a table to a delimited text stream.
type TableWriter interface {
	WriteTable(w io.Writer, t *Table) error
}
