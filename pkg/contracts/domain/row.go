package domain

// Column header conventions used by the upstream sheets. The row-label
// column header is the empty string on the wire; code must use the named
// constant instead of a bare "".
const (
	// RowLabelColumn is the header of the column that names a row
	// (e.g. "Revenue", "Net Income").
	RowLabelColumn = ""
	// ReleaseColumn sometimes carries a metric name, and on header rows
	// carries layout labels such as "Quarter" or "Period".
	ReleaseColumn = "Release"
)

// Row is one spreadsheet row: column header to cell value. Rows are
// heterogeneous and carry no schema guarantees across sheets.
type Row map[string]Cell

// Cell returns the value under the given column header. Missing columns
// yield an empty cell, so lookups are always safe.
func (r Row) Cell(column string) Cell {
	return r[column]
}

// HasContent reports whether the row has at least one cell that is neither
// empty nor null.
func (r Row) HasContent() bool {
	for _, c := range r {
		if c.Kind == CellNumber {
			return true
		}
		if c.Kind == CellString && c.Str != "" {
			return true
		}
	}
	return false
}
