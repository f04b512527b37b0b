package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// CellKind identifies which variant a Cell holds.
type CellKind int

const (
	// CellEmpty is a missing cell, a JSON null, or any non-tabular value.
	CellEmpty CellKind = iota
	// CellString is a textual cell value.
	CellString
	// CellNumber is a native numeric cell value.
	CellNumber
)

// Cell is a single spreadsheet cell. Upstream payloads are loosely typed
// (string, number, or null per cell), so Cell is a tagged union and callers
// must parse values explicitly rather than assuming a type.
type Cell struct {
	Kind CellKind
	Str  string
	Num  float64
}

// StringCell creates a textual cell.
func StringCell(s string) Cell {
	return Cell{Kind: CellString, Str: s}
}

// NumberCell creates a numeric cell.
func NumberCell(f float64) Cell {
	return Cell{Kind: CellNumber, Num: f}
}

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty
}

// Text returns the cell content as a display string. Empty cells yield "".
func (c Cell) Text() string {
	switch c.Kind {
	case CellString:
		return c.Str
	case CellNumber:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	default:
		return ""
	}
}

// UnmarshalJSON maps JSON strings, numbers and nulls onto the union.
// Other JSON types (booleans, objects, arrays) are not cell-shaped and are
// treated as empty rather than failing the whole row.
func (c *Cell) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*c = Cell{}
		return nil
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*c = StringCell(s)
		return nil
	}

	var f float64
	if err := json.Unmarshal(trimmed, &f); err == nil {
		*c = NumberCell(f)
		return nil
	}

	*c = Cell{}
	return nil
}

// MarshalJSON writes the cell back in its upstream wire shape.
func (c Cell) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case CellString:
		return json.Marshal(c.Str)
	case CellNumber:
		return json.Marshal(c.Num)
	default:
		return []byte("null"), nil
	}
}
