package sheet

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Cell is a single table value. Value holds a string, json.Number, float64,
// bool or nil;
// Formatted is the provider's display string and is empty when none was sent.
type Cell struct {
	Value     any
	Formatted string
}

// IsNull reports whether the cell carries no value.
func (c Cell) IsNull() bool {
	return c.Value == nil
}

// Text renders the cell value as a string. Null cells render as "".
func (c Cell) Text() string {
	switch v := c.Value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return numberText(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// Table is a normalized gviz table. Every row has exactly len(Columns) cells.
type Table struct {
	Columns []string
	Rows    [][]Cell
}

// Index resolves each column label to its position. When a label repeats, the
// first occurrence wins.
func (t *Table) Index() map[string]int {
	idx := make(map[string]int, len(t.Columns))
	for i, label := range t.Columns {
		if _, ok := idx[label]; !ok {
			idx[label] = i
		}
	}
	return idx
}

// Cell returns the cell at row/col, or a null cell when col is out of range.
func (t *Table) Cell(row, col int) Cell {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return Cell{}
	}
	return t.Rows[row][col]
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// numberText keeps integer literals digit for digit, so item numbers beyond
// 2^53 survive. "2.0" renders as "2"; other fractions go through float64.
func numberText(n json.Number) string {
	s := n.String()
	if strings.ContainsAny(s, "eE") {
		if f, err := n.Float64(); err == nil {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
		return s
	}
	whole, frac, ok := strings.Cut(s, ".")
	if !ok || strings.Trim(frac, "0") == "" {
		return whole
	}
	if f, err := n.Float64(); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return s
}
