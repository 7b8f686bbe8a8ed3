package schema

import (
	"slices"

	"github.com/rshade/recview/internal/record"
)

// Column is a sortable scalar projection of one record field.
type Column struct {
	// Title is the display label: the field name with its first character upper-cased.
	Title string
	// Key is the source field name.
	Key string
}

// Infer derives the columns from the first record. Fields whose sample
// value is nested are skipped; null counts as a scalar. An empty collection
// yields no columns.
func Infer(records []record.Record) []Column {
	if len(records) == 0 {
		return []Column{}
	}

	sample := records[0]
	columns := make([]Column, 0, sample.Len())
	for _, f := range sample.Fields() {
		if f.Value.IsNested() {
			continue
		}
		columns = append(columns, Column{Title: Capitalize(f.Key), Key: f.Key})
	}
	return columns
}

// Compare orders a and b by the column's field. It returns 1 when a's value
// is strictly greater and -1 otherwise, so equal values put a before b.
// It never returns 0.
func (c Column) Compare(a, b record.Record) int {
	av, aok := a.Get(c.Key)
	bv, bok := b.Get(c.Key)
	if greater(av, aok, bv, bok) {
		return 1
	}
	return -1
}

// Cell returns the display text of the column's field in r. Missing fields
// render empty.
func (c Column) Cell(r record.Record) string {
	v, ok := r.Get(c.Key)
	if !ok {
		return ""
	}
	return v.String()
}

// IndexOf returns the position of the column with the given key.
func IndexOf(columns []Column, key string) (int, bool) {
	idx := slices.IndexFunc(columns, func(c Column) bool { return c.Key == key })
	return idx, idx >= 0
}
