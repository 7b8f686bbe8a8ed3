package schema

import (
	"slices"

	"github.com/rshade/recview/internal/record"
)

// Direction is a column sort direction.
type Direction int

const (
	// Unsorted leaves records in fetch order.
	Unsorted Direction = iota
	// Ascend orders records by Column.Compare.
	Ascend
	// Descend reverses Column.Compare.
	Descend
)

// String returns the short direction name used in flags and the status line.
func (d Direction) String() string {
	switch d {
	case Ascend:
		return "asc"
	case Descend:
		return "desc"
	default:
		return "none"
	}
}

// ParseDirection maps "asc"/"desc" onto a Direction.
func ParseDirection(s string) Direction {
	switch s {
	case "asc":
		return Ascend
	case "desc":
		return Descend
	default:
		return Unsorted
	}
}

// Sort returns a sorted copy of records. The input slice is not modified.
func Sort(records []record.Record, col Column, dir Direction) []record.Record {
	sorted := slices.Clone(records)
	switch dir {
	case Ascend:
		slices.SortStableFunc(sorted, col.Compare)
	case Descend:
		slices.SortStableFunc(sorted, func(a, b record.Record) int {
			return -col.Compare(a, b)
		})
	case Unsorted:
	}
	return sorted
}

// SortState is the active sort column and direction of a view.
type SortState struct {
	// Column indexes the inferred columns; -1 means no column is selected.
	Column    int
	Direction Direction
}

// NoSort is the initial sort state.
func NoSort() SortState {
	return SortState{Column: -1, Direction: Unsorted}
}

// Active reports whether records are reordered by this state.
func (s SortState) Active() bool {
	return s.Column >= 0 && s.Direction != Unsorted
}

// CycleDirection steps none -> asc -> desc -> none on the current column.
// Without a column it selects the first one.
func (s SortState) CycleDirection(columnCount int) SortState {
	if columnCount == 0 {
		return NoSort()
	}
	if s.Column < 0 || s.Column >= columnCount {
		return SortState{Column: 0, Direction: Ascend}
	}
	switch s.Direction {
	case Unsorted:
		s.Direction = Ascend
	case Ascend:
		s.Direction = Descend
	case Descend:
		s.Direction = Unsorted
	}
	return s
}

// NextColumn moves the sort key to the following column, wrapping around,
// and sorts ascending.
func (s SortState) NextColumn(columnCount int) SortState {
	if columnCount == 0 {
		return NoSort()
	}
	return SortState{Column: (s.Column + 1) % columnCount, Direction: Ascend}
}

// Apply sorts records according to the state. Inactive states return the
// input unchanged.
func (s SortState) Apply(records []record.Record, columns []Column) []record.Record {
	if !s.Active() || s.Column >= len(columns) {
		return records
	}
	return Sort(records, columns[s.Column], s.Direction)
}

// Order returns the positions of records in the order the state sorts them.
// Inactive states return the identity permutation.
func (s SortState) Order(records []record.Record, columns []Column) []int {
	order := make([]int, len(records))
	for i := range order {
		order[i] = i
	}
	if !s.Active() || s.Column >= len(columns) {
		return order
	}
	col := columns[s.Column]
	sign := 1
	if s.Direction == Descend {
		sign = -1
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return sign * col.Compare(records[a], records[b])
	})
	return order
}

// ResolveSort finds the column with the given key and returns a state that
// sorts it in dir. It reports false when no column matches.
func ResolveSort(columns []Column, key string, dir Direction) (SortState, bool) {
	idx, ok := IndexOf(columns, key)
	if !ok {
		return NoSort(), false
	}
	return SortState{Column: idx, Direction: dir}, true
}
