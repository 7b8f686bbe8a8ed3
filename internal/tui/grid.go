package tui

import (
	"strconv"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/recview/internal/pagination"
	"github.com/rshade/recview/internal/record"
	"github.com/rshade/recview/internal/schema"
)

// Column width limits, in terminal cells.
const (
	minColumnWidth = 4
	maxColumnWidth = 40
	// markerWidth is the width of the expand marker column.
	markerWidth = 1
	// columnGap is the space between adjacent columns.
	columnGap = 2
)

// Expand markers shown in the first column.
const (
	markerCollapsed = "+"
	markerExpanded  = "-"
)

// idField is the record field used to key row expansion.
const idField = "id"

// grid is one page of the table, ready to render.
type grid struct {
	columns []schema.Column
	rows    []record.Record
	// indexes holds the fetch-order position of each row.
	indexes []int
	meta    pagination.Meta
}

// buildGrid infers the columns from the fetch-order sample, slices the
// current page and sorts only the rows on it.
func buildGrid(records []record.Record, sortState schema.SortState, page pagination.PageState) grid {
	columns := schema.Infer(records)

	page.Total = len(records)
	start, _ := page.Bounds()
	visible := pagination.Slice(records, page)

	order := sortState.Order(visible, columns)
	rows := make([]record.Record, len(order))
	indexes := make([]int, len(order))
	for i, pos := range order {
		rows[i] = visible[pos]
		indexes[i] = start + pos
	}
	return grid{
		columns: columns,
		rows:    rows,
		indexes: indexes,
		meta:    pagination.NewMeta(page),
	}
}

// key returns the expansion key of the i-th row on the page.
func (g grid) key(i int) string {
	return rowKey(g.rows[i], g.indexes[i])
}

func (g grid) headers() []string {
	out := make([]string, len(g.columns))
	for i, c := range g.columns {
		out[i] = c.Title
	}
	return out
}

func (g grid) cells() [][]string {
	out := make([][]string, len(g.rows))
	for i, r := range g.rows {
		row := make([]string, len(g.columns))
		for j, c := range g.columns {
			row[j] = c.Cell(r)
		}
		out[i] = row
	}
	return out
}

// rowKey identifies a row for expansion. Rows carrying a scalar id are
// keyed by it; the rest fall back to their position in the collection.
func rowKey(r record.Record, absIndex int) string {
	if v, ok := r.Get(idField); ok && v.IsScalar() && !v.IsNull() {
		return "id:" + v.String()
	}
	return "idx:" + strconv.Itoa(absIndex)
}

// calculateColumnWidths sizes each column to its widest cell within the
// limits, then shrinks the widest columns until the total fits widthLimit.
func calculateColumnWidths(headers []string, rows [][]string, widthLimit int) []int {
	widths := make([]int, len(headers))
	minWidths := make([]int, len(headers))
	for i, header := range headers {
		headerWidth := runewidth.StringWidth(header)
		minWidths[i] = clamp(headerWidth, minColumnWidth, maxColumnWidth)

		widest := headerWidth
		for _, row := range rows {
			if i < len(row) {
				widest = max(widest, runewidth.StringWidth(row[i]))
			}
		}
		widths[i] = max(clamp(widest, minColumnWidth, maxColumnWidth), minWidths[i])
	}

	if widthLimit <= 0 {
		return widths
	}

	total := sum(widths) + columnGap*len(widths)
	for total > widthLimit {
		idx := widestColumnAboveMin(widths, minWidths)
		if idx == -1 {
			break
		}
		widths[idx]--
		total--
	}
	return widths
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

func widestColumnAboveMin(widths, minWidths []int) int {
	idx := -1
	widest := 0
	for i, w := range widths {
		if w > widest && w > minWidths[i] {
			widest = w
			idx = i
		}
	}
	return idx
}

// fitCell truncates s to width cells and pads it on the right.
func fitCell(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}

// formatFooter describes the page position and the collection size, using
// English digit grouping for large totals.
func formatFooter(meta pagination.Meta) string {
	p := message.NewPrinter(language.English)
	noun := "records"
	if meta.TotalItems == 1 {
		noun = "record"
	}
	return p.Sprintf("Page %d of %d · %d %s", meta.CurrentPage, max(meta.TotalPages, 1), meta.TotalItems, noun)
}

// formatSortStatus names the active sort, or "" when unsorted.
func formatSortStatus(columns []schema.Column, s schema.SortState) string {
	if !s.Active() || s.Column >= len(columns) {
		return ""
	}
	return "sorted by " + columns[s.Column].Title + " " + s.Direction.String()
}
