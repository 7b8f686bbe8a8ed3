package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/recview/internal/expand"
	"github.com/rshade/recview/internal/pagination"
	"github.com/rshade/recview/internal/record"
	"github.com/rshade/recview/internal/schema"
)

// StaticOptions controls one-shot table output.
type StaticOptions struct {
	// Page is the 1-based page to print. Zero selects the first page.
	Page int
	// Sort is resolved against the inferred columns.
	Sort SortRequest
	// Expand prints the expansion panel under every row.
	Expand bool
	// Styled enables colors.
	Styled bool
	// Width limits the table width. Zero means unlimited.
	Width int
}

// RenderStatic writes one page of records as a text table followed by the
// page footer.
func RenderStatic(w io.Writer, records []record.Record, opts StaticOptions) error {
	page := pagination.NewPageState(len(records))
	if opts.Page > 0 {
		page.SetPage(opts.Page)
	}

	sortState := schema.NoSort()
	if opts.Sort.Field != "" && opts.Sort.Direction != schema.Unsorted {
		if s, ok := schema.ResolveSort(schema.Infer(records), opts.Sort.Field, opts.Sort.Direction); ok {
			sortState = s
		}
	}

	g := buildGrid(records, sortState, page)
	style := func(s lipgloss.Style, text string) string {
		if opts.Styled {
			return s.Render(text)
		}
		return text
	}

	var b strings.Builder
	if len(g.columns) == 0 && len(records) == 0 {
		b.WriteString(style(InfoStyle, "No records"))
		b.WriteString("\n")
	} else {
		writeStaticTable(&b, g, opts, style)
	}

	footer := formatFooter(g.meta)
	if s := formatSortStatus(g.columns, sortState); s != "" {
		footer += " · " + s
	}
	b.WriteString(style(SubtleStyle, footer))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("writing table: %w", err)
	}
	return nil
}

func writeStaticTable(b *strings.Builder, g grid, opts StaticOptions, style func(lipgloss.Style, string) string) {
	headers := g.headers()
	cells := g.cells()
	widths := calculateColumnWidths(headers, cells, opts.Width)

	gap := strings.Repeat(" ", columnGap)
	joinRow := func(values []string) string {
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = fitCell(v, widths[i])
		}
		return strings.TrimRight(strings.Join(parts, gap), " ")
	}

	b.WriteString(style(TableHeaderStyle.UnsetBorderBottom().UnsetPadding(), joinRow(headers)))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", sum(widths)+columnGap*max(len(widths)-1, 0)))
	b.WriteString("\n")

	for i, row := range cells {
		b.WriteString(joinRow(row))
		b.WriteString("\n")
		if !opts.Expand {
			continue
		}
		for _, line := range expand.Render(expand.Expand(g.rows[i]), expand.DefaultIndent) {
			b.WriteString(expand.DefaultIndent)
			b.WriteString(style(LabelStyle, line))
			b.WriteString("\n")
		}
	}
}
