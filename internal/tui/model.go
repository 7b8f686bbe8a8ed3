package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/rshade/recview/internal/expand"
	"github.com/rshade/recview/internal/logging"
	"github.com/rshade/recview/internal/pagination"
	"github.com/rshade/recview/internal/record"
	"github.com/rshade/recview/internal/schema"
	"github.com/rshade/recview/internal/store"
	listview "github.com/rshade/recview/internal/tui/list"
)

// Layout constants.
const (
	// tableChromeHeight is the header row plus its border.
	tableChromeHeight = 2
	// minPanelHeight is the smallest expansion panel viewport.
	minPanelHeight = 3
	// reservedLines covers the footer, help line and spacing.
	reservedLines = 6
)

// RecordsLoadedMsg reports the outcome of the single fetch. Err is set on
// failure; Records is then empty.
type RecordsLoadedMsg struct {
	Records []record.Record
	Err     error
}

// SortRequest names the initial sort by field key. It is resolved against
// the inferred columns once records arrive.
type SortRequest struct {
	Field     string
	Direction schema.Direction
}

// Option configures a Model.
type Option func(*Model)

// WithInitialPage starts the view on page.
func WithInitialPage(page int) Option {
	return func(m *Model) { m.page.SetPage(page) }
}

// WithSort applies an initial sort once the records are loaded.
func WithSort(req SortRequest) Option {
	return func(m *Model) { m.sortRequest = &req }
}

// WithClipboard replaces the clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(m *Model) { m.writeClipboard = write }
}

// WithSize sets the initial dimensions before the first WindowSizeMsg.
func WithSize(width, height int) Option {
	return func(m *Model) {
		m.width = width
		m.height = height
	}
}

// Model is the Bubble Tea model for the record table.
type Model struct {
	ctx   context.Context
	store *store.Store
	keys  keyMap

	state   ViewState
	loading *LoadingState

	// records is the collection in fetch order.
	records     []record.Record
	sort        schema.SortState
	sortRequest *SortRequest
	page        pagination.PageState
	grid        grid

	// cursor is the selected row within the current page.
	cursor   int
	expanded map[string]bool

	table table.Model
	pager paginator.Model
	panel *listview.ScrollModel[string]

	status         string
	writeClipboard func(string) error

	width  int
	height int
}

// NewModel creates a model in the loading state. Init starts the fetch.
func NewModel(ctx context.Context, st *store.Store, opts ...Option) *Model {
	pager := paginator.New()
	pager.Type = paginator.Arabic
	pager.PerPage = pagination.PageSize

	m := &Model{
		ctx:            ctx,
		store:          st,
		keys:           defaultKeyMap(),
		state:          ViewStateLoading,
		loading:        NewLoadingState(),
		records:        []record.Record{},
		sort:           schema.NoSort(),
		page:           pagination.NewPageState(0),
		expanded:       make(map[string]bool),
		pager:          pager,
		writeClipboard: clipboard.WriteAll,
		width:          defaultWidth,
		height:         defaultHeight,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.panel = listview.NewScrollModel([]string{}, minPanelHeight, m.width, renderPanelLine)
	return m
}

// Init starts the spinner and the fetch.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loading.Init(), m.loadCmd())
}

func (m *Model) loadCmd() tea.Cmd {
	ctx, st := m.ctx, m.store
	return func() tea.Msg {
		err := st.Load(ctx)
		return RecordsLoadedMsg{Records: st.Records(), Err: err}
	}
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.state == ViewStateReady {
			m.rebuild()
		}
		return m, nil

	case RecordsLoadedMsg:
		return m.handleLoaded(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.state = ViewStateQuitting
			return m, tea.Quit
		}
	}

	switch m.state {
	case ViewStateLoading:
		return m, m.loading.Update(msg)
	case ViewStateReady:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			return m.handleKeyMsg(keyMsg)
		}
	case ViewStateQuitting:
	}
	return m, nil
}

func (m *Model) handleLoaded(msg RecordsLoadedMsg) (tea.Model, tea.Cmd) {
	if m.state != ViewStateLoading {
		return m, nil
	}
	m.state = ViewStateReady
	m.records = msg.Records
	if m.records == nil {
		m.records = []record.Record{}
	}
	m.page.Total = len(m.records)

	if m.sortRequest != nil {
		m.applySortRequest(*m.sortRequest)
		m.sortRequest = nil
	}
	m.rebuild()
	return m, nil
}

func (m *Model) applySortRequest(req SortRequest) {
	if req.Field == "" || req.Direction == schema.Unsorted {
		return
	}
	s, ok := schema.ResolveSort(schema.Infer(m.records), req.Field, req.Direction)
	if !ok {
		log := logging.FromContext(m.ctx)
		log.Warn().
			Ctx(m.ctx).
			Str("component", "tui").
			Str("field", req.Field).
			Msg("sort field is not a column, showing fetch order")
		return
	}
	m.sort = s
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.PrevPage):
		m.goToPage(m.prevPage())
	case key.Matches(msg, m.keys.NextPage):
		m.goToPage(m.page.CurrentPage + 1)
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.table.SetCursor(m.cursor)
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.grid.rows)-1 {
			m.cursor++
			m.table.SetCursor(m.cursor)
		}
	case key.Matches(msg, m.keys.Toggle):
		m.toggleExpanded()
	case key.Matches(msg, m.keys.SortColumn):
		m.sort = m.sort.NextColumn(len(m.grid.columns))
		m.rebuild()
	case key.Matches(msg, m.keys.SortOrder):
		m.sort = m.sort.CycleDirection(len(m.grid.columns))
		m.rebuild()
	case key.Matches(msg, m.keys.Copy):
		m.copyDetails()
	default:
		m.panel.Update(msg)
	}
	return m, nil
}

// goToPage moves to page when it exists. Out-of-range requests are dropped
// the same way the page control never offers them.
func (m *Model) goToPage(page int) {
	if !m.page.IsValidPage(page) {
		return
	}
	m.page.SetPage(page)
	m.cursor = 0
	m.rebuild()
}

// prevPage is the page before the current one. From a page past the end,
// as an initial page can be, it is the last page.
func (m *Model) prevPage() int {
	if last := m.page.TotalPages(); m.page.CurrentPage > last {
		return last
	}
	return m.page.CurrentPage - 1
}

func (m *Model) toggleExpanded() {
	if m.cursor < 0 || m.cursor >= len(m.grid.rows) {
		return
	}
	k := m.grid.key(m.cursor)
	if m.expanded[k] {
		delete(m.expanded, k)
	} else {
		m.expanded[k] = true
	}
	m.rebuild()
}

func (m *Model) copyDetails() {
	if m.cursor < 0 || m.cursor >= len(m.grid.rows) {
		return
	}
	text := expand.Text(expand.Expand(m.grid.rows[m.cursor]))
	if text == "" {
		m.status = "Row has no nested fields to copy"
		return
	}
	if err := m.writeClipboard(text); err != nil {
		log := logging.FromContext(m.ctx)
		log.Debug().Ctx(m.ctx).Str("component", "tui").Err(err).Msg("clipboard write failed")
		m.status = WarningStyle.Render("Copy failed: " + err.Error())
		return
	}
	m.status = fmt.Sprintf("Copied %d lines", strings.Count(text, "\n")+1)
}

// rebuild recomputes the page and refreshes the child components.
func (m *Model) rebuild() {
	m.grid = buildGrid(m.records, m.sort, m.page)
	if m.cursor >= len(m.grid.rows) {
		m.cursor = max(len(m.grid.rows)-1, 0)
	}

	m.table = m.newTable()
	m.pager.TotalPages = max(m.grid.meta.TotalPages, 1)
	m.pager.Page = max(m.page.CurrentPage-1, 0)

	m.panel.SetItems(m.panelLines())
	m.panel.SetSize(m.panelHeight(), m.width)
}

func (m *Model) newTable() table.Model {
	headers := m.grid.headers()
	cells := m.grid.cells()
	widths := calculateColumnWidths(headers, cells, m.width-markerWidth-columnGap)

	columns := make([]table.Column, 0, len(headers)+1)
	columns = append(columns, table.Column{Title: "", Width: markerWidth})
	for i, h := range headers {
		columns = append(columns, table.Column{Title: h, Width: widths[i]})
	}

	rows := make([]table.Row, len(cells))
	for i, c := range cells {
		marker := markerCollapsed
		if m.expanded[m.grid.key(i)] {
			marker = markerExpanded
		}
		rows[i] = append(table.Row{marker}, c...)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(pagination.PageSize+tableChromeHeight),
	)
	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)
	t.SetCursor(m.cursor)
	return t
}

// panelLines renders every expanded row of the current page.
func (m *Model) panelLines() []string {
	var lines []string
	for i, r := range m.grid.rows {
		if !m.expanded[m.grid.key(i)] {
			continue
		}
		lines = append(lines, HeaderStyle.Render(rowTitle(r, m.grid.indexes[i])))
		for _, line := range expand.Render(expand.Expand(r), expand.DefaultIndent) {
			lines = append(lines, expand.DefaultIndent+line)
		}
	}
	return lines
}

func (m *Model) panelHeight() int {
	used := pagination.PageSize + tableChromeHeight + reservedLines
	return max(m.height-used, minPanelHeight)
}

func rowTitle(r record.Record, absIndex int) string {
	if v, ok := r.Get(idField); ok && v.IsScalar() && !v.IsNull() {
		return "Record " + v.String()
	}
	return fmt.Sprintf("Record #%d", absIndex+1)
}

func renderPanelLine(line string, width int) string {
	if width <= 0 {
		return line
	}
	return ansi.Truncate(line, width, "…")
}

// View renders the current view.
func (m *Model) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateLoading:
		return RenderLoadingIndicator(m.loading, m.width)
	case ViewStateReady:
	}

	var b strings.Builder
	if len(m.grid.columns) == 0 && len(m.records) == 0 {
		b.WriteString(InfoStyle.Render("No records"))
	} else {
		b.WriteString(m.table.View())
	}
	b.WriteString("\n")

	if m.panel.ItemCount() > 0 {
		b.WriteString(PanelStyle.Render(m.panel.View()))
		b.WriteString("\n")
	}

	footer := m.pager.View() + "  " + formatFooter(m.grid.meta)
	if s := formatSortStatus(m.grid.columns, m.sort); s != "" {
		footer += " · " + s
	}
	b.WriteString(SubtleStyle.Render(footer))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString(m.helpView())
	return b.String()
}

func (m *Model) helpView() string {
	parts := make([]string, 0, len(m.keys.shortHelp()))
	for _, b := range m.keys.shortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return SubtleStyle.Render(strings.Join(parts, " • "))
}

// State returns the current view state.
func (m *Model) State() ViewState { return m.state }

// Page returns the current page state.
func (m *Model) Page() pagination.PageState { return m.page }

// Sort returns the current sort state.
func (m *Model) Sort() schema.SortState { return m.sort }

// Columns returns the columns of the current grid.
func (m *Model) Columns() []schema.Column { return m.grid.columns }

// VisibleRecords returns the rows of the current page in display order.
func (m *Model) VisibleRecords() []record.Record { return m.grid.rows }

// Cursor returns the selected row within the page.
func (m *Model) Cursor() int { return m.cursor }

// IsExpanded reports whether the row at fetch-order position absIndex is
// expanded.
func (m *Model) IsExpanded(r record.Record, absIndex int) bool {
	return m.expanded[rowKey(r, absIndex)]
}

// PanelLines returns the unstyled expansion panel content.
func (m *Model) PanelLines() []string {
	lines := m.panelLines()
	for i, l := range lines {
		lines[i] = ansi.Strip(l)
	}
	return lines
}
