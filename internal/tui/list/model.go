package listview

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RenderFunc renders one item.
type RenderFunc[T any] func(item T, width int) string

// KeyMap holds the scroll bindings.
type KeyMap struct {
	LineUp   key.Binding
	LineDown key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
}

// DefaultKeyMap leaves up/down and j/k free for the host view.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		LineUp:   key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "scroll up")),
		LineDown: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "scroll down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		Top:      key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "top")),
		Bottom:   key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "bottom")),
	}
}

// ScrollModel shows a window of height items starting at an offset.
type ScrollModel[T any] struct {
	items      []T
	renderFunc RenderFunc[T]
	keys       KeyMap

	offset int
	height int
	width  int
}

// NewScrollModel creates a scroller positioned at the top.
func NewScrollModel[T any](items []T, height, width int, renderFunc RenderFunc[T]) *ScrollModel[T] {
	return &ScrollModel[T]{
		items:      items,
		renderFunc: renderFunc,
		keys:       DefaultKeyMap(),
		height:     max(height, 1),
		width:      width,
	}
}

// Init implements tea.Model.
func (m *ScrollModel[T]) Init() tea.Cmd {
	return nil
}

// Update handles scroll keys and resize messages.
func (m *ScrollModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.SetSize(msg.Height, msg.Width)
	}
	return m, nil
}

func (m *ScrollModel[T]) handleKeyMsg(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.LineUp):
		m.ScrollBy(-1)
	case key.Matches(msg, m.keys.LineDown):
		m.ScrollBy(1)
	case key.Matches(msg, m.keys.PageUp):
		m.ScrollBy(-m.height)
	case key.Matches(msg, m.keys.PageDown):
		m.ScrollBy(m.height)
	case key.Matches(msg, m.keys.Top):
		m.offset = 0
	case key.Matches(msg, m.keys.Bottom):
		m.offset = m.maxOffset()
	}
}

// ScrollBy moves the window by delta items, clamped to the content.
func (m *ScrollModel[T]) ScrollBy(delta int) {
	m.offset = min(max(m.offset+delta, 0), m.maxOffset())
}

func (m *ScrollModel[T]) maxOffset() int {
	return max(len(m.items)-m.height, 0)
}

// SetItems replaces the content and keeps the offset when it still fits.
func (m *ScrollModel[T]) SetItems(items []T) {
	m.items = items
	m.offset = min(m.offset, m.maxOffset())
}

// SetSize changes the viewport dimensions.
func (m *ScrollModel[T]) SetSize(height, width int) {
	m.height = max(height, 1)
	m.width = width
	m.offset = min(m.offset, m.maxOffset())
}

// View renders the visible items, one per line.
func (m *ScrollModel[T]) View() string {
	if len(m.items) == 0 {
		return ""
	}
	end := min(m.offset+m.height, len(m.items))

	var b strings.Builder
	for i := m.offset; i < end; i++ {
		if i > m.offset {
			b.WriteByte('\n')
		}
		b.WriteString(m.renderFunc(m.items[i], m.width))
	}
	return b.String()
}

// ItemCount returns the total number of items.
func (m *ScrollModel[T]) ItemCount() int { return len(m.items) }

// Offset returns the index of the first visible item.
func (m *ScrollModel[T]) Offset() int { return m.offset }

// Height returns the viewport height.
func (m *ScrollModel[T]) Height() int { return m.height }

// Width returns the viewport width.
func (m *ScrollModel[T]) Width() int { return m.width }

// AtTop reports whether the first item is visible.
func (m *ScrollModel[T]) AtTop() bool { return m.offset == 0 }

// AtBottom reports whether the last item is visible.
func (m *ScrollModel[T]) AtBottom() bool { return m.offset >= m.maxOffset() }

// KeyMap returns the scroll bindings, for help rendering.
func (m *ScrollModel[T]) KeyMap() KeyMap { return m.keys }
