package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	PrevPage   key.Binding
	NextPage   key.Binding
	Up         key.Binding
	Down       key.Binding
	Toggle     key.Binding
	SortColumn key.Binding
	SortOrder  key.Binding
	Copy       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PrevPage:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev page")),
		NextPage:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next page")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "expand")),
		SortColumn: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort column")),
		SortOrder:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "sort order")),
		Copy:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy details")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) shortHelp() []key.Binding {
	return []key.Binding{k.PrevPage, k.NextPage, k.Toggle, k.SortColumn, k.SortOrder, k.Copy, k.Quit}
}
