package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// skeletonRows is the number of placeholder bars shown while loading.
const skeletonRows = 5

// LoadingState drives the spinner shown next to the skeleton.
type LoadingState struct {
	spinner spinner.Model
	message string
}

// NewLoadingState returns a spinner with the default message.
func NewLoadingState() *LoadingState {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorAccent)
	return &LoadingState{spinner: s, message: "Loading records..."}
}

// Init starts the spinner.
func (l *LoadingState) Init() tea.Cmd {
	return l.spinner.Tick
}

// Update advances the spinner on its tick messages.
func (l *LoadingState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return cmd
}

// View renders the spinner and its message.
func (l *LoadingState) View() string {
	return l.spinner.View() + " " + SubtleStyle.Render(l.message)
}

// RenderSkeleton draws placeholder bars of varying length in place of the
// table. Bars never exceed width.
func RenderSkeleton(width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	// Lengths as a share of the available width, to look like ragged rows.
	shares := [skeletonRows]int{100, 85, 95, 70, 90}

	bars := make([]string, 0, skeletonRows)
	for _, share := range shares {
		n := max(width*share/100, 1)
		bars = append(bars, SkeletonStyle.Render(strings.Repeat(" ", n)))
	}
	return strings.Join(bars, "\n")
}

// RenderLoadingIndicator is the skeleton followed by a spinner line.
func RenderLoadingIndicator(l *LoadingState, width int) string {
	return RenderSkeleton(width) + "\n\n" + l.View()
}
