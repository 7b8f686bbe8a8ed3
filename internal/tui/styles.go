package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
const (
	colorAccent  = lipgloss.Color("63")
	colorSubtle  = lipgloss.Color("241")
	colorMuted   = lipgloss.Color("238")
	colorValue   = lipgloss.Color("252")
	colorWarning = lipgloss.Color("214")
)

//nolint:gochecknoglobals // Shared lipgloss styles.
var (
	// HeaderStyle is used for section headings.
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	// LabelStyle is used for field labels in the expansion panel.
	LabelStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	// ValueStyle is used for field values.
	ValueStyle = lipgloss.NewStyle().Foreground(colorValue)

	// InfoStyle is used for neutral messages such as "No records".
	InfoStyle = lipgloss.NewStyle().Italic(true).Foreground(colorSubtle)

	// SubtleStyle is used for help and footer text.
	SubtleStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	// WarningStyle is used for transient status messages that report a problem.
	WarningStyle = lipgloss.NewStyle().Foreground(colorWarning)

	// TableHeaderStyle is applied to the table header row.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(colorMuted).
				BorderBottom(true)

	// TableSelectedStyle highlights the cursor row.
	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(colorAccent).
				Bold(false)

	// PanelStyle frames the expansion panel.
	PanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	// SkeletonStyle paints the placeholder bars shown while loading.
	SkeletonStyle = lipgloss.NewStyle().Background(colorMuted)
)
