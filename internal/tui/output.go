package tui

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// OutputMode selects how the table is presented.
type OutputMode int

const (
	// OutputModeInteractive runs the full-screen Bubble Tea program.
	OutputModeInteractive OutputMode = iota
	// OutputModeStyled prints the table once with colors.
	OutputModeStyled
	// OutputModePlain prints the table once without any styling.
	OutputModePlain
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModeInteractive:
		return "interactive"
	case OutputModeStyled:
		return "styled"
	default:
		return "plain"
	}
}

// Default terminal dimensions when stdout is not a terminal.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// DetectOutputMode picks the mode for stdout. With plain set the table is
// printed once instead of running the program. forceTTY skips terminal
// detection; noColor (or NO_COLOR, CLICOLOR=0) drops styling from one-shot
// output.
func DetectOutputMode(plain, noColor, forceTTY bool) OutputMode {
	tty := forceTTY || IsTerminal(os.Stdout)
	noColor = noColor || termenv.EnvNoColor()

	switch {
	case !tty:
		return OutputModePlain
	case plain && noColor:
		return OutputModePlain
	case plain:
		return OutputModeStyled
	default:
		return OutputModeInteractive
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// TerminalSize returns the size of stdout, or the defaults when unknown.
//
//nolint:nonamedreturns // Named returns document the pair.
func TerminalSize() (width, height int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return defaultWidth, defaultHeight
	}
	return w, h
}

// TerminalWidth returns the width of stdout, or the default when unknown.
func TerminalWidth() int {
	w, _ := TerminalSize()
	return w
}
