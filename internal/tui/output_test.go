package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectOutputMode(t *testing.T) {
	tests := []struct {
		name     string
		plain    bool
		noColor  bool
		forceTTY bool
		env      map[string]string
		want     OutputMode
	}{
		{name: "terminal", forceTTY: true, want: OutputModeInteractive},
		{name: "terminal plain", plain: true, forceTTY: true, want: OutputModeStyled},
		{name: "terminal plain no color", plain: true, noColor: true, forceTTY: true, want: OutputModePlain},
		{
			name: "NO_COLOR env", plain: true, forceTTY: true,
			env:  map[string]string{"NO_COLOR": "1"},
			want: OutputModePlain,
		},
		{
			name: "CLICOLOR=0 env", plain: true, forceTTY: true,
			env:  map[string]string{"CLICOLOR": "0"},
			want: OutputModePlain,
		},
		{name: "no color alone keeps the program", noColor: true, forceTTY: true, want: OutputModeInteractive},
		// go test does not attach stdout to a terminal.
		{name: "not a terminal", want: OutputModePlain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "")
			t.Setenv("CLICOLOR", "")
			t.Setenv("CLICOLOR_FORCE", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			assert.Equal(t, tt.want, DetectOutputMode(tt.plain, tt.noColor, tt.forceTTY))
		})
	}
}

func TestOutputMode_String(t *testing.T) {
	assert.Equal(t, "interactive", OutputModeInteractive.String())
	assert.Equal(t, "styled", OutputModeStyled.String())
	assert.Equal(t, "plain", OutputModePlain.String())
}

func TestTerminalSize_Fallback(t *testing.T) {
	w, h := TerminalSize()
	assert.Positive(t, w)
	assert.Positive(t, h)
}
