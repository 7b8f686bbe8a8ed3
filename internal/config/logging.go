package config

import (
	"strings"

	"github.com/rshade/recview/internal/logging"
)

// ToLoggingConfig converts the logging section for use with the
// internal/logging package.
//
// The conversion applies these rules:
//   - Level and Format are copied directly
//   - If File is set, Output becomes "file" and File is passed through
//   - If File is empty, Output defaults to "stderr"
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := outputTypeStderr
	if lc.File != "" {
		output = outputTypeFile
	}
	return logging.Config{
		Level:  strings.ToLower(lc.Level),
		Format: strings.ToLower(lc.Format),
		Output: output,
		File:   lc.File,
	}
}

// ForInteractive returns the logging config used while the full-screen view
// owns the terminal. Output goes to the log file, or nowhere when none is
// configured.
func (lc *LoggingConfig) ForInteractive() logging.Config {
	cfg := lc.ToLoggingConfig()
	if cfg.Output != outputTypeFile {
		cfg.Output = logging.OutputDiscard
	}
	return cfg
}
