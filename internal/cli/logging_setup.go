package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/recview/internal/config"
	"github.com/rshade/recview/internal/logging"
)

const logDirPerm = 0o700

// setupLogging configures logging from the resolved config and CLI flags.
// While the interactive view owns the terminal, nothing is written to stderr.
func setupLogging(cmd *cobra.Command, cfg *config.Config, debug, interactive bool) logging.LoggerResult {
	loggingCfg := cfg.Logging

	if debug {
		loggingCfg.Level = "debug"
		if !interactive {
			loggingCfg.Format = "console"
			loggingCfg.File = ""
		}
	}

	// Ensure log directory exists after all overrides have been applied.
	if loggingCfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(loggingCfg.File), logDirPerm); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
		}
	}

	lc := loggingCfg.ToLoggingConfig()
	if interactive {
		lc = loggingCfg.ForInteractive()
	}

	result := logging.NewLogger(lc)
	logging.SetDefault(result.Logger)
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed && !interactive {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = result.Logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Info().Ctx(ctx).Str("command", cmd.Name()).Msg("command started")

	return result
}
