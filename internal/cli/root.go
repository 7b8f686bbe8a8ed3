package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/recview/internal/config"
	"github.com/rshade/recview/internal/logging"
	"github.com/rshade/recview/internal/pagination"
	"github.com/rshade/recview/internal/schema"
	"github.com/rshade/recview/internal/store"
	"github.com/rshade/recview/internal/store/cache"
	"github.com/rshade/recview/internal/tui"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// rootFlags holds the root command's flag values.
type rootFlags struct {
	endpoint string
	page     int
	sort     string
	expand   bool
	plain    bool
	cacheTTL int
	debug    bool
}

// runState carries what PersistentPreRunE resolved into RunE.
type runState struct {
	cfg       *config.Config
	mode      tui.OutputMode
	sort      tui.SortRequest
	logResult *logging.LoggerResult
}

// NewRootCmd creates the root Cobra command for the recview CLI.
func NewRootCmd(ver string) *cobra.Command {
	var flags rootFlags
	var state runState

	cmd := &cobra.Command{
		Use:     "recview",
		Short:   "Browse a JSON record collection as a paged table",
		Long:    "recview fetches a JSON array of records once and shows it as a sortable, paged table with expandable rows.",
		Version: ver,
		Example: rootCmdExample,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if flags.cacheTTL < 0 {
				return fmt.Errorf("cache-ttl must be >= 0, got %d", flags.cacheTTL)
			}
			if err := pagination.ValidatePage(flags.page); err != nil {
				return err
			}
			field, order, err := pagination.ParseSort(flags.sort)
			if err != nil {
				return err
			}
			if field != "" {
				state.sort = tui.SortRequest{Field: field, Direction: schema.ParseDirection(order)}
			}

			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			state.cfg = cfg
			state.mode = tui.DetectOutputMode(flags.plain, false, false)

			result := setupLogging(cmd, cfg, flags.debug, state.mode == tui.OutputModeInteractive)
			state.logResult = &result
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runViewer(cmd, flags, state)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return state.logResult.Close()
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.endpoint, "endpoint", "", "collection URL (default "+store.DefaultEndpoint+")")
	f.IntVar(&flags.page, "page", pagination.DefaultPage, "page to show first")
	f.StringVar(&flags.sort, "sort", "", "initial sort as field[:asc|desc]")
	f.BoolVar(&flags.expand, "expand", false, "print nested fields under each row (non-interactive output only)")
	f.BoolVar(&flags.plain, "plain", false, "print the table once instead of starting the interactive view")
	cmd.PersistentFlags().IntVar(&flags.cacheTTL, "cache-ttl", 0,
		"cache the response for this many seconds (0 = use config, overrides config file and env var)")
	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(newVersionCmd(ver))
	return cmd
}

const rootCmdExample = `  # Browse the default collection
  recview

  # Print the second page sorted by name, descending
  recview --plain --page 2 --sort name:desc

  # Include nested fields in the printed table
  recview --plain --expand

  # Browse another collection and cache it for five minutes
  recview --endpoint https://example.com/api/people --cache-ttl 300`

// loadConfig reads the config file and applies flag overrides. A malformed
// file is reported and the defaults are used instead.
func loadConfig(cmd *cobra.Command, flags rootFlags) (*config.Config, error) {
	path, err := config.DefaultPath()
	if err != nil {
		cmd.PrintErrf("Warning: %v\n", err)
		path = ""
	}

	cfg, err := config.Load(path)
	if err != nil {
		cmd.PrintErrf("Warning: %v, using defaults\n", err)
	}

	if cmd.Flags().Changed("endpoint") {
		cfg.Viewer.Endpoint = flags.endpoint
	}
	if cmd.Flags().Changed("cache-ttl") {
		cfg.Cache.TTLSeconds = flags.cacheTTL
		cfg.Cache.Enabled = nil
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newFetcher builds the HTTP fetcher, wrapped with the response cache when
// a TTL is configured.
func newFetcher(cmd *cobra.Command, cfg *config.Config) store.Fetcher {
	httpFetcher := store.NewHTTPFetcher(cfg.Viewer.Endpoint)

	ttl := cfg.EffectiveCacheTTL()
	if ttl == 0 {
		return httpFetcher
	}
	files, err := cache.NewFileStore(cfg.Cache.Directory, ttl)
	if err != nil {
		logger.Warn().Ctx(cmd.Context()).Err(err).Msg("response cache unavailable")
		return httpFetcher
	}
	return cache.NewFetcher(httpFetcher, files)
}

func runViewer(cmd *cobra.Command, flags rootFlags, state runState) error {
	ctx := cmd.Context()
	st := store.New(newFetcher(cmd, state.cfg))

	logger.Debug().
		Ctx(ctx).
		Str("endpoint", state.cfg.Viewer.Endpoint).
		Str("mode", state.mode.String()).
		Msg("starting viewer")

	if state.mode != tui.OutputModeInteractive {
		// Failures are logged by the store; an empty table is still printed.
		_ = st.Load(ctx)
		opts := tui.StaticOptions{
			Page:   flags.page,
			Sort:   state.sort,
			Expand: flags.expand,
		}
		if state.mode == tui.OutputModeStyled {
			opts.Styled = true
			opts.Width = tui.TerminalWidth()
		}
		return tui.RenderStatic(cmd.OutOrStdout(), st.Records(), opts)
	}

	width, height := tui.TerminalSize()
	model := tui.NewModel(ctx, st,
		tui.WithInitialPage(flags.page),
		tui.WithSort(state.sort),
		tui.WithSize(width, height),
	)
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(os.Stdin),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running viewer: %w", err)
	}
	return nil
}
