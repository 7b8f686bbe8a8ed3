package logging

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// Output and format names accepted in Config.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
	OutputStderr  = "stderr"
	OutputFile    = "file"
	OutputDiscard = "discard"
)

// TraceIDKey is the field name used for trace IDs on every log event.
const TraceIDKey = "trace_id"

// Config describes how the process-wide logger is built.
type Config struct {
	Level  string
	Format string
	Output string
	File   string
	Caller bool
}

type traceIDKey struct{}

//nolint:gochecknoglobals // Fallback logger for contexts that carry none.
var (
	defaultLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			Level(zerolog.InfoLevel).
			With().
			Timestamp().
			Logger()
	defaultMu sync.RWMutex
)

// SetDefault replaces the logger returned by FromContext when the context carries none.
func SetDefault(l zerolog.Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Default returns the fallback logger.
func Default() zerolog.Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// FromContext returns the logger stored in ctx, or the default logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx != nil {
		if l := zerolog.Ctx(ctx); l != nil && l.GetLevel() != zerolog.Disabled {
			return l
		}
	}
	l := Default()
	return &l
}

// ComponentLogger tags every event of l with the given component name.
func ComponentLogger(l zerolog.Logger, component string) zerolog.Logger {
	return l.With().Str("component", component).Logger()
}

// ContextWithTraceID stores traceID in ctx.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace ID stored in ctx, or "".
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(traceIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GetOrGenerateTraceID returns the trace ID already present in ctx or a new ULID.
func GetOrGenerateTraceID(ctx context.Context) string {
	if id := TraceIDFromContext(ctx); id != "" {
		return id
	}
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// TraceHook adds the trace ID from the event context, when present.
type TraceHook struct{}

// Run implements zerolog.Hook.
func (TraceHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	if id := TraceIDFromContext(e.GetCtx()); id != "" {
		e.Str(TraceIDKey, id)
	}
}

// LoggerResult is the outcome of NewLogger.
type LoggerResult struct {
	Logger         zerolog.Logger
	UsingFile      bool
	FilePath       string
	FallbackUsed   bool
	FallbackReason string

	file io.Closer
}

// Close releases the log file, if one was opened.
func (r *LoggerResult) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// NewLogger builds a logger from cfg. A file that cannot be opened falls
// back to stderr and is reported through FallbackUsed.
func NewLogger(cfg Config) LoggerResult {
	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	var result LoggerResult
	var out io.Writer = os.Stderr

	switch cfg.Output {
	case OutputDiscard:
		out = io.Discard
	case OutputFile:
		if cfg.File == "" {
			result.FallbackUsed = true
			result.FallbackReason = "no log file configured"
			break
		}
		f, openErr := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if openErr != nil {
			result.FallbackUsed = true
			result.FallbackReason = openErr.Error()
			break
		}
		out = f
		result.file = f
		result.UsingFile = true
		result.FilePath = cfg.File
	}

	if cfg.Format != FormatJSON && !result.UsingFile {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	lctx := zerolog.New(out).Level(lvl).Hook(TraceHook{}).With().Timestamp()
	if cfg.Caller {
		lctx = lctx.Caller()
	}
	result.Logger = lctx.Logger()
	return result
}

// PrintLogPathMessage tells the user where logs are going.
func PrintLogPathMessage(w io.Writer, path string) {
	_, _ = fmt.Fprintf(w, "Logging to %s\n", path)
}

// PrintFallbackWarning tells the user that file logging was not possible.
func PrintFallbackWarning(w io.Writer, reason string) {
	_, _ = fmt.Fprintf(w, "Warning: could not open log file (%s), logging to stderr\n", reason)
}
