package store

import (
	"net/http"
	"time"

	"github.com/rshade/recview/internal/logging"
)

// LoggingTransport traces requests and responses at debug level.
type LoggingTransport struct {
	next http.RoundTripper
}

// NewLoggingTransport wraps next. A nil next uses http.DefaultTransport.
func NewLoggingTransport(next http.RoundTripper) *LoggingTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &LoggingTransport{next: next}
}

// RoundTrip implements http.RoundTripper.
func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	log := logging.FromContext(ctx).With().
		Str("component", "http").
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Logger()

	log.Debug().Ctx(ctx).Msg("HTTP request")

	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	duration := time.Since(start)
	if err != nil {
		log.Debug().Ctx(ctx).Err(err).Dur("duration", duration).Msg("HTTP request failed")
		return nil, err
	}

	log.Debug().
		Ctx(ctx).
		Int("status", resp.StatusCode).
		Int64("content_length", resp.ContentLength).
		Dur("duration", duration).
		Msg("HTTP response")
	return resp, nil
}
