package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rshade/recview/internal/logging"
	"github.com/rshade/recview/internal/record"
)

// DefaultEndpoint is the collection fetched when none is configured.
const DefaultEndpoint = "https://jsonplaceholder.typicode.com/users"

// defaultTimeout bounds a single request when the caller supplies no client.
const defaultTimeout = 30 * time.Second

// maxBodyBytes caps the response body read from the endpoint.
const maxBodyBytes = 32 << 20

// ErrUnexpectedStatus is returned for non-2xx responses.
var ErrUnexpectedStatus = errors.New("unexpected HTTP status")

// Fetcher retrieves the record collection.
type Fetcher interface {
	Fetch(ctx context.Context) ([]record.Record, error)
}

// RawFetcher retrieves the undecoded response body. It lets wrappers such as
// a response cache keep the body without decoding it twice.
type RawFetcher interface {
	FetchRaw(ctx context.Context) ([]byte, error)
	Endpoint() string
}

// HTTPFetcher issues a single GET against an endpoint.
type HTTPFetcher struct {
	endpoint string
	client   *http.Client
}

// HTTPOption configures an HTTPFetcher.
type HTTPOption func(*HTTPFetcher)

// WithHTTPClient replaces the default client. Its transport is wrapped with
// request logging.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(f *HTTPFetcher) {
		if c != nil {
			f.client = c
		}
	}
}

// NewHTTPFetcher returns a fetcher for endpoint. An empty endpoint selects
// DefaultEndpoint.
func NewHTTPFetcher(endpoint string, opts ...HTTPOption) *HTTPFetcher {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	f := &HTTPFetcher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(f)
	}

	wrapped := *f.client
	wrapped.Transport = NewLoggingTransport(f.client.Transport)
	f.client = &wrapped
	return f
}

// Endpoint returns the URL this fetcher reads.
func (f *HTTPFetcher) Endpoint() string { return f.endpoint }

// FetchRaw returns the response body of a successful GET.
func (f *HTTPFetcher) FetchRaw(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", f.endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return body, nil
}

// Fetch retrieves and decodes the collection.
func (f *HTTPFetcher) Fetch(ctx context.Context) ([]record.Record, error) {
	body, err := f.FetchRaw(ctx)
	if err != nil {
		return nil, err
	}
	return DecodeBody(ctx, body)
}

// DecodeBody decodes a JSON array of records. Non-object elements are
// dropped and reported at debug level.
func DecodeBody(ctx context.Context, body []byte) ([]record.Record, error) {
	records, skipped, err := record.DecodeRecords(body)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		log := logging.FromContext(ctx)
		log.Debug().
			Ctx(ctx).
			Str("component", "store").
			Int("skipped", skipped).
			Int("records", len(records)).
			Msg("dropped non-object array elements")
	}
	return records, nil
}
