package cache

import (
	"context"
	"errors"

	"github.com/rshade/recview/internal/logging"
	"github.com/rshade/recview/internal/record"
	"github.com/rshade/recview/internal/store"
)

// Fetcher serves the collection from the file cache when a fresh entry
// exists and otherwise fetches it and stores the body.
type Fetcher struct {
	next  store.RawFetcher
	files *FileStore
}

var _ store.Fetcher = (*Fetcher)(nil)

// NewFetcher wraps next with files.
func NewFetcher(next store.RawFetcher, files *FileStore) *Fetcher {
	return &Fetcher{next: next, files: files}
}

// Fetch implements store.Fetcher.
func (f *Fetcher) Fetch(ctx context.Context) ([]record.Record, error) {
	endpoint := f.next.Endpoint()
	key := KeyFor(endpoint)
	log := logging.FromContext(ctx).With().
		Str("component", "cache").
		Str("endpoint", endpoint).
		Logger()

	if f.files.IsEnabled() {
		entry, err := f.files.Get(key)
		switch {
		case err == nil:
			records, decodeErr := store.DecodeBody(ctx, entry.Body)
			if decodeErr == nil {
				log.Debug().Ctx(ctx).
					Str("age", FormatDuration(entry.Age())).
					Msg("serving records from cache")
				return records, nil
			}
			log.Warn().Ctx(ctx).Err(decodeErr).Msg("discarding unreadable cache entry")
			_ = f.files.Delete(key)
		case errors.Is(err, ErrCacheNotFound), errors.Is(err, ErrCacheExpired):
			log.Debug().Ctx(ctx).Err(err).Msg("cache miss")
		default:
			log.Warn().Ctx(ctx).Err(err).Msg("cache read failed")
		}
	}

	body, err := f.next.FetchRaw(ctx)
	if err != nil {
		return nil, err
	}
	records, err := store.DecodeBody(ctx, body)
	if err != nil {
		return nil, err
	}

	if f.files.IsEnabled() {
		if setErr := f.files.Set(key, endpoint, body); setErr != nil {
			log.Warn().Ctx(ctx).Err(setErr).Msg("cache write failed")
		}
	}
	return records, nil
}
