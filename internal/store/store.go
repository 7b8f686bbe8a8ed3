package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rshade/recview/internal/logging"
	"github.com/rshade/recview/internal/record"
)

// ErrFetchFailure wraps any error that prevented the collection from loading.
var ErrFetchFailure = errors.New("fetch failure")

// Store holds the fetched records and the loading flag.
type Store struct {
	fetcher Fetcher
	once    sync.Once

	mu      sync.RWMutex
	records []record.Record
	loading bool
	err     error
}

// New returns a store in the loading state with no records.
func New(fetcher Fetcher) *Store {
	return &Store{
		fetcher: fetcher,
		records: []record.Record{},
		loading: true,
	}
}

// Load performs the fetch. Only the first call does any work; later calls
// return the first outcome. A failure is logged, leaves the records empty
// and still clears the loading flag.
func (s *Store) Load(ctx context.Context) error {
	s.once.Do(func() {
		records, err := s.fetch(ctx)

		s.mu.Lock()
		defer s.mu.Unlock()
		s.loading = false
		if err != nil {
			s.err = fmt.Errorf("%w: %w", ErrFetchFailure, err)
			log := logging.FromContext(ctx)
			log.Error().
				Ctx(ctx).
				Str("component", "store").
				Err(s.err).
				Msg("failed to fetch records")
			return
		}
		s.records = records

		log := logging.FromContext(ctx)
		log.Debug().
			Ctx(ctx).
			Str("component", "store").
			Int("records", len(records)).
			Msg("records loaded")
	})

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *Store) fetch(ctx context.Context) ([]record.Record, error) {
	if s.fetcher == nil {
		return nil, errors.New("no fetcher configured")
	}
	records, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []record.Record{}
	}
	return records, nil
}

// Records returns the loaded records. The slice must not be modified.
func (s *Store) Records() []record.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

// Loading reports whether the fetch has not completed yet.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the fetch failure, if any. It is diagnostic only.
func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}
