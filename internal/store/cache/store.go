package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const cacheFileExtension = ".json"

// Common cache errors.
var (
	ErrCacheNotFound   = errors.New("cache entry not found")
	ErrCacheExpired    = errors.New("cache entry expired")
	ErrInvalidCacheKey = errors.New("cache key cannot be empty")
	ErrCacheDisabled   = errors.New("cache is disabled")
)

// FileStore stores entries as JSON files in a directory. It is safe for
// concurrent use.
type FileStore struct {
	directory  string
	ttlSeconds int

	mu sync.RWMutex
}

// NewFileStore creates the directory if needed. A zero TTL returns a
// disabled store whose methods report ErrCacheDisabled.
func NewFileStore(directory string, ttlSeconds int) (*FileStore, error) {
	if err := ValidateTTL(ttlSeconds); err != nil {
		return nil, err
	}
	if ttlSeconds == 0 {
		return &FileStore{}, nil
	}
	if directory == "" {
		return nil, errors.New("cache directory cannot be empty")
	}
	if err := os.MkdirAll(directory, 0750); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &FileStore{directory: directory, ttlSeconds: ttlSeconds}, nil
}

// IsEnabled reports whether the store reads and writes entries.
func (s *FileStore) IsEnabled() bool {
	return s != nil && s.ttlSeconds > 0
}

// Directory returns the cache directory path.
func (s *FileStore) Directory() string { return s.directory }

// TTL returns the entry lifetime in seconds.
func (s *FileStore) TTL() int { return s.ttlSeconds }

// Get returns the entry for key. Expired entries are removed and reported
// as ErrCacheExpired.
func (s *FileStore) Get(key string) (*Entry, error) {
	if !s.IsEnabled() {
		return nil, ErrCacheDisabled
	}
	if key == "" {
		return nil, ErrInvalidCacheKey
	}

	path := s.path(key)

	s.mu.RLock()
	data, err := os.ReadFile(path)
	s.mu.RUnlock()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrCacheNotFound
		}
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}

	var entry Entry
	if unmarshalErr := json.Unmarshal(data, &entry); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal cache entry: %w", unmarshalErr)
	}

	if entry.IsExpired() {
		s.mu.Lock()
		_ = os.Remove(path)
		s.mu.Unlock()
		return nil, ErrCacheExpired
	}
	return &entry, nil
}

// Set writes body under key, replacing any existing entry.
func (s *FileStore) Set(key, endpoint string, body json.RawMessage) error {
	if !s.IsEnabled() {
		return ErrCacheDisabled
	}
	if key == "" {
		return ErrInvalidCacheKey
	}

	entry := NewEntry(key, endpoint, body, s.ttlSeconds)
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(key)
	tempPath := path + ".tmp"
	if writeErr := os.WriteFile(tempPath, data, 0600); writeErr != nil {
		return fmt.Errorf("failed to write cache file: %w", writeErr)
	}
	if renameErr := os.Rename(tempPath, path); renameErr != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to rename cache file: %w", renameErr)
	}
	return nil
}

// Delete removes the entry for key. Missing entries are not an error.
func (s *FileStore) Delete(key string) error {
	if !s.IsEnabled() {
		return ErrCacheDisabled
	}
	if key == "" {
		return ErrInvalidCacheKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete cache file: %w", err)
	}
	return nil
}

// Count returns the number of entry files, expired ones included.
func (s *FileStore) Count() (int, error) {
	if !s.IsEnabled() {
		return 0, ErrCacheDisabled
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.directory)
	if err != nil {
		return 0, fmt.Errorf("failed to read cache directory: %w", err)
	}
	count := 0
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == cacheFileExtension {
			count++
		}
	}
	return count, nil
}

// path maps a key to its file. Keys are hex digests, so no sanitizing is needed.
func (s *FileStore) path(key string) string {
	return filepath.Join(s.directory, key+cacheFileExtension)
}
