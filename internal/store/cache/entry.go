package cache

import (
	"encoding/json"
	"time"
)

// Entry is one cached response body with its expiry.
type Entry struct {
	// Key is the SHA256 hex digest of the endpoint.
	Key string `json:"key"`

	// Endpoint is the URL the body was fetched from.
	Endpoint string `json:"endpoint"`

	// Body is the raw response, which is always a JSON array.
	Body json.RawMessage `json:"body"`

	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
	TTLSeconds int       `json:"ttl_seconds"`
}

// NewEntry creates an entry that expires ttlSeconds from now.
func NewEntry(key, endpoint string, body json.RawMessage, ttlSeconds int) *Entry {
	now := time.Now()
	return &Entry{
		Key:        key,
		Endpoint:   endpoint,
		Body:       body,
		CreatedAt:  now,
		ExpiresAt:  now.Add(time.Duration(ttlSeconds) * time.Second),
		TTLSeconds: ttlSeconds,
	}
}

// IsExpired reports whether the entry is past its expiry time.
func (e *Entry) IsExpired() bool {
	return time.Now().After(e.ExpiresAt)
}

// Age returns the duration since the entry was created.
func (e *Entry) Age() time.Duration {
	return time.Since(e.CreatedAt)
}
