// Package cache keeps the raw collection response on disk for a bounded time.
//
// Key features:
//   - One JSON file per endpoint under the cache directory
//   - TTL between one minute and seven days
//   - SHA256-based keys derived from the endpoint URL
//
// Caching is off unless a positive TTL is configured. Cache failures are
// logged and never fail a fetch.
package cache
