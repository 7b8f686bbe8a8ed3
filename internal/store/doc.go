// Package store fetches the record collection and holds it for the view.
//
// A Store performs exactly one fetch over its lifetime. Fetch failures are
// logged and leave the store ready with no records, so callers never need a
// separate error state to make progress.
package store
