// Package ingest provides the use case for pulling headlines from an upstream
// news API and persisting them as articles.
//
// A run fetches the current top headlines, normalizes each raw record into the
// canonical article shape, resolves its source, and upserts it keyed by URL.
// Malformed records and per-record store errors are counted and skipped so a
// single bad record never aborts a batch.
package ingest
