// Package source provides read use cases for news sources. Sources are
// created implicitly by the ingestion pipeline when a provider reports a
// source name for the first time; there is no write API.
package source

import "errors"

// Sentinel errors for source use case operations.
var (
	// ErrSourceNotFound indicates that the requested source was not found.
	ErrSourceNotFound = errors.New("source not found")

	// ErrInvalidSourceID indicates that the provided source ID is invalid.
	// Source IDs must be positive integers.
	ErrInvalidSourceID = errors.New("invalid source ID")
)
