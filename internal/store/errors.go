package store

import "errors"

// Store errors surfaced to callers. Operations never retry; a failure is
// reported immediately.
var (
	// ErrUnavailable indicates the store connection was never established.
	ErrUnavailable = errors.New("document store unavailable")

	// ErrNotFound indicates no document matched the requested identifier.
	ErrNotFound = errors.New("document not found")

	// ErrInvalidID indicates an identifier string is not a valid ObjectID.
	ErrInvalidID = errors.New("invalid document id")
)
