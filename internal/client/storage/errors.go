package storage

import "errors"

// Common client storage errors
var (
	// ErrSessionNotFound indicates that no saved session exists
	ErrSessionNotFound = errors.New("session not found")

	// ErrDraftNotFound indicates that ad draft was not found
	ErrDraftNotFound = errors.New("ad draft not found")

	// ErrCacheMiss indicates that collection is not cached yet
	ErrCacheMiss = errors.New("collection is not cached")
)
