// file: isbndb/errors.go
// version: 1.0.0
// guid: 3a9e7b1c-5d2f-4a8b-b6c4-9f0e2d7a5b3c

package isbndb

import (
	"errors"
	"fmt"
)

// ErrNotFound signals that the API returned 404 for a lookup.
var ErrNotFound = errors.New("resource not found")

// ErrRateLimited signals that the API returned 429 on both the initial
// request and the single retry.
var ErrRateLimited = errors.New("rate limit exhausted")

// ErrInvalidInput signals that a caller-supplied argument failed validation
// before any request was sent.
var ErrInvalidInput = errors.New("invalid input")

// APIError carries the status code and raw body of a non-2xx response so
// callers can branch on it.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("isbndb API returned status %d: %s", e.StatusCode, e.Body)
}
