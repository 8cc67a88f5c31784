// file: isbndb/errors_test.go
// version: 1.0.0
// guid: 6c0e4a8b-2f5d-4b9c-a1e3-9f7b1d3e5a7c

package isbndb

import (
	"errors"
	"fmt"
	"testing"
)

func TestAPIErrorMessage(t *testing.T) {
	t.Parallel()

	err := &APIError{StatusCode: 403, Body: `{"message":"invalid key"}`}
	want := `isbndb API returned status 403: {"message":"invalid key"}`
	if err.Error() != want {
		t.Errorf("Expected %q, got %q", want, err.Error())
	}
}

func TestSentinelWrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("get book 123: %w", ErrNotFound)
	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("Expected wrapped error to match ErrNotFound")
	}
	if errors.Is(wrapped, ErrRateLimited) {
		t.Error("Did not expect wrapped error to match ErrRateLimited")
	}
}
