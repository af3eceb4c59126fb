package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the trip search domain.
var (
	// ErrInvalidConstraints indicates a malformed or contradictory set of
	// search constraints. Rejected before any search runs.
	ErrInvalidConstraints = errors.New("invalid search constraints")

	// ErrEmptyCombination indicates an attempt to build a combination with
	// zero flights. This is a construction error and is unreachable through
	// the public search operations.
	ErrEmptyCombination = errors.New("combination must contain at least one flight")

	// ErrMalformedRecord indicates a catalog record that failed validation
	// at load time.
	ErrMalformedRecord = errors.New("malformed flight record")

	// ErrCatalogUnavailable indicates the flight catalog could not be loaded.
	ErrCatalogUnavailable = errors.New("flight catalog unavailable")
)

// CatalogError wraps an error from a specific catalog source.
// Retryable marks transient failures (network hiccups, 5xx responses) that a
// caller may retry; validation failures are never retryable.
type CatalogError struct {
	// Source is the catalog source identifier
	Source string

	// Err is the underlying error
	Err error

	// Retryable indicates whether the operation may be retried
	Retryable bool
}

// Error implements the error interface.
func (e *CatalogError) Error() string {
	return fmt.Sprintf("catalog %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *CatalogError) Unwrap() error {
	return e.Err
}

// NewCatalogError creates a non-retryable catalog error.
func NewCatalogError(source string, err error) *CatalogError {
	return &CatalogError{Source: source, Err: err}
}

// NewRetryableCatalogError creates a catalog error marked as retryable.
func NewRetryableCatalogError(source string, err error) *CatalogError {
	return &CatalogError{Source: source, Err: err, Retryable: true}
}

// IsCatalogError reports whether err is (or wraps) a CatalogError.
func IsCatalogError(err error) bool {
	var catalogErr *CatalogError
	return errors.As(err, &catalogErr)
}
