package data

import (
	"errors"
	"fmt"
)

// Shared sentinel errors for data-layer repositories.
var (
	// User repository sentinels.
	ErrUserNotFound    = errors.New("user not found")
	ErrUserEmailExists = errors.New("user email already exists")

	// Soil repository sentinels.
	ErrSoilRecordNotFound = errors.New("soil record not found")

	// Distributor repository sentinels.
	ErrDistributorNotFound = errors.New("distributor not found")
)

// DataAccessError wraps a repository failure with the collection and
// operation that produced it, so callers can render a per-operation
// notice without inspecting driver errors.
type DataAccessError struct {
	Collection string // "users", "soil_data", "distributors"
	Op         string // "list", "get", "create", "update", "delete"
	Err        error
}

// Error implements the error interface.
func (e *DataAccessError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Collection, e.Op, e.Err)
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *DataAccessError) Unwrap() error {
	return e.Err
}

// AccessErr wraps err as a DataAccessError. Sentinel errors pass through
// unwrapped so callers can match them directly.
func AccessErr(collection, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrUserEmailExists) ||
		errors.Is(err, ErrSoilRecordNotFound) ||
		errors.Is(err, ErrDistributorNotFound) {
		return err
	}
	return &DataAccessError{Collection: collection, Op: op, Err: err}
}
