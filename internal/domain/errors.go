package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the engine's failure taxonomy. Every failure is
// returned as a typed condition; the HTTP layer decides status mapping.
// Nothing in the core retries.
var (
	// ErrEmptyDataset means an aggregate was requested over a view with
	// zero rows. Means and rates are undefined on an empty view.
	ErrEmptyDataset = errors.New("empty dataset")

	// ErrNotFound means a department filter matched zero joined rows.
	ErrNotFound = errors.New("not found")

	// ErrModelUnavailable means no classifier artifact was loaded at
	// startup. Only Predict is affected.
	ErrModelUnavailable = errors.New("model not loaded")

	// ErrInvalidCredentials covers both unknown email and wrong
	// password; callers must not learn which.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken means a registration reused an existing email.
	ErrEmailTaken = errors.New("email already registered")
)

// ValidationError reports a malformed input row. Caller's fault, not
// retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ReferenceNotFoundError reports a performance row citing an employee
// identifier absent from the employees table. The row is rejected
// before anything is written.
type ReferenceNotFoundError struct {
	EmployeeID int
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("employee %d not found", e.EmployeeID)
}

// StorageError reports an I/O failure against a durable table. It is
// surfaced to the caller unretried so partial appends are never
// silently swallowed.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// FeatureMismatchError reports a feature record whose shape or value
// domain does not match what the classifier was trained on. The
// adapter never coerces silently.
type FeatureMismatchError struct {
	Feature string
	Reason  string
}

func (e *FeatureMismatchError) Error() string {
	return fmt.Sprintf("feature %s: %s", e.Feature, e.Reason)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsReferenceNotFound reports whether err is a ReferenceNotFoundError.
func IsReferenceNotFound(err error) bool {
	var re *ReferenceNotFoundError
	return errors.As(err, &re)
}

// IsStorage reports whether err is a StorageError.
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

// IsFeatureMismatch reports whether err is a FeatureMismatchError.
func IsFeatureMismatch(err error) bool {
	var fe *FeatureMismatchError
	return errors.As(err, &fe)
}
