// Package runtime provides the runtime pieces shared by every sample:
// the error taxonomy, the output stream and the runner that feeds a
// stream into a presenter.
package runtime

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyAggregate is returned when a min, mean or sum is requested
	// over an empty sequence that has no defined default.
	ErrEmptyAggregate = errors.New("empty aggregate")

	// ErrNumericOverflow is returned when a money summation leaves the
	// supported decimal range.
	ErrNumericOverflow = errors.New("numeric overflow")

	// ErrSampleNotFound is returned when no sample is registered under a name.
	ErrSampleNotFound = errors.New("sample not found")

	// ErrDuplicateSample is returned when a sample name or alias is already taken.
	ErrDuplicateSample = errors.New("duplicate sample name")
)

// DataShapeError reports an entity that is missing a required attribute
// or carries a value outside its domain.
type DataShapeError struct {
	Entity  string
	Index   int
	Field   string
	Message string
}

// Error implements the error interface.
func (e *DataShapeError) Error() string {
	return fmt.Sprintf("data shape error on %s[%d].%s: %s", e.Entity, e.Index, e.Field, e.Message)
}

// SampleError represents a failure raised while a sample was running.
type SampleError struct {
	Sample string
	Err    error
}

// Error implements the error interface.
func (e *SampleError) Error() string {
	return fmt.Sprintf("sample %s: %v", e.Sample, e.Err)
}

// Unwrap returns the underlying error.
func (e *SampleError) Unwrap() error {
	return e.Err
}
