package domain

import "fmt"

// ValidationError rejects a request whose input is malformed: blank system
// codes, identical start/end codes, or codes unknown to the record set.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a system code absent from the record set.
type NotFoundError struct {
	SystemCode string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("system %q not found in record set", e.SystemCode)
}

// DataIntegrityError reports a located record whose required nested solution
// fields are missing upstream. Surfaced instead of dereferencing blindly.
type DataIntegrityError struct {
	SystemCode string
	Field      string
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("system %q has incomplete review data: missing %s", e.SystemCode, e.Field)
}

// UpstreamError wraps a failure of the review-service retrieval. It is
// propagated unchanged to the caller; the core performs no retry.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s failed: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
