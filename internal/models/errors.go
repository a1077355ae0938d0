package models

import (
	"errors"
	"fmt"
)

var (
	// ErrStorageUnavailable marks a connection-level storage failure. No further writes can succeed.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrInsufficientData is returned by live recommendation stages when there is not enough data to answer.
	ErrInsufficientData = errors.New("insufficient data for recommendation")
	// ErrSyncInProgress is returned when another synchronizer holds the sync lease.
	ErrSyncInProgress = errors.New("store sync already in progress")
)

// ValidationError reports a rejected input value.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// UpstreamUnavailableError wraps network, HTTP and result-code failures from the upstream store API.
type UpstreamUnavailableError struct {
	Region string
	Err    error
}

func (e *UpstreamUnavailableError) Error() string {
	return fmt.Sprintf("upstream unavailable for region %s: %v", e.Region, e.Err)
}

func (e *UpstreamUnavailableError) Unwrap() error { return e.Err }

// ParseError reports a malformed upstream payload.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse upstream payload: %s: %v", e.Reason, e.Err)
	}
	return "parse upstream payload: " + e.Reason
}

func (e *ParseError) Unwrap() error { return e.Err }

// PersistenceError reports a failed write of a single store record.
type PersistenceError struct {
	StoreNumber string
	Err         error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist store %s: %v", e.StoreNumber, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
