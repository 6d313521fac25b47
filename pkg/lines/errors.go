package lines

import (
	"errors"
	"fmt"
	"os"
	"time"
)

var (
	// ErrFull indicates a frame doesn't fit into the ring before its delimiter
	// arrived. The stream is desynchronized; callers usually Reset and go on.
	ErrFull = errors.New("line buffer full")
)

// ReadError wraps an error reported by the byte source.
type ReadError struct {
	Err       error
	Transient bool
	// Attempts is the number of source reads that failed in a row.
	Attempts int
}

// Error implements error.
func (e *ReadError) Error() string {
	if e.Transient {
		return fmt.Sprintf("read source (transient, %d attempts): %v", e.Attempts, e.Err)
	}
	return fmt.Sprintf("read source: %v", e.Err)
}

// Unwrap returns the source error.
func (e *ReadError) Unwrap() error {
	return e.Err
}

type transientError struct {
	err error
}

func (e *transientError) Error() string   { return e.err.Error() }
func (e *transientError) Unwrap() error   { return e.err }
func (e *transientError) Temporary() bool { return true }

// Transient marks err as a transient source failure which may be retried.
func Transient(err error) error {
	if err == nil {
		return nil
	}
	return &transientError{err: err}
}

// IsTransient reports whether a source error is worth retrying: errors
// marked by Transient, timeouts and errors reporting Temporary() == true.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if os.IsTimeout(err) {
		return true
	}
	var temp interface{ Temporary() bool }
	if errors.As(err, &temp) {
		return temp.Temporary()
	}
	var timeout interface{ Timeout() bool }
	if errors.As(err, &timeout) {
		return timeout.Timeout()
	}
	return false
}

// RetryPolicy decides how a Reader handles transient source errors.
// The zero value retries nothing.
type RetryPolicy struct {
	// MaxRetries is the number of consecutive transient failures tolerated
	// within a single ReadLine call.
	MaxRetries int
	// Backoff is the wait before the next attempt.
	Backoff time.Duration
}

func (p RetryPolicy) allows(attempts int, err error) bool {
	return attempts <= p.MaxRetries && IsTransient(err)
}
