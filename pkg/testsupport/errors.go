package testsupport

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrInvalidCount is returned when fewer than one emission is requested.
	ErrInvalidCount = errors.New("invalid collection count")

	// ErrUnfulfilled is returned when the stream ended before enough
	// emissions arrived.
	ErrUnfulfilled = errors.New("collection unfulfilled")

	// ErrDeadlineExceeded is returned when the timeout fired first.
	// It also matches context.DeadlineExceeded.
	ErrDeadlineExceeded = errors.New("collection deadline exceeded")

	// ErrInvalidTimeout is returned by WithTimeout for a non-positive duration.
	ErrInvalidTimeout = errors.New("invalid timeout")
)

// InvalidCountError reports a rejected count.
type InvalidCountError struct {
	Count int
}

func (e *InvalidCountError) Error() string {
	return fmt.Sprintf("received an invalid count: %d", e.Count)
}

func (e *InvalidCountError) Unwrap() error { return ErrInvalidCount }

// UnfulfilledError reports what was collected before the stream ended.
type UnfulfilledError struct {
	Collected []any
	Expected  int
}

func (e *UnfulfilledError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "interactor emitted %d domains, expected %d", len(e.Collected), e.Expected)
	for _, d := range e.Collected {
		fmt.Fprintf(&b, "\n\t%+v", d)
	}
	return b.String()
}

func (e *UnfulfilledError) Unwrap() error { return ErrUnfulfilled }

// DeadlineError reports a fired timeout. Collect also fills in how far
// collection got.
type DeadlineError struct {
	Timeout   time.Duration
	Collected int
	Expected  int
}

func (e *DeadlineError) Error() string {
	if e.Expected == 0 {
		return fmt.Sprintf("%v after %v", ErrDeadlineExceeded, e.Timeout)
	}
	return fmt.Sprintf("%v after %v: collected %d of %d domains", ErrDeadlineExceeded, e.Timeout, e.Collected, e.Expected)
}

func (e *DeadlineError) Unwrap() []error {
	return []error{ErrDeadlineExceeded, context.DeadlineExceeded}
}
