package domain

// StatusState enumerates the phases of a Status.
type StatusState string

const (
	StatusLoading StatusState = "loading"
	StatusLoaded  StatusState = "loaded"
	StatusError   StatusState = "error"
)

// Status represents a value that is loading, loaded, or failed to load.
// The zero value is a loading Status.
type Status[T any] struct {
	State   StatusState `json:"state"`
	Value   T           `json:"value,omitempty"`
	Message string      `json:"message,omitempty"` // Optional, only meaningful for StatusError
}

// Loading returns a Status still waiting for its value.
func Loading[T any]() Status[T] {
	return Status[T]{State: StatusLoading}
}

// Loaded returns a Status holding v.
func Loaded[T any](v T) Status[T] {
	return Status[T]{State: StatusLoaded, Value: v}
}

// Failed returns an error Status. msg may be empty.
func Failed[T any](msg string) Status[T] {
	return Status[T]{State: StatusError, Message: msg}
}

func (s Status[T]) IsLoading() bool { return s.State == StatusLoading || s.State == "" }
func (s Status[T]) IsLoaded() bool  { return s.State == StatusLoaded }
func (s Status[T]) IsError() bool   { return s.State == StatusError }

// Get returns the loaded value and whether the Status is loaded.
func (s Status[T]) Get() (T, bool) {
	if s.State != StatusLoaded {
		var zero T
		return zero, false
	}
	return s.Value, true
}
