package api

import (
	"errors"

	"github.com/dmitrijs2005/userconsole/internal/client/client"
)

// Messages shown to the user for the transport failure classes.
const (
	MsgNoResponse   = "No response from the server. Please try again later."
	MsgUnexpected   = "An unexpected error occurred. Please try again."
	MsgNoData       = "No data received from server"
	MsgServerFailed = client.DefaultServerMessage
)

// Failure is the error shape every API function returns instead of a Go
// error. StatusCode is zero when no response was received.
type Failure struct {
	Message    string
	StatusCode int
}

// Result is the tagged outcome of an API call: exactly one of Data and Err
// is meaningful. Err == nil means success.
type Result[T any] struct {
	Data T
	Err  *Failure
}

// OK reports whether the call succeeded.
func (r Result[T]) OK() bool { return r.Err == nil }

func success[T any](v T) Result[T] {
	return Result[T]{Data: v}
}

func failed[T any](f *Failure) Result[T] {
	return Result[T]{Err: f}
}

// failureFrom classifies a transport error into a Failure.
func failureFrom(err error) *Failure {
	var se *client.ServerError
	switch {
	case errors.As(err, &se):
		msg := se.Message
		if msg == "" {
			msg = MsgServerFailed
		}
		return &Failure{Message: msg, StatusCode: se.StatusCode}
	case errors.Is(err, client.ErrNoResponse):
		return &Failure{Message: MsgNoResponse}
	default:
		return &Failure{Message: MsgUnexpected}
	}
}
