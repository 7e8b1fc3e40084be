package client

import (
	"errors"
	"fmt"
)

var (
	// ErrNoResponse means the request was sent but nothing came back:
	// connection failure, timeout or cancellation.
	ErrNoResponse = errors.New("no response from server")

	// ErrRequestConstruction means the request could not be built or sent.
	ErrRequestConstruction = errors.New("request construction failed")
)

// DefaultServerMessage is used when an error response carries no message.
const DefaultServerMessage = "Server returned an error"

// ServerError is returned when the server answered with an error status.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error %d: %s", e.StatusCode, e.Message)
}
