package client

import (
	"context"
	"net/url"
)

// Request describes one call to the user-management API. Path is relative
// to the configured base URL. Body, when set, is sent as JSON.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

// Client is the transport used by the API functions.
//
// Do sends r and decodes a successful JSON body into out (which may be nil).
// Failures are one of *ServerError, ErrNoResponse or ErrRequestConstruction,
// matched with errors.As / errors.Is.
type Client interface {
	Do(ctx context.Context, r Request, out any) error
}
