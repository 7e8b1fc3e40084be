// Package common contains constants and small helpers shared by the console
// and the development API.
package common

const (
	// AuthorizationHeader carries the fixed "Bearer <key>" API credential.
	AuthorizationHeader = "Authorization"
	// RequestIDHeader correlates a console request with server logs.
	RequestIDHeader = "X-Request-ID"

	BearerPrefix = "Bearer "
)
