// Package client contains the console's transport layer and the local
// database bootstrap.
//
// # Overview
//
//  1. Client is the transport contract the API functions depend on.
//  2. HTTPClient implements it over net/http: base URL, a fixed timeout
//     (DefaultTimeout), the fixed "Authorization: Bearer <key>" header and an
//     X-Request-ID per call.
//  3. InitDatabase / RunMigrations open the SQLite session database and apply
//     the embedded goose migrations.
//
// # Error Handling
//
// Transport failures fall into three classes and nothing else:
//
//   - *ServerError: the server answered with status >= 400; carries the
//     status code and the body's "error" message.
//   - ErrNoResponse: nothing came back (network error, timeout, cancel).
//   - ErrRequestConstruction: the request could not be built.
//
// Callers match them with errors.As / errors.Is and never look at net/http
// internals.
package client
