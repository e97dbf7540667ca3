// Package client talks to the expenzo HTTP API.
//
// # Overview
//
// The Client interface is the transport contract used by the CLI: signup,
// login, and the token-protected expense and product calls. HTTPClient
// implements it over net/http, sending "Authorization: Bearer <token>" on
// protected calls.
//
// # Error Handling
//
// Transport failures (connection refused, timeouts) wrap ErrUnavailable.
// Non-2xx answers are returned as *APIError carrying the server's message;
// a 403 additionally matches ErrUnauthorized via errors.Is, which callers
// treat as a rejected token.
package client
