// Package errs defines the error shapes returned to API clients.
//
// Handlers and services return *HTTPError values (or plain errors that the
// global error handler converts) so every failure reaches the client as the
// same JSON document: a machine-readable code, a message, the status and
// optional field errors.
package errs
