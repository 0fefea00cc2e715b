// Package handler is the HTTP entry point for business logic after the
// router.
//
// Handlers bind and validate requests through the validation package, call
// the service layer and write the response.
package handler
