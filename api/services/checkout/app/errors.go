package app

import "errors"

// Typed errors for the checkout app layer. These enable HTTP mapping without
// relying on SDK-specific error types at the transport layer.
var (

	// ErrInvalidPlan indicates the requested plan id is not in the catalog.
	ErrInvalidPlan = errors.New("invalid plan")
	// ErrBadSignature indicates webhook signature verification failed.
	ErrBadSignature = errors.New("invalid signature")
	// ErrBadEvent indicates the incoming event payload is invalid or missing required fields.
	ErrBadEvent = errors.New("bad event")
	// ErrGateway indicates a failure from the Stripe gateway / API calls.
	ErrGateway = errors.New("gateway error")
	// ErrNotFound indicates the requested resource does not exist at the provider.
	ErrNotFound = errors.New("not found")
)
