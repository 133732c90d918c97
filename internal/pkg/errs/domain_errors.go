package errs

import "errors"

// Error kinds surfaced by the reservation engine. Use cases attach them with Mark
// so handlers can branch with errors.Is while the cause stays in the chain.
var (
	ErrInvalidDateRange       = errors.New("invalid date range")
	ErrSoldOut                = errors.New("room type sold out for the requested dates")
	ErrDependencyFailed       = errors.New("dependency failed")
	ErrPaymentFailed          = errors.New("payment failed")
	ErrUnknownOrder           = errors.New("unknown order")
	ErrConcurrentModification = errors.New("concurrent modification")

	ErrInvalidTransition = errors.New("invalid reservation state transition")
	ErrInvalidSignature  = errors.New("invalid gateway signature")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")

	// Idempotency errors
	ErrIdempotencyKeyRequired = errors.New("idempotency key required")
	ErrIdempotencyInProgress  = errors.New("idempotency in progress")
	ErrIdempotencyKeyReused   = errors.New("idempotency key reused with a different request")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
