package domain

import "errors"

// Domain errors. The webapi layer maps these onto HTTP status codes.
var (
	// ErrAccountNotFound is returned when an account is absent or soft-deleted.
	ErrAccountNotFound = errors.New("account not found")
	// ErrCardNotFound is returned when a card is absent or soft-deleted.
	ErrCardNotFound = errors.New("card not found")
	// ErrOperationNotFound is returned when an operation is absent or soft-deleted.
	ErrOperationNotFound = errors.New("operation not found")
	// ErrAccessDenied is returned when the caller's role or ownership token
	// does not permit the request, even if the target record exists.
	ErrAccessDenied = errors.New("access denied")
	// ErrCardBlocked is returned when mutating a blocked card.
	ErrCardBlocked = errors.New("card blocked")
	// ErrCardExpired is returned when mutating an expired card.
	ErrCardExpired = errors.New("card expired")
	// ErrOperationConfirmed is returned when mutating or deleting a confirmed
	// operation, or confirming it a second time.
	ErrOperationConfirmed = errors.New("operation already confirmed")
	// ErrUnknownRole is returned when a role label is outside the closed set.
	ErrUnknownRole = errors.New("unknown role")
)
