package core

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated means no actor identity was supplied where one is
	// required. Always surfaced, never retried.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrForbidden means the actor is known but its role does not permit the
	// operation. Wrapped with a human-readable reason via Forbidden.
	ErrForbidden = errors.New("forbidden")

	// ErrNotYourResource means an owner-scoped check failed: the actor's role
	// would permit the operation, but the resource belongs to someone else.
	ErrNotYourResource = errors.New("resource does not belong to actor")

	// ErrNotFound means a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInsufficientFunds is a client-visible business failure returned by
	// the payments provider when a debit would overdraw the wallet.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Forbidden wraps ErrForbidden with the reason shown to the caller.
func Forbidden(reason string) error {
	return fmt.Errorf("%w: %s", ErrForbidden, reason)
}

// ForbiddenReason extracts the human-readable part of a Forbidden error.
func ForbiddenReason(err error) string {
	if !errors.Is(err, ErrForbidden) {
		return ""
	}
	msg := err.Error()
	prefix := ErrForbidden.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}
