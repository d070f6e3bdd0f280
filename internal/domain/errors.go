package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrNoCredits is returned when a user has no remaining restyle credits
	ErrNoCredits = errors.New("no restyle credits remaining")

	// ErrUserNotFound is returned when a user has no ledger entry and the
	// ledger is configured without a starting balance
	ErrUserNotFound = errors.New("user not found in credit ledger")

	// ErrProviderFailure is returned when the image transformation provider
	// request fails
	ErrProviderFailure = errors.New("image provider request failed")

	// ErrProviderDisabled is returned when no provider API key is configured
	ErrProviderDisabled = errors.New("image provider disabled")
)
