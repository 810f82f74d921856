// File: /services/errors.go
package services

import (
	"errors"
)

// Sentinel errors for the workflow and store layers. Controllers translate
// these to HTTP statuses with errors.Is; services wrap them with context via
// fmt.Errorf("%w: ...").
var (
	// ErrUnauthorized means the caller lacks the role or ownership required
	// for the attempted mutation.
	ErrUnauthorized = errors.New("not authorized")

	// ErrValidation means a required field is missing or malformed.
	ErrValidation = errors.New("validation failed")

	// ErrRateLimited means the daily submission cap was reached.
	ErrRateLimited = errors.New("daily limit exceeded")

	// ErrNotFound means the referenced request, edit or notification does
	// not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState means the operation is not valid for the record's
	// current status (e.g. deciding an already-decided request).
	ErrInvalidState = errors.New("invalid state")
)
