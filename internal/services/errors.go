package services

import "errors"

// Error kinds surfaced to the HTTP layer. Handlers map these to
// status codes with errors.Is; services wrap them with context via
// fmt.Errorf("%w: ...").
var (
	// ErrValidation covers missing or malformed input.
	ErrValidation = errors.New("invalid data")
	// ErrAuth covers bad credentials and bad tokens.
	ErrAuth = errors.New("invalid credentials")
	// ErrNotFound deliberately conflates "does not exist" with "not
	// yours" so callers cannot probe for election existence.
	ErrNotFound = errors.New("not found or unauthorized")
	// ErrConflict covers duplicate email, duplicate ballot and
	// already-built elections.
	ErrConflict = errors.New("conflict")
	// ErrEnded rejects previewing an election past its end date.
	ErrEnded = errors.New("election has ended")
)
