package classify

import "errors"

var (
	// ErrClassifierDisabled indicates the remote classifier is not
	// configured; callers fall back to the deterministic result.
	ErrClassifierDisabled = errors.New("remote classifier disabled")

	// ErrInvalidResponse indicates the remote response could not be
	// parsed into a domain-to-category mapping.
	ErrInvalidResponse = errors.New("invalid classifier response")
)
