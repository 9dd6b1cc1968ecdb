package contract

import "errors"

var (
	// Configuration errors: fatal, surfaced immediately, never retried.
	ErrUnknownModel     = errors.New("unknown model id")
	ErrNoAvailableModel = errors.New("no available model candidate")

	// ErrUpstreamModel wraps a failure from the single model attempt inside
	// Submit. No fallback substitution happens mid-session.
	ErrUpstreamModel = errors.New("upstream model invoke failed")

	ErrSchemaViolation = errors.New("model response violates schema")
	ErrPromptMissing   = errors.New("required prompt is missing")
	ErrValidation      = errors.New("validation failed")

	// ErrBundleBusy is returned when Submit is called while a previous call
	// on the same bundle is still in flight. Bundles are single-session.
	ErrBundleBusy = errors.New("bundle has a call in flight")
)
