package errors

import "errors"

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is a generic sentinel for auth failures.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidEmotionReading marks an emotion name outside the taxonomy or
	// a score outside [0,10]. Raised at ingestion; analytics assumes valid
	// input but fails with this sentinel rather than coercing bad data.
	ErrInvalidEmotionReading = errors.New("invalid emotion reading")
	// ErrDataUnavailable marks a failed read from the study log store.
	// Propagated as-is; retries belong to the caller.
	ErrDataUnavailable = errors.New("study log data unavailable")
)
