package domain

import "errors"

// ErrInvalidArgument is returned when input is malformed and rejected before
// any persistence is attempted (e.g. a date range whose start is after its
// end, or a negative money amount).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrConflict is returned when a booking request loses the availability
// check, whether at the in-memory pre-check or at commit time via the
// database exclusion constraint. Both paths surface this same sentinel.
// Handlers should map this to HTTP 409 Conflict.
var ErrConflict = errors.New("conflict")

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrInvalidOperation is returned when an operation is not legal in the
// current state: an illegal booking status transition, or adding money
// across currencies.
// Handlers should map this to HTTP 409 Conflict with code "invalid_state".
var ErrInvalidOperation = errors.New("invalid operation")

// ErrPersistence wraps transaction and connection failures. The enclosing
// transaction has been rolled back by the time callers see this error; the
// core never retries on its own; retry policy belongs to the caller.
// Handlers should map this to HTTP 500.
var ErrPersistence = errors.New("persistence error")
