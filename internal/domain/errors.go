package domain

import "errors"

// ErrNotFound is returned by store and service functions when the requested
// record does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when caller-supplied input fails a precondition
// (e.g. empty city, non-numeric coordinates, oversized search term).
// Handlers should map this to HTTP 400 with the wrapped message.
var ErrValidation = errors.New("validation error")

// ErrRemote is returned by a provider client when the external service was
// reached but answered with a non-2xx status or an application-level error
// payload. Handlers should map this to HTTP 502.
// Plain network failures are NOT wrapped in ErrRemote — they propagate
// unchanged as the underlying transport error.
var ErrRemote = errors.New("remote service error")
