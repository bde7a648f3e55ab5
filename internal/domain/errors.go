package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404 (or 400 during name resolution).
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. empty product name, price outside its bounds).
// Handlers should map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when a write collides with existing data:
// a duplicate shop name, or an ambiguous name during resolution.
// Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrReference is returned when a supplied foreign id does not resolve,
// e.g. an entry update pointing at a shop that does not exist.
// Handlers should map this to HTTP 400.
var ErrReference = errors.New("unresolved reference")
