package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist, or exists but is not visible to the caller.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails a required-field or format
// check (e.g. missing title, rating outside 1-5, unknown status).
// Handlers should map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned by repo functions when a uniqueness constraint is
// violated (duplicate slug, e-mail or page key). The existing row is never
// overwritten. Handlers should map this to HTTP 400 with an "already exists" message.
var ErrConflict = errors.New("already exists")

// ErrUnauthorized means the caller could not be identified: missing or
// invalid token, wrong credentials, expired one-time code.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden means the caller is known but lacks the admin role.
var ErrForbidden = errors.New("forbidden")

// ErrRateLimited is returned when a client has exceeded the allowed number of
// public submissions in the current window. Handlers should map this to HTTP 429.
var ErrRateLimited = errors.New("too many requests")
