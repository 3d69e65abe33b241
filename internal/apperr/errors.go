package apperr

import "errors"

// ErrInvalidInput is returned when a domain, record type or flag value fails
// validation at the boundary, before any query is scheduled.
var ErrInvalidInput = errors.New("invalid input")

// ErrResolverUnavailable is returned when the external resolver binary cannot be
// found. It is fatal for the whole run and is checked once, before enumeration.
var ErrResolverUnavailable = errors.New("resolver unavailable")

// ErrQueryFailed is returned by a resolver runner when the resolver process
// exits with a non-zero status.
var ErrQueryFailed = errors.New("query failed")

// ErrQueryTimeout is returned by a resolver runner when the process did not
// finish within its timeout. Callers treat it exactly like "no record".
var ErrQueryTimeout = errors.New("query timed out")

// ErrUnknownRecordType is returned when a record type mnemonic is not known.
var ErrUnknownRecordType = errors.New("unknown record type")

// ErrCustomFileUnreadable wraps failures to open or read a custom subdomain list.
// It is only ever logged as a warning.
var ErrCustomFileUnreadable = errors.New("custom subdomain file unreadable")
