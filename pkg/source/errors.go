package source

import "errors"

var (
	ErrEmptyPayload      = errors.New("source: document is empty")
	ErrInvalidDocument   = errors.New("source: invalid translation document")
	ErrUnsupportedFormat = errors.New("source: unsupported document format")
	ErrUnexpectedStatus  = errors.New("source: unexpected HTTP status")
	ErrObjectNotFound    = errors.New("source: object not found")
	ErrEmptyBucket       = errors.New("source: bucket cannot be empty")
	ErrNilPool           = errors.New("source: connection pool cannot be nil")
	ErrNilClient         = errors.New("source: client cannot be nil")
	ErrApplyMigrations   = errors.New("source: failed to apply migrations")
)
