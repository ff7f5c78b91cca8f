package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrMissingColumn     = errors.New("missing column")
	ErrInsufficientRows  = errors.New("insufficient rows")
	ErrUnsupportedFormat = errors.New("unsupported format")
)
