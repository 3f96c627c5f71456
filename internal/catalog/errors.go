package catalog

import "errors"

// Sentinel error kinds for catalog loading and validation.
var (
	ErrUnknownKind   = errors.New("unknown catalog kind")
	ErrInvalidItem   = errors.New("invalid catalog item")
	ErrDuplicateSlug = errors.New("duplicate catalog slug")
)
