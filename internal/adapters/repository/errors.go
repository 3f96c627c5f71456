package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrNotFound      = errors.New("record not found")
	ErrDuplicateSlug = errors.New("duplicate slug")
	ErrStoreFull     = errors.New("store is full")
	ErrMissingID     = errors.New("missing project id")
)
