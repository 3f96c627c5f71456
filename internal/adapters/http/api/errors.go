package api

import (
	"errors"
	"fmt"

	"github.com/jmckinley/jumpstart/internal/adapters/repository"
	"github.com/jmckinley/jumpstart/internal/catalog"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest = errors.New("bad request")
	ErrNotFound   = errors.New("not found")
)

// NewKind tags a sentinel with the operation that raised it.
func NewKind(op string, kind error) error {
	return fmt.Errorf("%s: %w", op, kind)
}

// Wrap annotates an upstream error with the operation.
func Wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// WrapKind tags a sentinel and keeps the upstream cause.
func WrapKind(op string, kind, err error) error {
	return fmt.Errorf("%s: %w: %w", op, kind, err)
}

// statusFor translates upstream errors to HTTP statuses. Unknown errors
// fall through to 500.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return 404, "not_found"
	case errors.Is(err, repository.ErrDuplicateSlug), errors.Is(err, catalog.ErrDuplicateSlug):
		return 409, "duplicate_slug"
	case errors.Is(err, repository.ErrStoreFull):
		return 429, "store_full"
	case errors.Is(err, catalog.ErrUnknownKind),
		errors.Is(err, catalog.ErrInvalidItem),
		errors.Is(err, repository.ErrMissingID),
		errors.Is(err, ErrBadRequest):
		return 400, "bad_request"
	default:
		return 500, "internal_error"
	}
}
