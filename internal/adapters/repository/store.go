// Package repository provides the stores standing in for the host
// application's persistence layer: project profiles and user-created
// catalog items. The ranking engine itself never touches these; it only
// receives their contents as arguments.
package repository

import (
	"context"

	"github.com/jmckinley/jumpstart/internal/catalog"
	"github.com/jmckinley/jumpstart/internal/domain/profile"
)

// ProfileStore holds project profiles keyed by project ID.
type ProfileStore interface {
	// Put stores or replaces a profile under its ProjectID.
	Put(ctx context.Context, p profile.Profile) error

	// Get returns the profile for id, or ErrNotFound.
	Get(ctx context.Context, id string) (profile.Profile, error)

	// Delete removes the profile for id, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error

	// Count returns the number of stored profiles.
	Count(ctx context.Context) int
}

// ItemStore holds user-created catalog items per kind, appended after the
// built-in catalogs when ranking.
type ItemStore interface {
	// Add stores a new item under kind, generating a slug when the item
	// carries none. Returns the stored item or ErrDuplicateSlug.
	Add(ctx context.Context, kind catalog.Kind, item catalog.Item) (catalog.Item, error)

	// List returns the items of one kind in insertion order.
	List(ctx context.Context, kind catalog.Kind) []catalog.Item

	// Remove deletes an item by slug, or returns ErrNotFound.
	Remove(ctx context.Context, kind catalog.Kind, slug string) error

	// Count returns the total number of stored items across kinds.
	Count(ctx context.Context) int
}
