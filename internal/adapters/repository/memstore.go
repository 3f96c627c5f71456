package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/jmckinley/jumpstart/internal/catalog"
	"github.com/jmckinley/jumpstart/internal/domain/profile"
	"github.com/jmckinley/jumpstart/pkg/metrics"
)

// MemProfileStore is an in-memory, RWMutex-guarded ProfileStore.
type MemProfileStore struct {
	mu       sync.RWMutex
	profiles map[string]profile.Profile
}

// NewMemProfileStore creates an empty in-memory profile store.
func NewMemProfileStore() *MemProfileStore {
	return &MemProfileStore{
		profiles: make(map[string]profile.Profile),
	}
}

// Put stores or replaces a profile under its ProjectID.
func (s *MemProfileStore) Put(_ context.Context, p profile.Profile) error {
	if p.ProjectID == "" {
		return ErrMissingID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.ProjectID] = p
	metrics.UpdateProjectsTracked(len(s.profiles))
	return nil
}

// Get returns the profile for id, or ErrNotFound.
func (s *MemProfileStore) Get(_ context.Context, id string) (profile.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[id]
	if !ok {
		return profile.Profile{}, fmt.Errorf("%w: project %s", ErrNotFound, id)
	}
	return p, nil
}

// Delete removes the profile for id, or returns ErrNotFound.
func (s *MemProfileStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[id]; !ok {
		return fmt.Errorf("%w: project %s", ErrNotFound, id)
	}
	delete(s.profiles, id)
	metrics.UpdateProjectsTracked(len(s.profiles))
	return nil
}

// Count returns the number of stored profiles.
func (s *MemProfileStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.profiles)
}

// MemItemStore is an in-memory, RWMutex-guarded ItemStore. Each kind keeps
// insertion order so ranking input stays deterministic.
type MemItemStore struct {
	mu       sync.RWMutex
	items    map[catalog.Kind][]catalog.Item
	maxItems int
	total    int
}

// ItemOption applies a configuration option to the MemItemStore.
type ItemOption func(*MemItemStore)

// WithMaxItems bounds the items stored per kind. Zero means unbounded.
func WithMaxItems(n int) ItemOption {
	return func(s *MemItemStore) {
		if n >= 0 {
			s.maxItems = n
		}
	}
}

// NewMemItemStore creates an empty in-memory item store.
func NewMemItemStore(opts ...ItemOption) *MemItemStore {
	s := &MemItemStore{
		items: make(map[catalog.Kind][]catalog.Item),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add stores a new item under kind. A missing slug gets a generated one;
// duplicate slugs within the kind are rejected.
func (s *MemItemStore) Add(_ context.Context, kind catalog.Kind, item catalog.Item) (catalog.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxItems > 0 && len(s.items[kind]) >= s.maxItems {
		return catalog.Item{}, fmt.Errorf("%w: %s catalog", ErrStoreFull, kind)
	}
	if item.Slug == "" {
		item.Slug = uuid.NewString()
	}
	for _, existing := range s.items[kind] {
		if existing.Slug == item.Slug {
			return catalog.Item{}, fmt.Errorf("%w: %s/%s", ErrDuplicateSlug, kind, item.Slug)
		}
	}
	if err := item.Validate(); err != nil {
		return catalog.Item{}, err
	}

	s.items[kind] = append(s.items[kind], item)
	s.total++
	metrics.UpdateCustomItems(s.total)
	return item, nil
}

// List returns a copy of the items of one kind in insertion order.
func (s *MemItemStore) List(_ context.Context, kind catalog.Kind) []catalog.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]catalog.Item, len(s.items[kind]))
	copy(out, s.items[kind])
	return out
}

// Remove deletes an item by slug, or returns ErrNotFound.
func (s *MemItemStore) Remove(_ context.Context, kind catalog.Kind, slug string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.items[kind]
	for i, item := range items {
		if item.Slug == slug {
			s.items[kind] = append(items[:i:i], items[i+1:]...)
			s.total--
			metrics.UpdateCustomItems(s.total)
			return nil
		}
	}
	return fmt.Errorf("%w: %s/%s", ErrNotFound, kind, slug)
}

// Count returns the total number of stored items across kinds.
func (s *MemItemStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.total
}
