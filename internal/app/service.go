// Package service provides the core business service that implements
// the dependencies required by the HTTP API: catalog access, project
// profile CRUD, and stack-aware recommendation ranking.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jmckinley/jumpstart/internal/adapters/repository"
	"github.com/jmckinley/jumpstart/internal/catalog"
	"github.com/jmckinley/jumpstart/internal/domain/profile"
	"github.com/jmckinley/jumpstart/internal/domain/ranking"
	"github.com/jmckinley/jumpstart/internal/domain/scoring"
	"github.com/jmckinley/jumpstart/internal/domain/tags"
	"github.com/jmckinley/jumpstart/pkg/logger"
	"github.com/jmckinley/jumpstart/pkg/metrics"
)

// Service wires the catalogs, the stores, and one ranker per catalog kind.
type Service struct {
	mu sync.RWMutex

	// Core components
	profiles repository.ProfileStore
	items    repository.ItemStore
	builtin  map[catalog.Kind][]catalog.Item
	rankers  map[catalog.Kind]*ranking.Ranker

	// Configuration
	mode           scoring.Mode
	templateCap    int
	teamCap        int
	catalogPath    string
	maxCustomItems int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithScoringMode selects the relevance regime for all rankers.
func WithScoringMode(m scoring.Mode) Option {
	return func(s *Service) {
		s.mode = m
	}
}

// WithTemplateCap overrides the prompt template recommendation cap.
func WithTemplateCap(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.templateCap = n
		}
	}
}

// WithTeamCap overrides the team composition recommendation cap.
func WithTeamCap(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.teamCap = n
		}
	}
}

// WithCatalogs injects catalogs directly, bypassing the embedded built-ins.
func WithCatalogs(catalogs map[catalog.Kind][]catalog.Item) Option {
	return func(s *Service) {
		s.builtin = catalogs
	}
}

// WithCatalogPath points at a YAML overlay merged after the built-ins.
func WithCatalogPath(path string) Option {
	return func(s *Service) {
		s.catalogPath = path
	}
}

// WithMaxCustomItems bounds user-created items per catalog kind.
func WithMaxCustomItems(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.maxCustomItems = n
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		mode:           scoring.ModeImproved,
		templateCap:    catalog.TemplateRecommendationCap,
		teamCap:        catalog.TeamRecommendationCap,
		maxCustomItems: 200,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the catalogs and initializes stores and rankers.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting recommendation service...")

	if s.builtin == nil {
		builtin, err := catalog.Builtin()
		if err != nil {
			return fmt.Errorf("load builtin catalogs: %w", err)
		}
		s.builtin = builtin
	}
	if s.catalogPath != "" {
		overlay, err := catalog.LoadFile(s.catalogPath)
		if err != nil {
			return fmt.Errorf("load catalog overlay: %w", err)
		}
		merged, err := catalog.Merge(s.builtin, overlay)
		if err != nil {
			return fmt.Errorf("merge catalog overlay: %w", err)
		}
		s.builtin = merged
	}

	s.profiles = repository.NewMemProfileStore()
	s.items = repository.NewMemItemStore(
		repository.WithMaxItems(s.maxCustomItems),
	)

	scorer := scoring.New(scoring.WithMode(s.mode))
	s.rankers = map[catalog.Kind]*ranking.Ranker{
		catalog.KindTemplate: ranking.New(ranking.WithScorer(scorer), ranking.WithCap(s.templateCap)),
		catalog.KindAgent:    ranking.New(ranking.WithScorer(scorer)),
		catalog.KindTeam:     ranking.New(ranking.WithScorer(scorer), ranking.WithCap(s.teamCap)),
	}

	for _, kind := range catalog.Kinds() {
		metrics.UpdateCatalogSize(string(kind), len(s.builtin[kind]))
	}

	s.started = true
	s.logger.Info(ctx, "recommendation service started",
		logger.String("scoringMode", s.mode.String()),
		logger.Int("templates", len(s.builtin[catalog.KindTemplate])),
		logger.Int("agents", len(s.builtin[catalog.KindAgent])),
		logger.Int("teams", len(s.builtin[catalog.KindTeam])),
	)
	return nil
}

// Stop shuts the service down. The stores are in-memory, so this only
// flips state.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "recommendation service stopped")
}

// Catalog returns one kind's full catalog: built-ins followed by
// user-created items.
func (s *Service) Catalog(ctx context.Context, kind catalog.Kind) []catalog.Item {
	s.mu.RLock()
	builtin := s.builtin[kind]
	s.mu.RUnlock()

	custom := s.items.List(ctx, kind)
	out := make([]catalog.Item, 0, len(builtin)+len(custom))
	out = append(out, builtin...)
	out = append(out, custom...)
	return out
}

// Recommendations ranks one kind's catalog against the identified project.
// An empty projectID ranks against no project: every non-universal item
// scores zero.
func (s *Service) Recommendations(ctx context.Context, kind catalog.Kind, projectID string) ([]ranking.ScoredItem, error) {
	var p *profile.Profile
	if projectID != "" {
		stored, err := s.profiles.Get(ctx, projectID)
		if err != nil {
			return nil, err
		}
		p = &stored
	}

	s.mu.RLock()
	ranker := s.rankers[kind]
	s.mu.RUnlock()
	if ranker == nil {
		return nil, fmt.Errorf("%w: %q", catalog.ErrUnknownKind, kind)
	}

	items := s.Catalog(ctx, kind)

	start := time.Now()
	scored := ranker.Rank(items, p)
	recommended := 0
	for _, si := range scored {
		if si.Recommended {
			recommended++
		}
	}
	metrics.RecordRanking(string(kind), len(scored), recommended, float64(time.Since(start).Microseconds())/1000.0)

	s.logger.Debug(ctx, "ranked catalog",
		logger.String("kind", string(kind)),
		logger.String("projectID", projectID),
		logger.Int("items", len(scored)),
		logger.Int("recommended", recommended),
	)
	return scored, nil
}

// ProjectTags returns the canonical tags extracted from a stored project.
func (s *Service) ProjectTags(ctx context.Context, projectID string) ([]tags.Tag, error) {
	p, err := s.profiles.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return profile.Extract(&p), nil
}

// SaveProject stores or replaces a project profile.
func (s *Service) SaveProject(ctx context.Context, p profile.Profile) error {
	return s.profiles.Put(ctx, p)
}

// GetProject returns a stored project profile.
func (s *Service) GetProject(ctx context.Context, id string) (profile.Profile, error) {
	return s.profiles.Get(ctx, id)
}

// DeleteProject removes a stored project profile.
func (s *Service) DeleteProject(ctx context.Context, id string) error {
	return s.profiles.Delete(ctx, id)
}

// CreateItem stores a user-created catalog item. Its slug must not collide
// with the built-in catalog of the same kind.
func (s *Service) CreateItem(ctx context.Context, kind catalog.Kind, item catalog.Item) (catalog.Item, error) {
	s.mu.RLock()
	builtin := s.builtin[kind]
	s.mu.RUnlock()
	for _, existing := range builtin {
		if existing.Slug != "" && existing.Slug == item.Slug {
			return catalog.Item{}, fmt.Errorf("%w: %s/%s", repository.ErrDuplicateSlug, kind, item.Slug)
		}
	}
	return s.items.Add(ctx, kind, item)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":     s.started,
		"scoringMode": s.mode.String(),
	}
	if s.started {
		stats["projects"] = s.profiles.Count(ctx)
		stats["customItems"] = s.items.Count(ctx)
		for _, kind := range catalog.Kinds() {
			stats[string(kind)+"Items"] = len(s.builtin[kind])
		}
	}
	return stats
}
