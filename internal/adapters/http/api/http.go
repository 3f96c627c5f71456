// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jmckinley/jumpstart/internal/catalog"
	"github.com/jmckinley/jumpstart/internal/domain/profile"
	"github.com/jmckinley/jumpstart/internal/domain/ranking"
	"github.com/jmckinley/jumpstart/internal/domain/tags"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Catalog and recommendation reads.
	Catalog(ctx context.Context, kind catalog.Kind) []catalog.Item
	Recommendations(ctx context.Context, kind catalog.Kind, projectID string) ([]ranking.ScoredItem, error)

	// User-created catalog items.
	CreateItem(ctx context.Context, kind catalog.Kind, item catalog.Item) (catalog.Item, error)

	// Project profile CRUD.
	SaveProject(ctx context.Context, p profile.Profile) error
	GetProject(ctx context.Context, id string) (profile.Profile, error)
	DeleteProject(ctx context.Context, id string) error
	ProjectTags(ctx context.Context, id string) ([]tags.Tag, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler          *HealthHandler
	statsHandler           *StatsHandler
	recommendationsHandler *RecommendationsHandler
	catalogHandler         *CatalogHandler
	projectsHandler        *ProjectsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:          NewHealthHandler(),
		statsHandler:           NewStatsHandler(statsProvider),
		recommendationsHandler: NewRecommendationsHandler(deps),
		catalogHandler:         NewCatalogHandler(deps),
		projectsHandler:        NewProjectsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/recommendations/", MetricsMiddleware(s.recommendationsHandler.HandleGetRecommendations, "recommendations"))
	mux.HandleFunc("/catalog/", MetricsMiddleware(s.catalogHandler.HandleCatalog, "catalog"))
	mux.HandleFunc("/projects/", MetricsMiddleware(s.projectsHandler.HandleProject, "projects"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
