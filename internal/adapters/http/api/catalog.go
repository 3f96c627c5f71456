// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jmckinley/jumpstart/internal/catalog"
)

// CatalogHandler handles catalog listing and user-created item requests.
type CatalogHandler struct {
	deps Dependencies
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(deps Dependencies) *CatalogHandler {
	return &CatalogHandler{deps: deps}
}

// HandleCatalog routes GET /catalog/{kind} and POST /catalog/{kind}/items.
func (h *CatalogHandler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	const op = "api.catalog"
	path := strings.TrimPrefix(r.URL.Path, "/catalog/")
	kindPart, rest, _ := strings.Cut(path, "/")
	kind, err := catalog.ParseKind(kindPart)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	switch {
	case rest == "" && r.Method == http.MethodGet:
		writeJSON(w, http.StatusOK, h.deps.Catalog(r.Context(), kind))
	case rest == "items" && r.Method == http.MethodPost:
		h.handleCreateItem(w, r, kind)
	default:
		http.NotFound(w, r)
	}
}

func (h *CatalogHandler) handleCreateItem(w http.ResponseWriter, r *http.Request, kind catalog.Kind) {
	const op = "api.create_item"
	var item catalog.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	stored, err := h.deps.CreateItem(r.Context(), kind, item)
	if err != nil {
		status, code := statusFor(err)
		writeError(w, status, code, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusCreated, stored)
}
