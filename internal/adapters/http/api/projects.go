// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jmckinley/jumpstart/internal/domain/profile"
)

// ProjectsHandler handles project profile CRUD requests.
type ProjectsHandler struct {
	deps Dependencies
}

// NewProjectsHandler creates a new projects handler.
func NewProjectsHandler(deps Dependencies) *ProjectsHandler {
	return &ProjectsHandler{deps: deps}
}

// HandleProject routes PUT/GET/DELETE /projects/{id} and
// GET /projects/{id}/tags.
func (h *ProjectsHandler) HandleProject(w http.ResponseWriter, r *http.Request) {
	const op = "api.projects"
	path := strings.TrimPrefix(r.URL.Path, "/projects/")
	id, rest, _ := strings.Cut(path, "/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	switch {
	case rest == "tags" && r.Method == http.MethodGet:
		h.handleTags(w, r, id)
	case rest != "":
		http.NotFound(w, r)
	case r.Method == http.MethodPut:
		h.handlePut(w, r, id)
	case r.Method == http.MethodGet:
		h.handleGet(w, r, id)
	case r.Method == http.MethodDelete:
		h.handleDelete(w, r, id)
	default:
		http.NotFound(w, r)
	}
}

func (h *ProjectsHandler) handlePut(w http.ResponseWriter, r *http.Request, id string) {
	const op = "api.put_project"
	var p profile.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	// The path segment is authoritative for identity.
	p.ProjectID = id
	if err := h.deps.SaveProject(r.Context(), p); err != nil {
		status, code := statusFor(err)
		writeError(w, status, code, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProjectsHandler) handleGet(w http.ResponseWriter, r *http.Request, id string) {
	const op = "api.get_project"
	p, err := h.deps.GetProject(r.Context(), id)
	if err != nil {
		status, code := statusFor(err)
		writeError(w, status, code, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *ProjectsHandler) handleDelete(w http.ResponseWriter, r *http.Request, id string) {
	const op = "api.delete_project"
	if err := h.deps.DeleteProject(r.Context(), id); err != nil {
		status, code := statusFor(err)
		writeError(w, status, code, Wrap(op, err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProjectsHandler) handleTags(w http.ResponseWriter, r *http.Request, id string) {
	const op = "api.project_tags"
	extracted, err := h.deps.ProjectTags(r.Context(), id)
	if err != nil {
		status, code := statusFor(err)
		writeError(w, status, code, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, extracted)
}
