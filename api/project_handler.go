package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/taranjyot-singh/portfolio-backend/errs"
	"github.com/taranjyot-singh/portfolio-backend/models"
)

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	projects  projectStore
}

func newProjectHandler(projects projectStore) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		projects:  projects,
	}
}

// listProjects returns all projects newest-first, or only featured ones when
// ?featured= parses as true
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		featuredOnly, _ := strconv.ParseBool(r.URL.Query().Get("featured"))

		projects, err := h.projects.FindAll(r.Context(), featuredOnly)
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("list", "projects", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, projects)
	}
}

func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")
		if projectID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
			return
		}

		project, err := h.projects.FindByID(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, project)
	}
}

func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.ProjectCreate
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewMalformedBodyError(err))
			return
		}

		if fields := models.Validate(input); len(fields) > 0 {
			h.responder.WriteError(w, errs.NewValidationError(fields))
			return
		}

		project := models.NewProject(input)
		if err := h.projects.Add(r.Context(), &project); err != nil {
			h.responder.WriteError(w, errs.NewStorageError("create", "project", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, project)
	}
}

func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")
		if projectID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
			return
		}

		var input models.ProjectUpdate
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewMalformedBodyError(err))
			return
		}

		if fields := models.Validate(input); len(fields) > 0 {
			h.responder.WriteError(w, errs.NewValidationError(fields))
			return
		}

		project, err := h.projects.Update(r.Context(), projectID, input)
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("update", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, project)
	}
}

func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")
		if projectID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
			return
		}

		removed, err := h.projects.Delete(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("delete", "project", err))
			return
		}
		if !removed {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}
