package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/taranjyot-singh/portfolio-backend/errs"
	"github.com/taranjyot-singh/portfolio-backend/models"
)

type skillHandler struct {
	responder Responder
	logger    zerolog.Logger
	skills    skillStore
}

func newSkillHandler(skills skillStore) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder: NewResponder(logger),
		logger:    logger,
		skills:    skills,
	}
}

func (h skillHandler) listSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := h.skills.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("list", "skills", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, skills)
	}
}

// createSkillCategory inserts unconditionally; only the upsert route keeps
// categories unique
func (h skillHandler) createSkillCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.SkillCreate
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode skill request body")
			h.responder.WriteError(w, errs.NewMalformedBodyError(err))
			return
		}

		if fields := models.Validate(input); len(fields) > 0 {
			h.responder.WriteError(w, errs.NewValidationError(fields))
			return
		}

		skill := models.NewSkill(input)
		if err := h.skills.Add(r.Context(), &skill); err != nil {
			h.responder.WriteError(w, errs.NewStorageError("create", "skill category", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, skill)
	}
}

// upsertSkillCategory replaces the skill list for the category in the URL.
// The body is a bare JSON array of strings.
func (h skillHandler) upsertSkillCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := chi.URLParam(r, "category")
		if category == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing category"))
			return
		}

		var skills []string
		if err := json.NewDecoder(r.Body).Decode(&skills); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode skills request body")
			h.responder.WriteError(w, errs.NewMalformedBodyError(err))
			return
		}

		skill, err := h.skills.UpsertByCategory(r.Context(), category, skills)
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("upsert", "skill category", err))
			return
		}
		if skill == nil {
			h.responder.WriteError(w, errs.NewNotFound("skill category"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, skill)
	}
}
