package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/taranjyot-singh/portfolio-backend/errs"
	"github.com/taranjyot-singh/portfolio-backend/models"
)

type biographyHandler struct {
	responder Responder
	logger    zerolog.Logger
	biography biographyStore
}

func newBiographyHandler(biography biographyStore) biographyHandler {
	logger := log.With().Str("handlerName", "biographyHandler").Logger()

	return biographyHandler{
		responder: NewResponder(logger),
		logger:    logger,
		biography: biography,
	}
}

func (h biographyHandler) getBiography() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bio, err := h.biography.Find(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("find", "biography", err))
			return
		}
		if bio == nil {
			h.responder.WriteError(w, errs.NewNotFound("biography"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, bio)
	}
}

// upsertBiography creates the singleton on first use and overwrites its
// content afterwards, keeping the original id
func (h biographyHandler) upsertBiography() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.BiographyCreate
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode biography request body")
			h.responder.WriteError(w, errs.NewMalformedBodyError(err))
			return
		}

		if fields := models.Validate(input); len(fields) > 0 {
			h.responder.WriteError(w, errs.NewValidationError(fields))
			return
		}

		bio, err := h.biography.Upsert(r.Context(), input.Content)
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("upsert", "biography", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, bio)
	}
}
