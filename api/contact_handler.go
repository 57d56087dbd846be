package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/taranjyot-singh/portfolio-backend/database"
	"github.com/taranjyot-singh/portfolio-backend/errs"
	"github.com/taranjyot-singh/portfolio-backend/models"
)

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	messages  contactStore
}

func newContactHandler(messages contactStore) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		messages:  messages,
	}
}

func (h contactHandler) submitMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.ContactMessageCreate
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact request body")
			h.responder.WriteError(w, errs.NewMalformedBodyError(err))
			return
		}

		if fields := models.Validate(input); len(fields) > 0 {
			h.responder.WriteError(w, errs.NewValidationError(fields))
			return
		}

		message := models.NewContactMessage(input)
		if err := h.messages.Add(r.Context(), &message); err != nil {
			h.responder.WriteError(w, errs.NewStorageError("create", "contact message", err))
			return
		}

		h.logger.Info().Str("email", message.Email).Msg("New contact message")
		h.responder.WriteJSON(w, http.StatusCreated, message)
	}
}

// listMessages returns messages newest-first, capped at ?limit= (default 100)
func (h contactHandler) listMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := int64(database.DefaultMessageLimit)
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || parsed <= 0 {
				h.responder.WriteError(w, errs.NewBadRequestError("invalid limit"))
				return
			}
			limit = parsed
		}

		messages, err := h.messages.FindAll(r.Context(), limit)
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("list", "contact messages", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, messages)
	}
}

// markMessageRead flips the read flag. An unknown id and an already-read
// message both report as not modified and map to 404.
func (h contactHandler) markMessageRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID := chi.URLParam(r, "messageID")
		if messageID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing messageID"))
			return
		}

		modified, err := h.messages.MarkRead(r.Context(), messageID)
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("update", "contact message", err))
			return
		}
		if !modified {
			h.responder.WriteError(w, errs.NewNotFound("message"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]string{
			"status":  "success",
			"message": "message marked as read",
		})
	}
}
