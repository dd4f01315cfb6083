package api

import (
	"net/http"

	"github.com/pranavratheesh/portfolio-backend/database"
	"github.com/pranavratheesh/portfolio-backend/models"
	"github.com/pranavratheesh/portfolio-backend/validation"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contactHandler struct {
	responder          Responder
	logger             zerolog.Logger
	contactMessageRepo *database.ContactMessageRepo
}

func newContactHandler(contactMessageRepo *database.ContactMessageRepo) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:          NewResponder(logger),
		logger:             logger,
		contactMessageRepo: contactMessageRepo,
	}
}

// submitContactMessage is the public contact form endpoint. The message is
// validated before it reaches the store; nothing is committed on rejection.
func (h contactHandler) submitContactMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var message models.ContactMessage
		if err := decodeJSON(r, &message); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := validation.ValidateContactMessage(&message); err != nil {
			h.responder.WriteError(w, asValidationError(err))
			return
		}

		if err := h.contactMessageRepo.Add(&message); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "contact message", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, message)
	}
}

// getAllContactMessages lists received messages for the admin screens
func (h contactHandler) getAllContactMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := h.contactMessageRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact messages", err))
			return
		}

		h.responder.WriteJSON(w, messages)
	}
}

// deleteContactMessage removes a handled message
func (h contactHandler) deleteContactMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID, err := parseID(r, "messageID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.contactMessageRepo.Delete(messageID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "contact message", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "contact message deleted successfully",
		})
	}
}
