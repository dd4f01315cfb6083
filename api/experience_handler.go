package api

import (
	"net/http"

	"github.com/pranavratheesh/portfolio-backend/database"
	"github.com/pranavratheesh/portfolio-backend/models"
	"github.com/pranavratheesh/portfolio-backend/validation"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type experienceHandler struct {
	responder      Responder
	logger         zerolog.Logger
	experienceRepo *database.ExperienceRepo
}

func newExperienceHandler(experienceRepo *database.ExperienceRepo) experienceHandler {
	logger := log.With().Str("handlerName", "experienceHandler").Logger()

	return experienceHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		experienceRepo: experienceRepo,
	}
}

// getAllExperiences lists experiences newest first
func (h experienceHandler) getAllExperiences() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experiences, err := h.experienceRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "experiences", err))
			return
		}

		h.responder.WriteJSON(w, experiences)
	}
}

// createExperience validates and inserts an experience entry
func (h experienceHandler) createExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var experience models.Experience
		if err := decodeJSON(r, &experience); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := validation.ValidateExperience(&experience); err != nil {
			h.responder.WriteError(w, asValidationError(err))
			return
		}

		if err := h.experienceRepo.Add(&experience); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "experience", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, experience)
	}
}

// updateExperience validates and saves an existing experience entry
func (h experienceHandler) updateExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experienceID, err := parseID(r, "experienceID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var experience models.Experience
		if err := decodeJSON(r, &experience); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := validation.ValidateExperience(&experience); err != nil {
			h.responder.WriteError(w, asValidationError(err))
			return
		}

		experience.ID = experienceID

		if err := h.experienceRepo.Update(&experience); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "experience", err))
			return
		}

		h.responder.WriteJSON(w, experience)
	}
}

// deleteExperience removes an experience entry
func (h experienceHandler) deleteExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experienceID, err := parseID(r, "experienceID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.experienceRepo.Delete(experienceID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "experience", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "experience deleted successfully",
		})
	}
}
