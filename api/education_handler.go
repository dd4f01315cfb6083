package api

import (
	"net/http"

	"github.com/pranavratheesh/portfolio-backend/database"
	"github.com/pranavratheesh/portfolio-backend/models"
	"github.com/pranavratheesh/portfolio-backend/validation"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type educationHandler struct {
	responder     Responder
	logger        zerolog.Logger
	educationRepo *database.EducationRepo
}

func newEducationHandler(educationRepo *database.EducationRepo) educationHandler {
	logger := log.With().Str("handlerName", "educationHandler").Logger()

	return educationHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		educationRepo: educationRepo,
	}
}

// getAllEducation lists education entries
func (h educationHandler) getAllEducation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		education, err := h.educationRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "education", err))
			return
		}

		h.responder.WriteJSON(w, education)
	}
}

// createEducation validates and inserts an education entry
func (h educationHandler) createEducation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var education models.Education
		if err := decodeJSON(r, &education); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := validation.ValidateEducation(&education); err != nil {
			h.responder.WriteError(w, asValidationError(err))
			return
		}

		if err := h.educationRepo.Add(&education); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "education", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, education)
	}
}

// updateEducation validates and saves an existing education entry
func (h educationHandler) updateEducation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		educationID, err := parseID(r, "educationID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var education models.Education
		if err := decodeJSON(r, &education); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := validation.ValidateEducation(&education); err != nil {
			h.responder.WriteError(w, asValidationError(err))
			return
		}

		education.ID = educationID

		if err := h.educationRepo.Update(&education); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "education", err))
			return
		}

		h.responder.WriteJSON(w, education)
	}
}

// deleteEducation removes an education entry
func (h educationHandler) deleteEducation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		educationID, err := parseID(r, "educationID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.educationRepo.Delete(educationID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "education", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "education deleted successfully",
		})
	}
}
