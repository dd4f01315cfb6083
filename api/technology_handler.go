package api

import (
	"net/http"

	"github.com/pranavratheesh/portfolio-backend/database"
	"github.com/pranavratheesh/portfolio-backend/models"
	"github.com/pranavratheesh/portfolio-backend/validation"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type technologyHandler struct {
	responder      Responder
	logger         zerolog.Logger
	technologyRepo *database.TechnologyRepo
}

func newTechnologyHandler(technologyRepo *database.TechnologyRepo) technologyHandler {
	logger := log.With().Str("handlerName", "technologyHandler").Logger()

	return technologyHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		technologyRepo: technologyRepo,
	}
}

// getAllTechnologies lists the technology catalog
func (h technologyHandler) getAllTechnologies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		technologies, err := h.technologyRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "technologies", err))
			return
		}

		h.responder.WriteJSON(w, technologies)
	}
}

// createTechnology validates and inserts a technology. Names are unique;
// duplicates surface as a conflict.
func (h technologyHandler) createTechnology() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var technology models.Technology
		if err := decodeJSON(r, &technology); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := validation.ValidateTechnology(&technology); err != nil {
			h.responder.WriteError(w, asValidationError(err))
			return
		}

		if err := h.technologyRepo.Add(&technology); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "technology", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, technology)
	}
}

// updateTechnology validates and saves an existing technology
func (h technologyHandler) updateTechnology() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		technologyID, err := parseID(r, "technologyID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var technology models.Technology
		if err := decodeJSON(r, &technology); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := validation.ValidateTechnology(&technology); err != nil {
			h.responder.WriteError(w, asValidationError(err))
			return
		}

		technology.ID = technologyID

		if err := h.technologyRepo.Update(&technology); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "technology", err))
			return
		}

		h.responder.WriteJSON(w, technology)
	}
}

// deleteTechnology removes a technology and its project links
func (h technologyHandler) deleteTechnology() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		technologyID, err := parseID(r, "technologyID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.technologyRepo.Delete(technologyID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "technology", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "technology deleted successfully",
		})
	}
}
