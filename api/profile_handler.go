package api

import (
	"net/http"

	"github.com/pranavratheesh/portfolio-backend/database"
	"github.com/pranavratheesh/portfolio-backend/errs"
	"github.com/pranavratheesh/portfolio-backend/models"
	"github.com/pranavratheesh/portfolio-backend/validation"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type profileHandler struct {
	responder   Responder
	logger      zerolog.Logger
	profileRepo *database.ProfileRepo
}

func newProfileHandler(profileRepo *database.ProfileRepo) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		profileRepo: profileRepo,
	}
}

// getProfile returns the profile with all child collections preloaded
func (h profileHandler) getProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := h.profileRepo.Find()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "profile", err))
			return
		}
		if profile == nil {
			h.responder.WriteError(w, errs.NewNotFound("profile"))
			return
		}

		h.responder.WriteJSON(w, profile)
	}
}

// createProfile creates the profile record
func (h profileHandler) createProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var profile models.Profile
		if err := decodeJSON(r, &profile); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := validation.ValidateProfile(&profile); err != nil {
			h.responder.WriteError(w, asValidationError(err))
			return
		}

		if err := h.profileRepo.Add(&profile); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "profile", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, profile)
	}
}

// updateProfile updates the profile record
func (h profileHandler) updateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID, err := parseID(r, "profileID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.profileRepo.FindByID(profileID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "profile", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("profile"))
			return
		}

		var profile models.Profile
		if err := decodeJSON(r, &profile); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := validation.ValidateProfile(&profile); err != nil {
			h.responder.WriteError(w, asValidationError(err))
			return
		}

		profile.ID = profileID

		if err := h.profileRepo.Update(&profile); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "profile", err))
			return
		}

		h.responder.WriteJSON(w, profile)
	}
}
