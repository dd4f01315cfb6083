package api

import (
	"net/http"

	"github.com/pranavratheesh/portfolio-backend/database"
	"github.com/pranavratheesh/portfolio-backend/models"
	"github.com/pranavratheesh/portfolio-backend/validation"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type socialLinkHandler struct {
	responder      Responder
	logger         zerolog.Logger
	socialLinkRepo *database.SocialLinkRepo
}

func newSocialLinkHandler(socialLinkRepo *database.SocialLinkRepo) socialLinkHandler {
	logger := log.With().Str("handlerName", "socialLinkHandler").Logger()

	return socialLinkHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		socialLinkRepo: socialLinkRepo,
	}
}

// getAllSocialLinks lists social links
func (h socialLinkHandler) getAllSocialLinks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		links, err := h.socialLinkRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "social links", err))
			return
		}

		h.responder.WriteJSON(w, links)
	}
}

// createSocialLink validates and inserts a social link
func (h socialLinkHandler) createSocialLink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var link models.SocialLink
		if err := decodeJSON(r, &link); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := validation.ValidateSocialLink(&link); err != nil {
			h.responder.WriteError(w, asValidationError(err))
			return
		}

		if err := h.socialLinkRepo.Add(&link); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "social link", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, link)
	}
}

// updateSocialLink validates and saves an existing social link
func (h socialLinkHandler) updateSocialLink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		socialLinkID, err := parseID(r, "socialLinkID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var link models.SocialLink
		if err := decodeJSON(r, &link); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := validation.ValidateSocialLink(&link); err != nil {
			h.responder.WriteError(w, asValidationError(err))
			return
		}

		link.ID = socialLinkID

		if err := h.socialLinkRepo.Update(&link); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "social link", err))
			return
		}

		h.responder.WriteJSON(w, link)
	}
}

// deleteSocialLink removes a social link
func (h socialLinkHandler) deleteSocialLink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		socialLinkID, err := parseID(r, "socialLinkID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.socialLinkRepo.Delete(socialLinkID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "social link", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "social link deleted successfully",
		})
	}
}
