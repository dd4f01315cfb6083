package api

import (
	"net/http"

	"github.com/pranavratheesh/portfolio-backend/database"
	"github.com/pranavratheesh/portfolio-backend/models"
	"github.com/pranavratheesh/portfolio-backend/validation"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type certificationHandler struct {
	responder         Responder
	logger            zerolog.Logger
	certificationRepo *database.CertificationRepo
}

func newCertificationHandler(certificationRepo *database.CertificationRepo) certificationHandler {
	logger := log.With().Str("handlerName", "certificationHandler").Logger()

	return certificationHandler{
		responder:         NewResponder(logger),
		logger:            logger,
		certificationRepo: certificationRepo,
	}
}

// getAllCertifications lists standalone certifications
func (h certificationHandler) getAllCertifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certifications, err := h.certificationRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "certifications", err))
			return
		}

		h.responder.WriteJSON(w, certifications)
	}
}

// createCertification validates and inserts a certification
func (h certificationHandler) createCertification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var certification models.Certification
		if err := decodeJSON(r, &certification); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := validation.ValidateCertification(&certification); err != nil {
			h.responder.WriteError(w, asValidationError(err))
			return
		}

		if err := h.certificationRepo.Add(&certification); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "certification", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, certification)
	}
}

// updateCertification validates and saves an existing certification
func (h certificationHandler) updateCertification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certificationID, err := parseID(r, "certificationID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var certification models.Certification
		if err := decodeJSON(r, &certification); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := validation.ValidateCertification(&certification); err != nil {
			h.responder.WriteError(w, asValidationError(err))
			return
		}

		certification.ID = certificationID

		if err := h.certificationRepo.Update(&certification); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "certification", err))
			return
		}

		h.responder.WriteJSON(w, certification)
	}
}

// deleteCertification removes a certification
func (h certificationHandler) deleteCertification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certificationID, err := parseID(r, "certificationID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.certificationRepo.Delete(certificationID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "certification", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "certification deleted successfully",
		})
	}
}
