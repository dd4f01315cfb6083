package api

import (
	"net/http"

	"github.com/pranavratheesh/portfolio-backend/database"
	"github.com/pranavratheesh/portfolio-backend/models"
	"github.com/pranavratheesh/portfolio-backend/validation"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type certificateHandler struct {
	responder       Responder
	logger          zerolog.Logger
	certificateRepo *database.CertificateRepo
}

func newCertificateHandler(certificateRepo *database.CertificateRepo) certificateHandler {
	logger := log.With().Str("handlerName", "certificateHandler").Logger()

	return certificateHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		certificateRepo: certificateRepo,
	}
}

// getAllCertificates lists profile certificates
func (h certificateHandler) getAllCertificates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certificates, err := h.certificateRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "certificates", err))
			return
		}

		h.responder.WriteJSON(w, certificates)
	}
}

// createCertificate validates and inserts a certificate
func (h certificateHandler) createCertificate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var certificate models.Certificate
		if err := decodeJSON(r, &certificate); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := validation.ValidateCertificate(&certificate); err != nil {
			h.responder.WriteError(w, asValidationError(err))
			return
		}

		if err := h.certificateRepo.Add(&certificate); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "certificate", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, certificate)
	}
}

// updateCertificate validates and saves an existing certificate
func (h certificateHandler) updateCertificate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certificateID, err := parseID(r, "certificateID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var certificate models.Certificate
		if err := decodeJSON(r, &certificate); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := validation.ValidateCertificate(&certificate); err != nil {
			h.responder.WriteError(w, asValidationError(err))
			return
		}

		certificate.ID = certificateID

		if err := h.certificateRepo.Update(&certificate); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "certificate", err))
			return
		}

		h.responder.WriteJSON(w, certificate)
	}
}

// deleteCertificate removes a certificate
func (h certificateHandler) deleteCertificate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certificateID, err := parseID(r, "certificateID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.certificateRepo.Delete(certificateID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "certificate", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "certificate deleted successfully",
		})
	}
}
