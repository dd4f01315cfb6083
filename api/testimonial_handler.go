package api

import (
	"net/http"

	"github.com/pranavratheesh/portfolio-backend/database"
	"github.com/pranavratheesh/portfolio-backend/models"
	"github.com/pranavratheesh/portfolio-backend/validation"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type testimonialHandler struct {
	responder       Responder
	logger          zerolog.Logger
	testimonialRepo *database.TestimonialRepo
}

func newTestimonialHandler(testimonialRepo *database.TestimonialRepo) testimonialHandler {
	logger := log.With().Str("handlerName", "testimonialHandler").Logger()

	return testimonialHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		testimonialRepo: testimonialRepo,
	}
}

// getAllTestimonials lists testimonials
func (h testimonialHandler) getAllTestimonials() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		testimonials, err := h.testimonialRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "testimonials", err))
			return
		}

		h.responder.WriteJSON(w, testimonials)
	}
}

// createTestimonial validates and inserts a testimonial
func (h testimonialHandler) createTestimonial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var testimonial models.Testimonial
		if err := decodeJSON(r, &testimonial); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := validation.ValidateTestimonial(&testimonial); err != nil {
			h.responder.WriteError(w, asValidationError(err))
			return
		}

		if err := h.testimonialRepo.Add(&testimonial); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "testimonial", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, testimonial)
	}
}

// updateTestimonial validates and saves an existing testimonial
func (h testimonialHandler) updateTestimonial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		testimonialID, err := parseID(r, "testimonialID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var testimonial models.Testimonial
		if err := decodeJSON(r, &testimonial); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := validation.ValidateTestimonial(&testimonial); err != nil {
			h.responder.WriteError(w, asValidationError(err))
			return
		}

		testimonial.ID = testimonialID

		if err := h.testimonialRepo.Update(&testimonial); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "testimonial", err))
			return
		}

		h.responder.WriteJSON(w, testimonial)
	}
}

// deleteTestimonial removes a testimonial
func (h testimonialHandler) deleteTestimonial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		testimonialID, err := parseID(r, "testimonialID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.testimonialRepo.Delete(testimonialID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "testimonial", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "testimonial deleted successfully",
		})
	}
}
