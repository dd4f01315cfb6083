package api

import (
	"net/http"

	"github.com/pranavratheesh/portfolio-backend/errs"
	"github.com/pranavratheesh/portfolio-backend/storage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Uploads above this size are rejected outright
const maxUploadBytes = 20 << 20 // 20MB

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     storage.Store
}

func newUploadHandler(store storage.Store) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
	}
}

// uploadFile stores a multipart file upload under a logical category and
// returns the retrievable reference. Validation (category, extension)
// happens before any byte reaches the store.
func (h uploadHandler) uploadFile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed multipart form"))
			return
		}

		category := r.FormValue("category")
		if category == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing category"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("missing file"))
			return
		}
		defer file.Close()

		ref, err := h.store.Save(r.Context(), category, header.Filename, file)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		subject, _ := ctxGetAdminSubject(r.Context())
		h.logger.Info().
			Str("subject", subject).
			Str("category", category).
			Str("ref", ref).
			Msg("file uploaded")

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]string{"ref": ref})
	}
}
