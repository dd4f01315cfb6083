package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pranavratheesh/portfolio-backend/database"
	"github.com/pranavratheesh/portfolio-backend/errs"
	"github.com/pranavratheesh/portfolio-backend/validation"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type blogPostHandler struct {
	responder    Responder
	logger       zerolog.Logger
	blogPostRepo *database.BlogPostRepo
}

func newBlogPostHandler(blogPostRepo *database.BlogPostRepo) blogPostHandler {
	logger := log.With().Str("handlerName", "blogPostHandler").Logger()

	return blogPostHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		blogPostRepo: blogPostRepo,
	}
}

// getPublishedBlogPosts lists published posts for the public site
func (h blogPostHandler) getPublishedBlogPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.blogPostRepo.FindPublished()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find published", "blog posts", err))
			return
		}

		h.responder.WriteJSON(w, posts)
	}
}

// getBlogPostBySlug retrieves a post by its public slug
func (h blogPostHandler) getBlogPostBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		post, err := h.blogPostRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog post", err))
			return
		}
		if post == nil {
			h.responder.WriteError(w, errs.NewNotFound("blog post"))
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

// getAllBlogPosts lists every post, drafts included, for the admin screens
func (h blogPostHandler) getAllBlogPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.blogPostRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog posts", err))
			return
		}

		h.responder.WriteJSON(w, posts)
	}
}

// createBlogPost creates a post and links its tags atomically
func (h blogPostHandler) createBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var submission BlogPostSubmission
		if err := decodeJSON(r, &submission); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := validation.ValidateBlogPost(&submission.BlogPost); err != nil {
			h.responder.WriteError(w, asValidationError(err))
			return
		}

		post := submission.BlogPost
		post.Tags = nil

		if err := h.blogPostRepo.AddWithTags(&post, submission.TagIDs); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "blog post", err))
			return
		}

		created, err := h.blogPostRepo.FindByID(post.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "blog post", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

// updateBlogPost updates a post and replaces its tag links atomically
func (h blogPostHandler) updateBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogPostID, err := parseID(r, "blogPostID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.blogPostRepo.FindByID(blogPostID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog post", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("blog post"))
			return
		}

		var submission BlogPostSubmission
		if err := decodeJSON(r, &submission); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := validation.ValidateBlogPost(&submission.BlogPost); err != nil {
			h.responder.WriteError(w, asValidationError(err))
			return
		}

		post := submission.BlogPost
		post.ID = blogPostID
		post.CreatedAt = existing.CreatedAt
		post.Tags = nil

		if err := h.blogPostRepo.UpdateWithTags(&post, submission.TagIDs); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "blog post", err))
			return
		}

		updated, err := h.blogPostRepo.FindByID(blogPostID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "blog post", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteBlogPost deletes a post and its tag links
func (h blogPostHandler) deleteBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogPostID, err := parseID(r, "blogPostID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.blogPostRepo.FindByID(blogPostID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog post", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("blog post"))
			return
		}

		if err := h.blogPostRepo.Delete(blogPostID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "blog post", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "blog post deleted successfully",
		})
	}
}
