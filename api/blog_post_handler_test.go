package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/pranavratheesh/portfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogPostPublicListing(t *testing.T) {
	router, _ := newTestRouter(t)
	token := adminToken(t)

	published := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	posts := []map[string]any{
		{"title": "Draft", "slug": "draft-post", "content": "wip", "status": "draft"},
		{"title": "Live", "slug": "live-post", "content": "body", "status": "published", "published_date": published},
	}
	for _, p := range posts {
		rec := doRequest(t, router, http.MethodPost, "/admin/blog-posts", token, p)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	// Public listing only shows published posts
	rec := doRequest(t, router, http.MethodGet, "/blog-posts", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var publicPosts []models.BlogPost
	decodeBody(t, rec, &publicPosts)
	require.Len(t, publicPosts, 1)
	assert.Equal(t, "Live", publicPosts[0].Title)

	// Admin listing shows drafts too
	rec = doRequest(t, router, http.MethodGet, "/admin/blog-posts", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var adminPosts []models.BlogPost
	decodeBody(t, rec, &adminPosts)
	assert.Len(t, adminPosts, 2)
}

func TestBlogPostBySlug(t *testing.T) {
	router, _ := newTestRouter(t)
	token := adminToken(t)

	rec := doRequest(t, router, http.MethodPost, "/admin/blog-posts", token, map[string]any{
		"title":   "Hello",
		"slug":    "hello-world",
		"content": "body",
		"status":  "published",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/blog-posts/hello-world", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var post models.BlogPost
	decodeBody(t, rec, &post)
	assert.Equal(t, "Hello", post.Title)

	rec = doRequest(t, router, http.MethodGet, "/blog-posts/no-such-post", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateBlogPostValidation(t *testing.T) {
	router, _ := newTestRouter(t)
	token := adminToken(t)

	rec := doRequest(t, router, http.MethodPost, "/admin/blog-posts", token, map[string]any{
		"title":   "Bad",
		"slug":    "not a slug!",
		"content": "body",
		"status":  "archived",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Status     string `json:"status"`
		Violations []struct {
			Field string `json:"field"`
			Rule  string `json:"rule"`
		} `json:"violations"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, "validation_error", body.Status)

	fields := map[string]string{}
	for _, v := range body.Violations {
		fields[v.Field] = v.Rule
	}
	assert.Equal(t, "InvalidFormat", fields["slug"])
	assert.Equal(t, "InvalidFormat", fields["status"])
}

func TestCreateBlogPostWithTags(t *testing.T) {
	router, _ := newTestRouter(t)
	token := adminToken(t)

	rec := doRequest(t, router, http.MethodPost, "/admin/tags", token, map[string]string{
		"name": "Go",
		"slug": "go",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var tag models.Tag
	decodeBody(t, rec, &tag)

	rec = doRequest(t, router, http.MethodPost, "/admin/blog-posts", token, map[string]any{
		"title":   "Tagged",
		"slug":    "tagged",
		"content": "body",
		"status":  "draft",
		"tag_ids": []string{tag.ID.String()},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var post models.BlogPost
	decodeBody(t, rec, &post)
	require.Len(t, post.Tags, 1)
	assert.Equal(t, "Go", post.Tags[0].Name)
}

func TestDuplicateSlugConflicts(t *testing.T) {
	router, _ := newTestRouter(t)
	token := adminToken(t)

	payload := map[string]any{
		"title":   "Hello",
		"slug":    "hello-world",
		"content": "body",
		"status":  "draft",
	}

	rec := doRequest(t, router, http.MethodPost, "/admin/blog-posts", token, payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/admin/blog-posts", token, payload)
	assert.Equal(t, http.StatusConflict, rec.Code)
}
