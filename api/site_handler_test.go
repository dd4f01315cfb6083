package api

import (
	"net/http"
	"testing"

	"github.com/pranavratheesh/portfolio-backend/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetIndex(t *testing.T) {
	router, db := newTestRouter(t)

	require.NoError(t, database.Seed(db))

	rec := doRequest(t, router, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var summary IndexSummary
	decodeBody(t, rec, &summary)

	assert.Nil(t, summary.Profile)
	assert.Len(t, summary.FeaturedProjects, 2)
	assert.Len(t, summary.Projects, 2)
	assert.Len(t, summary.Skills, 9)
	assert.Len(t, summary.Education, 2)
	assert.Len(t, summary.Certifications, 2)
	assert.Empty(t, summary.Testimonials)

	// Experiences come back most recent first
	require.Len(t, summary.Experiences, 2)
	created := summary.Experiences[0].CreatedAt
	for _, e := range summary.Experiences[1:] {
		assert.False(t, e.CreatedAt.After(created))
		created = e.CreatedAt
	}
}

func TestGetIndexTruncatesProjectLists(t *testing.T) {
	router, _ := newTestRouter(t)
	token := adminToken(t)

	for i := 0; i < 8; i++ {
		rec := doRequest(t, router, http.MethodPost, "/admin/projects", token, map[string]any{
			"title":       "Project",
			"description": "A project",
			"featured":    true,
		})
		require.Equal(t, http.StatusCreated, rec.Code, "project %d", i)
	}

	rec := doRequest(t, router, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var summary IndexSummary
	decodeBody(t, rec, &summary)
	assert.Len(t, summary.FeaturedProjects, 3)
	assert.Len(t, summary.Projects, 6)
}

func TestGetIndexShowsOnlyFeaturedTestimonials(t *testing.T) {
	router, _ := newTestRouter(t)
	token := adminToken(t)

	testimonials := []map[string]any{
		{"client_name": "Grace", "content": "Excellent work", "rating": 5, "featured": true},
		{"client_name": "Alan", "content": "Solid delivery", "rating": 4, "featured": false},
	}
	for _, tm := range testimonials {
		rec := doRequest(t, router, http.MethodPost, "/admin/testimonials", token, tm)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doRequest(t, router, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var summary IndexSummary
	decodeBody(t, rec, &summary)
	require.Len(t, summary.Testimonials, 1)
	assert.Equal(t, "Grace", summary.Testimonials[0].ClientName)
}
