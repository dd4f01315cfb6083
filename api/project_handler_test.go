package api

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/pranavratheesh/portfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProjectNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/projects/"+uuid.NewString(), "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetProjectInvalidID(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/projects/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProjectWithImages(t *testing.T) {
	router, db := newTestRouter(t)
	token := adminToken(t)

	rec := doRequest(t, router, http.MethodPost, "/admin/projects", token, map[string]any{
		"title":       "Gallery App",
		"description": "An app with a gallery",
		"featured":    true,
		"image_submissions": []map[string]any{
			{"image": "shot-2.png", "order": 2},
			{"image": "shot-1.png", "order": 1},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Project
	decodeBody(t, rec, &created)
	require.Len(t, created.Images, 2)
	assert.Equal(t, "shot-1.png", created.Images[0].Image)
	assert.Equal(t, "shot-2.png", created.Images[1].Image)

	var imageCount int64
	require.NoError(t, db.Model(&models.ProjectImage{}).Count(&imageCount).Error)
	assert.EqualValues(t, 2, imageCount)
}

func TestCreateProjectRejectionIsAtomic(t *testing.T) {
	router, db := newTestRouter(t)
	token := adminToken(t)

	// One image submission is invalid, so nothing may be committed
	rec := doRequest(t, router, http.MethodPost, "/admin/projects", token, map[string]any{
		"title":       "Broken",
		"description": "Has a bad image",
		"image_submissions": []map[string]any{
			{"image": "ok.png", "order": 1},
			{"image": "", "order": 2},
		},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Status string `json:"status"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, "validation_error", body.Status)

	var projects, images int64
	require.NoError(t, db.Model(&models.Project{}).Count(&projects).Error)
	require.NoError(t, db.Model(&models.ProjectImage{}).Count(&images).Error)
	assert.Zero(t, projects)
	assert.Zero(t, images)
}

func TestGetProjectDetailWithRelated(t *testing.T) {
	router, _ := newTestRouter(t)
	token := adminToken(t)

	var ids []string
	for _, title := range []string{"First", "Second", "Third"} {
		rec := doRequest(t, router, http.MethodPost, "/admin/projects", token, map[string]any{
			"title":       title,
			"description": "A project",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		var created models.Project
		decodeBody(t, rec, &created)
		ids = append(ids, created.ID.String())
	}

	rec := doRequest(t, router, http.MethodGet, "/projects/"+ids[0], "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var detail ProjectDetail
	decodeBody(t, rec, &detail)
	require.NotNil(t, detail.Project)
	assert.Equal(t, "First", detail.Project.Title)
	require.Len(t, detail.RelatedProjects, 2)
	for _, related := range detail.RelatedProjects {
		assert.NotEqual(t, detail.Project.ID, related.ID)
	}
}

func TestGetAllProjectsFeaturedFilter(t *testing.T) {
	router, _ := newTestRouter(t)
	token := adminToken(t)

	for i, featured := range []bool{true, false, true} {
		rec := doRequest(t, router, http.MethodPost, "/admin/projects", token, map[string]any{
			"title":       "Project",
			"description": "A project",
			"featured":    featured,
		})
		require.Equal(t, http.StatusCreated, rec.Code, "project %d", i)
	}

	rec := doRequest(t, router, http.MethodGet, "/projects?featured=true", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var collection ProjectCollection
	decodeBody(t, rec, &collection)
	assert.Equal(t, 2, collection.Total)
	for _, p := range collection.Projects {
		assert.True(t, p.Featured)
	}
}

func TestDeleteProjectRemovesImages(t *testing.T) {
	router, db := newTestRouter(t)
	token := adminToken(t)

	rec := doRequest(t, router, http.MethodPost, "/admin/projects", token, map[string]any{
		"title":             "Doomed",
		"description":       "Will be deleted",
		"image_submissions": []map[string]any{{"image": "a.png", "order": 1}},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Project
	decodeBody(t, rec, &created)

	rec = doRequest(t, router, http.MethodDelete, "/admin/projects/"+created.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/projects/"+created.ID.String(), "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var images int64
	require.NoError(t, db.Model(&models.ProjectImage{}).Count(&images).Error)
	assert.Zero(t, images)
}
