package database

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pranavratheesh/portfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProjects(t *testing.T, repo *ProjectRepo, n int, featured map[int]bool) []uuid.UUID {
	t.Helper()

	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	ids := make([]uuid.UUID, n)
	for i := 0; i < n; i++ {
		p := models.Project{
			Title:       fmt.Sprintf("Project %d", i),
			Description: "Something worth showing",
			Featured:    featured[i],
			CreatedAt:   base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, repo.AddWithImages(&p, nil, nil))
		ids[i] = p.ID
	}
	return ids
}

func TestProjectRepoFindFeatured(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepo(db)

	seedProjects(t, repo, 5, map[int]bool{0: true, 2: true, 4: true})

	featured, err := repo.FindFeatured(0)
	require.NoError(t, err)
	require.Len(t, featured, 3)

	// Newest created first
	assert.Equal(t, "Project 4", featured[0].Title)
	assert.Equal(t, "Project 2", featured[1].Title)
	assert.Equal(t, "Project 0", featured[2].Title)

	limited, err := repo.FindFeatured(2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "Project 4", limited[0].Title)
}

func TestProjectRepoFindAllLimit(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepo(db)

	seedProjects(t, repo, 8, nil)

	projects, err := repo.FindAll(6)
	require.NoError(t, err)
	assert.Len(t, projects, 6)
	assert.Equal(t, "Project 7", projects[0].Title)
}

func TestProjectRepoFindByIDWithOrderedImages(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepo(db)

	project := models.Project{Title: "Gallery", Description: "Has images"}
	images := []models.ProjectImage{
		{Image: "third.png", Order: 3},
		{Image: "first.png", Order: 1},
		{Image: "second.png", Order: 2},
	}
	require.NoError(t, repo.AddWithImages(&project, images, nil))

	found, err := repo.FindByID(project.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Len(t, found.Images, 3)

	assert.Equal(t, "first.png", found.Images[0].Image)
	assert.Equal(t, "second.png", found.Images[1].Image)
	assert.Equal(t, "third.png", found.Images[2].Image)
	for _, img := range found.Images {
		assert.Equal(t, project.ID, img.ProjectID)
	}
}

func TestProjectRepoFindByIDMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepo(db)

	found, err := repo.FindByID(uuid.New())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestProjectRepoFindRelatedExcludesSelf(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepo(db)

	ids := seedProjects(t, repo, 5, nil)

	related, err := repo.FindRelated(ids[4], 3)
	require.NoError(t, err)
	require.Len(t, related, 3)
	for _, p := range related {
		assert.NotEqual(t, ids[4], p.ID)
	}
	assert.Equal(t, "Project 3", related[0].Title)
}

func TestProjectRepoDeleteCascadesToImages(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepo(db)

	project := models.Project{Title: "Doomed", Description: "Will be deleted"}
	images := []models.ProjectImage{{Image: "a.png", Order: 1}, {Image: "b.png", Order: 2}}
	require.NoError(t, repo.AddWithImages(&project, images, nil))

	require.NoError(t, repo.Delete(project.ID))

	found, err := repo.FindByID(project.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	var orphans int64
	require.NoError(t, db.Model(&models.ProjectImage{}).Where("project_id = ?", project.ID).Count(&orphans).Error)
	assert.Zero(t, orphans)
}

func TestProjectRepoTechnologyLinks(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepo(db)
	techRepo := NewTechnologyRepo(db)

	golang := models.Technology{Name: "Go"}
	postgres := models.Technology{Name: "PostgreSQL"}
	require.NoError(t, techRepo.Add(&golang))
	require.NoError(t, techRepo.Add(&postgres))

	project := models.Project{Title: "Linked", Description: "Uses a stack"}
	require.NoError(t, repo.AddWithImages(&project, nil, []uuid.UUID{golang.ID, postgres.ID}))

	found, err := repo.FindByID(project.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Len(t, found.TechnologyItems, 2)

	// Replace the set with a single technology
	project.CreatedAt = found.CreatedAt
	require.NoError(t, repo.UpdateWithImages(&project, nil, []uuid.UUID{golang.ID}))

	found, err = repo.FindByID(project.ID)
	require.NoError(t, err)
	require.Len(t, found.TechnologyItems, 1)
	assert.Equal(t, "Go", found.TechnologyItems[0].Name)
}

func TestProjectRepoUpdateReplacesImageSet(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepo(db)

	project := models.Project{Title: "Mutable", Description: "Gallery changes"}
	require.NoError(t, repo.AddWithImages(&project, []models.ProjectImage{
		{Image: "old-1.png", Order: 1},
		{Image: "old-2.png", Order: 2},
	}, nil))

	stored, err := repo.FindByID(project.ID)
	require.NoError(t, err)
	project.CreatedAt = stored.CreatedAt

	require.NoError(t, repo.UpdateWithImages(&project, []models.ProjectImage{
		{Image: "new.png", Order: 1},
	}, nil))

	found, err := repo.FindByID(project.ID)
	require.NoError(t, err)
	require.Len(t, found.Images, 1)
	assert.Equal(t, "new.png", found.Images[0].Image)
}
