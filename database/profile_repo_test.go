package database

import (
	"testing"

	"github.com/pranavratheesh/portfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepoFindPreloadsChildren(t *testing.T) {
	db := newTestDB(t)
	repo := NewProfileRepo(db)

	none, err := repo.Find()
	require.NoError(t, err)
	assert.Nil(t, none)

	profile := models.Profile{Title: "Software Engineer", Email: "me@example.com"}
	require.NoError(t, repo.Add(&profile))

	require.NoError(t, NewSocialLinkRepo(db).Add(&models.SocialLink{
		ProfileID: &profile.ID, Platform: "github", URL: "https://github.com/me",
	}))
	skills := []models.Skill{
		{ProfileID: &profile.ID, Name: "Go", Proficiency: 90, Order: 2},
		{ProfileID: &profile.ID, Name: "SQL", Proficiency: 80, Order: 1},
	}
	skillRepo := NewSkillRepo(db)
	for i := range skills {
		require.NoError(t, skillRepo.Add(&skills[i]))
	}

	found, err := repo.Find()
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Len(t, found.SocialLinks, 1)
	require.Len(t, found.Skills, 2)
	assert.Equal(t, "SQL", found.Skills[0].Name)
	assert.Equal(t, "Go", found.Skills[1].Name)
}

func TestProfileRepoDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	repo := NewProfileRepo(db)

	profile := models.Profile{Title: "Software Engineer", Email: "me@example.com"}
	require.NoError(t, repo.Add(&profile))
	require.NoError(t, NewSkillRepo(db).Add(&models.Skill{
		ProfileID: &profile.ID, Name: "Go", Proficiency: 90,
	}))

	require.NoError(t, repo.Delete(profile.ID))

	found, err := repo.FindByID(profile.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	var skills int64
	require.NoError(t, db.Model(&models.Skill{}).Where("profile_id = ?", profile.ID).Count(&skills).Error)
	assert.Zero(t, skills)
}
