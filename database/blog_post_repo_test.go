package database

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pranavratheesh/portfolio-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogPostRepoFindPublished(t *testing.T) {
	db := newTestDB(t)
	repo := NewBlogPostRepo(db)

	older := time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)
	newer := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

	posts := []models.BlogPost{
		{Title: "Draft", Slug: "draft-post", Content: "wip", Status: models.BlogPostStatusDraft},
		{Title: "Older", Slug: "older-post", Content: "body", Status: models.BlogPostStatusPublished, PublishedDate: &older},
		{Title: "Newer", Slug: "newer-post", Content: "body", Status: models.BlogPostStatusPublished, PublishedDate: &newer},
	}
	for i := range posts {
		require.NoError(t, repo.AddWithTags(&posts[i], nil))
	}

	published, err := repo.FindPublished()
	require.NoError(t, err)
	require.Len(t, published, 2)
	assert.Equal(t, "Newer", published[0].Title)
	assert.Equal(t, "Older", published[1].Title)
}

func TestBlogPostRepoFindBySlug(t *testing.T) {
	db := newTestDB(t)
	repo := NewBlogPostRepo(db)

	post := models.BlogPost{Title: "Hello", Slug: "hello-world", Content: "body", Status: models.BlogPostStatusPublished}
	require.NoError(t, repo.AddWithTags(&post, nil))

	found, err := repo.FindBySlug("hello-world")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, post.ID, found.ID)

	missing, err := repo.FindBySlug("no-such-post")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestBlogPostRepoTagLinks(t *testing.T) {
	db := newTestDB(t)
	repo := NewBlogPostRepo(db)
	tagRepo := NewTagRepo(db)

	golang := models.Tag{Name: "Go", Slug: "go"}
	web := models.Tag{Name: "Web", Slug: "web"}
	require.NoError(t, tagRepo.Add(&golang))
	require.NoError(t, tagRepo.Add(&web))

	post := models.BlogPost{Title: "Tagged", Slug: "tagged", Content: "body", Status: models.BlogPostStatusDraft}
	require.NoError(t, repo.AddWithTags(&post, []uuid.UUID{golang.ID, web.ID}))

	found, err := repo.FindByID(post.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Len(t, found.Tags, 2)

	// Replacing with an empty set unlinks every tag
	post.CreatedAt = found.CreatedAt
	require.NoError(t, repo.UpdateWithTags(&post, []uuid.UUID{}))

	found, err = repo.FindByID(post.ID)
	require.NoError(t, err)
	assert.Empty(t, found.Tags)
}

func TestBlogPostRepoDeleteClearsTagLinks(t *testing.T) {
	db := newTestDB(t)
	repo := NewBlogPostRepo(db)
	tagRepo := NewTagRepo(db)

	tag := models.Tag{Name: "Go", Slug: "go"}
	require.NoError(t, tagRepo.Add(&tag))

	post := models.BlogPost{Title: "Doomed", Slug: "doomed", Content: "body", Status: models.BlogPostStatusDraft}
	require.NoError(t, repo.AddWithTags(&post, []uuid.UUID{tag.ID}))

	require.NoError(t, repo.Delete(post.ID))

	found, err := repo.FindByID(post.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	var links int64
	require.NoError(t, db.Table("blog_post_tags").Where("blog_post_id = ?", post.ID).Count(&links).Error)
	assert.Zero(t, links)

	// The tag itself survives
	tags, err := tagRepo.FindAll()
	require.NoError(t, err)
	assert.Len(t, tags, 1)
}
