package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/pranavratheesh/portfolio-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BlogPostRepo struct {
	db *gorm.DB
}

func NewBlogPostRepo(db *gorm.DB) *BlogPostRepo {
	return &BlogPostRepo{db}
}

// FindAll returns all blog posts, drafts included, newest first
func (r *BlogPostRepo) FindAll() ([]*models.BlogPost, error) {
	var posts []*models.BlogPost
	err := r.db.Preload("Tags").Order("created_at DESC, id").Find(&posts).Error
	return posts, err
}

// FindPublished returns published posts ordered by publication date descending
func (r *BlogPostRepo) FindPublished() ([]*models.BlogPost, error) {
	var posts []*models.BlogPost
	err := r.db.Where("status = ?", models.BlogPostStatusPublished).
		Preload("Tags").
		Order("published_date DESC").
		Find(&posts).Error
	return posts, err
}

// FindBySlug returns the post with the given slug, or nil when absent
func (r *BlogPostRepo) FindBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.Preload("Tags").First(&post, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindByID returns the post with the given id, or nil when absent
func (r *BlogPostRepo) FindByID(id uuid.UUID) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.Preload("Tags").First(&post, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// AddWithTags inserts a post and links its tags in one transaction
func (r *BlogPostRepo) AddWithTags(post *models.BlogPost, tagIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(post).Error; err != nil {
			return err
		}
		return replaceTags(tx, post, tagIDs)
	})
}

// UpdateWithTags saves post fields and replaces tag links in one transaction
func (r *BlogPostRepo) UpdateWithTags(post *models.BlogPost, tagIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(post).Error; err != nil {
			return err
		}
		return replaceTags(tx, post, tagIDs)
	})
}

// Delete removes a blog post and its tag links inside one transaction
func (r *BlogPostRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.BlogPost{ID: id}).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.BlogPost{}, "id = ?", id).Error
	})
}

func replaceTags(tx *gorm.DB, post *models.BlogPost, tagIDs []uuid.UUID) error {
	if tagIDs == nil {
		return nil
	}
	var tags []models.Tag
	if len(tagIDs) > 0 {
		if err := tx.Where("id IN ?", tagIDs).Find(&tags).Error; err != nil {
			return err
		}
	}
	return tx.Model(post).Association("Tags").Replace(tags)
}
