package database

import (
	"github.com/google/uuid"
	"github.com/pranavratheesh/portfolio-backend/models"
	"gorm.io/gorm"
)

type SocialLinkRepo struct {
	db *gorm.DB
}

func NewSocialLinkRepo(db *gorm.DB) *SocialLinkRepo {
	return &SocialLinkRepo{db}
}

// FindAll returns all social links
func (r *SocialLinkRepo) FindAll() ([]*models.SocialLink, error) {
	var links []*models.SocialLink
	err := r.db.Find(&links).Error
	return links, err
}

// Add inserts a new social link into the database
func (r *SocialLinkRepo) Add(link *models.SocialLink) error {
	return r.db.Create(link).Error
}

// Update updates an existing social link in the database
func (r *SocialLinkRepo) Update(link *models.SocialLink) error {
	return r.db.Save(link).Error
}

// Delete removes a social link from the database by id
func (r *SocialLinkRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.SocialLink{}, "id = ?", id).Error
}
