package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/pranavratheesh/portfolio-backend/models"
	"gorm.io/gorm"
)

type ProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db}
}

// Find returns the profile with all its child collections preloaded, or nil
// when no profile exists yet
func (r *ProfileRepo) Find() (*models.Profile, error) {
	var profile models.Profile
	err := r.db.
		Preload("SocialLinks").
		Preload("Skills", func(db *gorm.DB) *gorm.DB { return db.Order("display_order ASC") }).
		Preload("Education").
		Preload("Testimonials").
		Preload("Certificates").
		First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindByID returns a profile by id, or nil when absent
func (r *ProfileRepo) FindByID(id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Add inserts a new profile into the database
func (r *ProfileRepo) Add(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

// Update updates an existing profile in the database
func (r *ProfileRepo) Update(profile *models.Profile) error {
	return r.db.Save(profile).Error
}

// Delete removes a profile and its child collections inside one transaction
func (r *ProfileRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, child := range []interface{}{
			&models.SocialLink{}, &models.Skill{}, &models.Education{},
			&models.Testimonial{}, &models.Certificate{},
		} {
			if err := tx.Where("profile_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Profile{}, "id = ?", id).Error
	})
}
