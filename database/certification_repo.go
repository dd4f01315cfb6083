package database

import (
	"github.com/google/uuid"
	"github.com/pranavratheesh/portfolio-backend/models"
	"gorm.io/gorm"
)

type CertificationRepo struct {
	db *gorm.DB
}

func NewCertificationRepo(db *gorm.DB) *CertificationRepo {
	return &CertificationRepo{db}
}

// FindAll returns all certifications
func (r *CertificationRepo) FindAll() ([]*models.Certification, error) {
	var certifications []*models.Certification
	err := r.db.Find(&certifications).Error
	return certifications, err
}

// Add inserts a new certification into the database
func (r *CertificationRepo) Add(certification *models.Certification) error {
	return r.db.Create(certification).Error
}

// Update updates an existing certification in the database
func (r *CertificationRepo) Update(certification *models.Certification) error {
	return r.db.Save(certification).Error
}

// Delete removes a certification from the database by id
func (r *CertificationRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Certification{}, "id = ?", id).Error
}
