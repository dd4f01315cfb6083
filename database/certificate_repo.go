package database

import (
	"github.com/google/uuid"
	"github.com/pranavratheesh/portfolio-backend/models"
	"gorm.io/gorm"
)

type CertificateRepo struct {
	db *gorm.DB
}

func NewCertificateRepo(db *gorm.DB) *CertificateRepo {
	return &CertificateRepo{db}
}

// FindAll returns all profile certificates
func (r *CertificateRepo) FindAll() ([]*models.Certificate, error) {
	var certificates []*models.Certificate
	err := r.db.Find(&certificates).Error
	return certificates, err
}

// Add inserts a new certificate into the database
func (r *CertificateRepo) Add(certificate *models.Certificate) error {
	return r.db.Create(certificate).Error
}

// Update updates an existing certificate in the database
func (r *CertificateRepo) Update(certificate *models.Certificate) error {
	return r.db.Save(certificate).Error
}

// Delete removes a certificate from the database by id
func (r *CertificateRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Certificate{}, "id = ?", id).Error
}
