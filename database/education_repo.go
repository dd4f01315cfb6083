package database

import (
	"github.com/google/uuid"
	"github.com/pranavratheesh/portfolio-backend/models"
	"gorm.io/gorm"
)

type EducationRepo struct {
	db *gorm.DB
}

func NewEducationRepo(db *gorm.DB) *EducationRepo {
	return &EducationRepo{db}
}

// FindAll returns all education records
func (r *EducationRepo) FindAll() ([]*models.Education, error) {
	var education []*models.Education
	err := r.db.Find(&education).Error
	return education, err
}

// Add inserts a new education record into the database
func (r *EducationRepo) Add(education *models.Education) error {
	return r.db.Create(education).Error
}

// Update updates an existing education record in the database
func (r *EducationRepo) Update(education *models.Education) error {
	return r.db.Save(education).Error
}

// Delete removes an education record from the database by id
func (r *EducationRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Education{}, "id = ?", id).Error
}
