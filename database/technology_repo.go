package database

import (
	"github.com/google/uuid"
	"github.com/pranavratheesh/portfolio-backend/models"
	"gorm.io/gorm"
)

type TechnologyRepo struct {
	db *gorm.DB
}

func NewTechnologyRepo(db *gorm.DB) *TechnologyRepo {
	return &TechnologyRepo{db}
}

// FindAll returns all technologies ordered by name
func (r *TechnologyRepo) FindAll() ([]*models.Technology, error) {
	var technologies []*models.Technology
	err := r.db.Order("name ASC").Find(&technologies).Error
	return technologies, err
}

// Add inserts a new technology into the database
func (r *TechnologyRepo) Add(technology *models.Technology) error {
	return r.db.Create(technology).Error
}

// Update updates an existing technology in the database
func (r *TechnologyRepo) Update(technology *models.Technology) error {
	return r.db.Save(technology).Error
}

// Delete removes a technology and its project links inside one transaction
func (r *TechnologyRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM project_technologies WHERE technology_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Technology{}, "id = ?", id).Error
	})
}
