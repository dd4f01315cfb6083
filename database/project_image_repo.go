package database

import (
	"github.com/google/uuid"
	"github.com/pranavratheesh/portfolio-backend/models"
	"gorm.io/gorm"
)

type ProjectImageRepo struct {
	db *gorm.DB
}

func NewProjectImageRepo(db *gorm.DB) *ProjectImageRepo {
	return &ProjectImageRepo{db}
}

// FindByProject returns a project's images ordered by their display order
func (r *ProjectImageRepo) FindByProject(projectID uuid.UUID) ([]*models.ProjectImage, error) {
	var images []*models.ProjectImage
	err := r.db.Where("project_id = ?", projectID).Order("display_order ASC").Find(&images).Error
	return images, err
}

// Add inserts a new project image into the database
func (r *ProjectImageRepo) Add(image *models.ProjectImage) error {
	return r.db.Create(image).Error
}

// Update updates an existing project image in the database
func (r *ProjectImageRepo) Update(image *models.ProjectImage) error {
	return r.db.Save(image).Error
}

// Delete removes a project image from the database by id
func (r *ProjectImageRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ProjectImage{}, "id = ?", id).Error
}
