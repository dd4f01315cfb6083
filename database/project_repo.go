package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/pranavratheesh/portfolio-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// orderedImages preloads project images in display order
func orderedImages(db *gorm.DB) *gorm.DB {
	return db.Order("display_order ASC")
}

// FindAll returns projects ordered newest-created first, truncated to limit
// when limit is positive
func (r *ProjectRepo) FindAll(limit int) ([]*models.Project, error) {
	var projects []*models.Project
	q := r.db.Preload("Images", orderedImages).Preload("TechnologyItems").
		Order("created_at DESC, id")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&projects).Error
	return projects, err
}

// FindFeatured returns featured projects ordered newest-created first,
// truncated to limit when limit is positive
func (r *ProjectRepo) FindFeatured(limit int) ([]*models.Project, error) {
	var projects []*models.Project
	q := r.db.Where("featured = ?", true).
		Preload("Images", orderedImages).Preload("TechnologyItems").
		Order("created_at DESC, id")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&projects).Error
	return projects, err
}

// FindRelated returns projects other than excludeID with their images
// attached, newest-created first, truncated to limit
func (r *ProjectRepo) FindRelated(excludeID uuid.UUID, limit int) ([]*models.Project, error) {
	var projects []*models.Project
	q := r.db.Where("id <> ?", excludeID).
		Preload("Images", orderedImages).
		Order("created_at DESC, id")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&projects).Error
	return projects, err
}

// FindByID returns the project with its ordered images and technologies,
// or nil when no project has that id
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Images", orderedImages).Preload("TechnologyItems").
		First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// AddWithImages inserts a project together with its image submissions and
// technology links in one transaction. Either everything commits or nothing
// does.
func (r *ProjectRepo) AddWithImages(project *models.Project, images []models.ProjectImage, techIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(project).Error; err != nil {
			return err
		}
		for i := range images {
			images[i].ProjectID = project.ID
			if err := tx.Create(&images[i]).Error; err != nil {
				return err
			}
		}
		return replaceTechnologies(tx, project, techIDs)
	})
}

// UpdateWithImages saves project fields and, when images is non-nil,
// replaces the whole image set. Runs in one transaction.
func (r *ProjectRepo) UpdateWithImages(project *models.Project, images []models.ProjectImage, techIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(project).Error; err != nil {
			return err
		}
		if images != nil {
			if err := tx.Where("project_id = ?", project.ID).Delete(&models.ProjectImage{}).Error; err != nil {
				return err
			}
			for i := range images {
				images[i].ID = uuid.Nil
				images[i].ProjectID = project.ID
				if err := tx.Create(&images[i]).Error; err != nil {
					return err
				}
			}
		}
		return replaceTechnologies(tx, project, techIDs)
	})
}

// Delete removes a project and cascades to its images: children first, then
// the parent, inside one transaction so no orphans survive a failure.
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectImage{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Project{ID: id}).Association("TechnologyItems").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, "id = ?", id).Error
	})
}

func replaceTechnologies(tx *gorm.DB, project *models.Project, techIDs []uuid.UUID) error {
	if techIDs == nil {
		return nil
	}
	var techs []models.Technology
	if len(techIDs) > 0 {
		if err := tx.Where("id IN ?", techIDs).Find(&techs).Error; err != nil {
			return err
		}
	}
	return tx.Model(project).Association("TechnologyItems").Replace(techs)
}
