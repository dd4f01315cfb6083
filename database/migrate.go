package database

import (
	"github.com/pranavratheesh/portfolio-backend/models"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for every entity type
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Profile{},
		&models.SocialLink{},
		&models.Skill{},
		&models.Education{},
		&models.Testimonial{},
		&models.Certificate{},
		&models.Technology{},
		&models.Project{},
		&models.ProjectImage{},
		&models.Experience{},
		&models.Certification{},
		&models.Tag{},
		&models.BlogPost{},
		&models.ContactMessage{},
	)
}
