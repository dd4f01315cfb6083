package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project represents a portfolio project with its gallery and technology links
type Project struct {
	ID               uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title            string    `json:"title" db:"title" gorm:"type:text;not null"`
	ShortDescription string    `json:"short_description,omitempty" db:"short_description" gorm:"type:varchar(300)"`
	Description      string    `json:"description" db:"description" gorm:"type:text;not null"`
	Image            string    `json:"image,omitempty" db:"image" gorm:"type:text"`
	ProjectURL       string    `json:"project_url,omitempty" db:"project_url" gorm:"type:text"`
	GithubURL        string    `json:"github_url,omitempty" db:"github_url" gorm:"type:text"`
	Featured         bool      `json:"featured" db:"featured" gorm:"not null;default:false"`
	CreatedAt        time.Time `json:"created_at" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`

	// Technologies is the legacy comma-joined list kept for older payloads.
	// TechnologyItems is the authoritative normalized association.
	Technologies    string       `json:"technologies,omitempty" db:"technologies" gorm:"type:text"`
	TechnologyItems []Technology `json:"technology_items,omitempty" gorm:"many2many:project_technologies"`

	Images []ProjectImage `json:"images,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TechnologiesList splits the legacy comma-joined technologies field
func (p *Project) TechnologiesList() []string {
	if p.Technologies == "" {
		return nil
	}
	parts := strings.Split(p.Technologies, ",")
	techs := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			techs = append(techs, trimmed)
		}
	}
	return techs
}
