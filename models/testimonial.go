package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Testimonial rating is validated into [1,5] before acceptance
type Testimonial struct {
	ID             uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	ProfileID      *uuid.UUID `json:"profile_id,omitempty" db:"profile_id" gorm:"type:uuid;index:idx_testimonial_profile_id"`
	ClientName     string     `json:"client_name" db:"client_name" gorm:"type:text;not null"`
	ClientPosition string     `json:"client_position,omitempty" db:"client_position" gorm:"type:text"`
	ClientCompany  string     `json:"client_company,omitempty" db:"client_company" gorm:"type:text"`
	ClientImage    string     `json:"client_image,omitempty" db:"client_image" gorm:"type:text"`
	Content        string     `json:"content" db:"content" gorm:"type:text;not null"`
	Rating         int        `json:"rating" db:"rating" gorm:"not null;default:5"`
	Featured       bool       `json:"featured" db:"featured" gorm:"not null;default:false"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

func (t *Testimonial) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
