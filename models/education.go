package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Education follows the same current/end-date exclusivity rule as Experience
type Education struct {
	ID           uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	ProfileID    *uuid.UUID `json:"profile_id,omitempty" db:"profile_id" gorm:"type:uuid;index:idx_education_profile_id"`
	Institution  string     `json:"institution" db:"institution" gorm:"type:text;not null"`
	Degree       string     `json:"degree" db:"degree" gorm:"type:text;not null"`
	FieldOfStudy string     `json:"field_of_study,omitempty" db:"field_of_study" gorm:"type:text"`
	StartDate    time.Time  `json:"start_date" db:"start_date" gorm:"type:date;not null"`
	EndDate      *time.Time `json:"end_date,omitempty" db:"end_date" gorm:"type:date"`
	Current      bool       `json:"current" db:"current" gorm:"not null;default:false"`
	Description  string     `json:"description,omitempty" db:"description" gorm:"type:text"`
	Grade        string     `json:"grade,omitempty" db:"grade" gorm:"type:text"`
}

func (e *Education) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
