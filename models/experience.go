package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Experience is a work history entry. Exactly one of {EndDate set,
// Current true} holds for an accepted record.
type Experience struct {
	ID          uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title       string     `json:"title" db:"title" gorm:"type:text;not null"`
	Company     string     `json:"company" db:"company" gorm:"type:text;not null"`
	CompanyLogo string     `json:"company_logo,omitempty" db:"company_logo" gorm:"type:text"`
	Description string     `json:"description" db:"description" gorm:"type:text"`
	StartDate   time.Time  `json:"start_date" db:"start_date" gorm:"type:date;not null"`
	EndDate     *time.Time `json:"end_date,omitempty" db:"end_date" gorm:"type:date"`
	Current     bool       `json:"current" db:"current" gorm:"not null;default:false"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

func (e *Experience) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
