package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Certification is the standalone legacy variant rendered on the index
// page. Profile-owned certificates live in Certificate.
type Certification struct {
	ID             uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title          string    `json:"title" db:"title" gorm:"type:text;not null"`
	Issuer         string    `json:"issuer" db:"issuer" gorm:"type:text;not null"`
	CompletionDate string    `json:"completion_date,omitempty" db:"completion_date" gorm:"type:text"`
}

func (c *Certification) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
