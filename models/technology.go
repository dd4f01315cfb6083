package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Technology is the normalized many-to-many counterpart of the legacy
// comma-joined technologies string on Project
type Technology struct {
	ID       uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name     string    `json:"name" db:"name" gorm:"type:text;not null;unique"`
	Icon     string    `json:"icon,omitempty" db:"icon" gorm:"type:text"`
	Category string    `json:"category,omitempty" db:"category" gorm:"type:text"`
}

func (t *Technology) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
