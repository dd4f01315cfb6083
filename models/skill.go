package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Skill proficiency is a percentage in [1,100], validated before acceptance
type Skill struct {
	ID          uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	ProfileID   *uuid.UUID `json:"profile_id,omitempty" db:"profile_id" gorm:"type:uuid;index:idx_skill_profile_id"`
	Name        string     `json:"name" db:"name" gorm:"type:text;not null"`
	Category    string     `json:"category" db:"category" gorm:"type:text"`
	Proficiency int        `json:"proficiency" db:"proficiency" gorm:"not null;default:1"`
	Icon        string     `json:"icon,omitempty" db:"icon" gorm:"type:text"`
	Order       int        `json:"order" db:"display_order" gorm:"column:display_order;not null;default:0"`
}

func (s *Skill) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
