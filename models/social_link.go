package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SocialLink is an external profile link shown in the site footer/header
type SocialLink struct {
	ID        uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	ProfileID *uuid.UUID `json:"profile_id,omitempty" db:"profile_id" gorm:"type:uuid;index:idx_social_link_profile_id"`
	Platform  string     `json:"platform" db:"platform" gorm:"type:text;not null"`
	URL       string     `json:"url" db:"url" gorm:"type:text;not null"`
	IconClass string     `json:"icon_class,omitempty" db:"icon_class" gorm:"type:text"`
}

func (s *SocialLink) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
