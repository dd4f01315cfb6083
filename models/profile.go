package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile is the single owner record the public site is rendered from.
// Child collections (social links, skills, education, testimonials,
// certificates) hang off it and are edited inline by the admin screens.
type Profile struct {
	ID       uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title    string    `json:"title" db:"title" gorm:"type:text;not null"`
	Bio      string    `json:"bio" db:"bio" gorm:"type:text"`
	Picture  string    `json:"picture,omitempty" db:"picture" gorm:"type:text"`
	Email    string    `json:"email" db:"email" gorm:"type:text;not null"`
	Phone    string    `json:"phone,omitempty" db:"phone" gorm:"type:text"`
	Location string    `json:"location,omitempty" db:"location" gorm:"type:text"`
	Resume   string    `json:"resume,omitempty" db:"resume" gorm:"type:text"`

	SocialLinks  []SocialLink  `json:"social_links,omitempty" gorm:"foreignKey:ProfileID;references:ID;constraint:OnDelete:CASCADE"`
	Skills       []Skill       `json:"skills,omitempty" gorm:"foreignKey:ProfileID;references:ID;constraint:OnDelete:CASCADE"`
	Education    []Education   `json:"education,omitempty" gorm:"foreignKey:ProfileID;references:ID;constraint:OnDelete:CASCADE"`
	Testimonials []Testimonial `json:"testimonials,omitempty" gorm:"foreignKey:ProfileID;references:ID;constraint:OnDelete:CASCADE"`
	Certificates []Certificate `json:"certificates,omitempty" gorm:"foreignKey:ProfileID;references:ID;constraint:OnDelete:CASCADE"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
