package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Certificate belongs to a profile. ExpirationDate, when present, must not
// precede IssueDate.
type Certificate struct {
	ID                  uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	ProfileID           *uuid.UUID `json:"profile_id,omitempty" db:"profile_id" gorm:"type:uuid;index:idx_certificate_profile_id"`
	Name                string     `json:"name" db:"name" gorm:"type:text;not null"`
	IssuingOrganization string     `json:"issuing_organization" db:"issuing_organization" gorm:"type:text;not null"`
	IssueDate           time.Time  `json:"issue_date" db:"issue_date" gorm:"type:date;not null"`
	ExpirationDate      *time.Time `json:"expiration_date,omitempty" db:"expiration_date" gorm:"type:date"`
	CredentialID        string     `json:"credential_id,omitempty" db:"credential_id" gorm:"type:text"`
	CredentialURL       string     `json:"credential_url,omitempty" db:"credential_url" gorm:"type:text"`
}

func (c *Certificate) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
