package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectImage is a gallery image attached to a project. Display sequence
// follows the order attribute ascending.
type ProjectImage struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	ProjectID uuid.UUID `json:"project_id" db:"project_id" gorm:"type:uuid;not null;index:idx_project_image_project_id"`
	Image     string    `json:"image" db:"image" gorm:"type:text;not null"`
	Caption   string    `json:"caption,omitempty" db:"caption" gorm:"type:text"`
	Order     int       `json:"order" db:"display_order" gorm:"column:display_order;not null;default:0"`

	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;references:ID"`
}

func (i *ProjectImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
