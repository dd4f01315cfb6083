package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlogPost statuses
const (
	BlogPostStatusDraft     = "draft"
	BlogPostStatusPublished = "published"
)

// BlogPost represents a blog entry addressed by slug on the public site
type BlogPost struct {
	ID            uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title         string     `json:"title" db:"title" gorm:"type:text;not null"`
	Slug          string     `json:"slug" db:"slug" gorm:"type:text;not null;unique"`
	Excerpt       string     `json:"excerpt,omitempty" db:"excerpt" gorm:"type:varchar(300)"`
	Content       string     `json:"content" db:"content" gorm:"type:text;not null"`
	FeaturedImage string     `json:"featured_image,omitempty" db:"featured_image" gorm:"type:text"`
	Status        string     `json:"status" db:"status" gorm:"type:text;not null;default:draft"`
	PublishedDate *time.Time `json:"published_date,omitempty" db:"published_date" gorm:"type:timestamp"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`

	Tags []Tag `json:"tags,omitempty" gorm:"many2many:blog_post_tags"`
}

func (b *BlogPost) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
