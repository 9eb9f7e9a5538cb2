package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	CategoryID string    `gorm:"uniqueIndex;not null" json:"category_id"`

	Category  string `gorm:"uniqueIndex;not null" json:"category"`
	CreatedBy string `json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) (err error) {
	c.ID = uuid.New()
	return
}
