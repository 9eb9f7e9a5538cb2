package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	ServiceID string    `gorm:"uniqueIndex;not null" json:"service_id"`

	ServiceName string  `gorm:"not null;uniqueIndex:idx_service_category,priority:1" json:"service_name"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Category    string  `gorm:"uniqueIndex:idx_service_category,priority:2" json:"category"`

	CreatedAt time.Time `json:"created_at"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	s.ID = uuid.New()
	return
}
