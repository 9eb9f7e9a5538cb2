package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Plan struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	PlanID string    `gorm:"uniqueIndex;not null" json:"plan_id"`

	PlanName string  `gorm:"not null" json:"plan_name"`
	Price    float64 `gorm:"type:decimal(10,2);not null" json:"price"`

	CreatedAt time.Time `json:"created_at"`
}

func (p *Plan) BeforeCreate(tx *gorm.DB) (err error) {
	p.ID = uuid.New()
	return
}
