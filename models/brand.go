package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Brand is a single-row table: the salon this deployment serves.
// selected_plan and subscription end_time drive the subscription gate.
type Brand struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	BrandID string    `gorm:"uniqueIndex;not null" json:"brand_id"`

	Name    string `gorm:"not null" json:"name"`
	Mobile  string `json:"mobile"`
	Address string `json:"address"`

	SelectedPlanID   string `json:"selected_plan_id"`
	SelectedPlanName string `json:"selected_plan_name"`

	SubscriptionEndTime *time.Time `json:"subscription_end_time"`

	CreatedAt time.Time `json:"created_at"`
}

func (b *Brand) BeforeCreate(tx *gorm.DB) (err error) {
	b.ID = uuid.New()
	return
}
