package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TempCustomer is an open, in-progress customer visit. Rows only exist while
// the visit is unsettled: finalizing an invoice or cancelling the visit
// deletes the row together with its order logs.
type TempCustomer struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	TempCustomerID string    `gorm:"uniqueIndex;not null" json:"temp_customer_id"`

	Name     string `gorm:"not null" json:"name"`
	Mobile   string `gorm:"index" json:"mobile"`
	ServedBy string `gorm:"not null" json:"served_by"`
	Paid     bool   `gorm:"default:false" json:"paid"`

	CreatedAt time.Time `json:"created_at"`
}

func (t *TempCustomer) BeforeCreate(tx *gorm.DB) (err error) {
	t.ID = uuid.New()
	return
}
