package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is the permanent directory, populated as a byproduct of walk-in
// sessions. A mobile number is never duplicated here.
type Customer struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	CustomerID string    `gorm:"uniqueIndex;not null" json:"customer_id"`

	Name   string `gorm:"not null" json:"name"`
	Mobile string `gorm:"uniqueIndex;not null" json:"mobile"`

	Purchased []SoldInvoice `gorm:"foreignKey:CustomerMobile;references:Mobile" json:"purchased,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	c.ID = uuid.New()
	return
}
