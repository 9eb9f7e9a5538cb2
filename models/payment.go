package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentPending  = "pending"
	PaymentSuccess  = "success"
	PaymentRejected = "rejected"
)

type PaymentRecord struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`

	BrandID       string  `gorm:"index;not null" json:"brand_id"`
	TransactionID string  `gorm:"uniqueIndex;not null" json:"transaction_id"`
	Account       string  `json:"account"`
	Method        string  `json:"method"`
	Amount        float64 `gorm:"type:decimal(10,2);not null" json:"amount"`

	Status         string `gorm:"type:varchar(20);default:'pending'" json:"status"`
	DeclinedReason string `json:"declined_reason"`

	CreatedAt time.Time `json:"created_at"`
}

func (p *PaymentRecord) BeforeCreate(tx *gorm.DB) (err error) {
	p.ID = uuid.New()
	return
}
