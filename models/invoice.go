package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvoiceItem is a value snapshot of an order log at finalize time. Items are
// embedded in the invoice row as JSON, not referenced, so an invoice stays
// intact after the staging records are deleted.
type InvoiceItem struct {
	ServiceID   string  `json:"service_id"`
	ServiceName string  `json:"service_name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Quantity    int     `json:"quantity"`
}

type InvoiceItems []InvoiceItem

func (i InvoiceItems) Value() (driver.Value, error) {
	return json.Marshal(i)
}

func (i *InvoiceItems) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, i)
	case string:
		return json.Unmarshal([]byte(v), i)
	default:
		return errors.New("unsupported type for InvoiceItems")
	}
}

// SoldInvoice is immutable once created.
type SoldInvoice struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	InvoiceID string    `gorm:"uniqueIndex;not null" json:"invoice_id"`

	CustomerName   string       `gorm:"not null" json:"customer_name"`
	CustomerMobile string       `gorm:"index" json:"customer_mobile"`
	ServedBy       string       `gorm:"not null" json:"served_by"`
	Items          InvoiceItems `gorm:"type:jsonb" json:"items"`
	TotalBill      float64      `gorm:"type:decimal(10,2);not null" json:"total_bill"`
	TotalDiscount  float64      `gorm:"type:decimal(10,2);default:0.0" json:"total_discount"`

	CreatedAt time.Time `json:"created_at"`
}

func (s *SoldInvoice) BeforeCreate(tx *gorm.DB) (err error) {
	s.ID = uuid.New()
	return
}
