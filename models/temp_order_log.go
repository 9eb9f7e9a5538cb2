package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TempOrderLog is one service picked within a visit. Service name, price and
// category are copied at creation time; later catalog edits do not reach back
// into existing lines. One (visit, service) pair may exist at most once.
type TempOrderLog struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	TempOrderLogID string    `gorm:"uniqueIndex;not null" json:"temp_order_log_id"`

	TempCustomerID string `gorm:"not null;uniqueIndex:idx_temp_customer_service,priority:1" json:"temp_customer_id"`
	ServiceID      string `gorm:"not null;uniqueIndex:idx_temp_customer_service,priority:2" json:"service_id"`

	ServiceName string  `gorm:"not null" json:"service_name"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Category    string  `json:"category"`
	ServedBy    string  `json:"served_by"`
	Quantity    int     `gorm:"default:1" json:"quantity"`

	CreatedAt time.Time `json:"created_at"`
}

func (t *TempOrderLog) BeforeCreate(tx *gorm.DB) (err error) {
	t.ID = uuid.New()
	return
}
