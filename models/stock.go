package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StockItem keeps a signed running total alongside lifetime counters.
// Invariant: Stock == TotalIncrease - TotalDecrease, and never negative.
type StockItem struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	StockID string    `gorm:"uniqueIndex;not null" json:"stock_id"`

	Title string  `gorm:"not null;uniqueIndex:idx_stock_title_price,priority:1" json:"title"`
	Price float64 `gorm:"type:decimal(10,2);not null;uniqueIndex:idx_stock_title_price,priority:2" json:"price"`

	Stock         int `gorm:"default:0" json:"stock"`
	TotalIncrease int `gorm:"default:0" json:"total_increase"`
	TotalDecrease int `gorm:"default:0" json:"total_decrease"`

	CreatedAt time.Time `json:"created_at"`
}

func (s *StockItem) BeforeCreate(tx *gorm.DB) (err error) {
	s.ID = uuid.New()
	return
}
