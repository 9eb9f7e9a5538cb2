package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Expense rows come from three places: direct entry, stock restocking and
// employee advance salaries. Derived rows carry the employee token so the
// advance-removal path can find them.
type Expense struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	ExpenseID string    `gorm:"uniqueIndex;not null" json:"expense_id"`

	EmployeeID string  `gorm:"index" json:"employee_id,omitempty"`
	Title      string  `gorm:"not null" json:"title"`
	TotalBill  float64 `gorm:"type:decimal(10,2);not null" json:"total_bill"`

	CreatedAt time.Time `json:"created_at"`
}

func (e *Expense) BeforeCreate(tx *gorm.DB) (err error) {
	e.ID = uuid.New()
	return
}
