package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	EmployeeID string    `gorm:"uniqueIndex;not null" json:"employee_id"`

	Name          string  `gorm:"not null" json:"name"`
	Designation   string  `gorm:"not null" json:"designation"`
	Mobile        string  `gorm:"not null" json:"mobile"`
	MonthlySalary float64 `gorm:"type:decimal(10,2);not null" json:"monthly_salary"`

	AdvanceSalaries []AdvanceSalary `gorm:"foreignKey:EmployeeID;references:EmployeeID" json:"advance_salaries"`

	CreatedAt time.Time `json:"created_at"`
}

type AdvanceSalary struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`

	EmployeeID    string  `gorm:"index;not null" json:"employee_id"`
	AdvanceSalary float64 `gorm:"type:decimal(10,2);not null" json:"advance_salary"`
	CreatedBy     string  `json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
}

func (e *Employee) BeforeCreate(tx *gorm.DB) (err error) {
	e.ID = uuid.New()
	return
}

func (a *AdvanceSalary) BeforeCreate(tx *gorm.DB) (err error) {
	a.ID = uuid.New()
	return
}
