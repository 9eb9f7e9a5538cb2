package models

import (
	"time"

	"elegance-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"-"`
	UserID string    `gorm:"uniqueIndex;not null" json:"user_id"`

	Name     string `gorm:"not null" json:"name"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Mobile   string `gorm:"uniqueIndex;not null" json:"mobile"`
	Password string `gorm:"not null" json:"-"`

	Role       string `gorm:"type:varchar(20);not null" json:"role"` // 'admin' or 'user'
	BannedUser bool   `gorm:"default:false" json:"banned_user"`

	CreatedAt time.Time `json:"created_at"`
}

// Initialize UUID and hash password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	u.ID = uuid.New()
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}
