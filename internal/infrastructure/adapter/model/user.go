package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents the database model for users
type User struct {
	ID        uint64          `gorm:"primaryKey;autoIncrement"`
	Username  string          `gorm:"size:100;not null;uniqueIndex:idx_users_username"`
	Password  string          `gorm:"size:255;not null"` // bcrypt hash
	Balance   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	IsAdmin   bool            `gorm:"not null;index"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
