package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents the database model for withdrawals.
// No foreign key constraint is migrated, so a transaction is orphaned rather
// than cascaded if its user row disappears.
type Transaction struct {
	ID      uint64          `gorm:"primaryKey;autoIncrement"`
	UserID  uint64          `gorm:"not null;index:idx_transactions_user_date,priority:1"`
	Type    string          `gorm:"size:20;not null"`
	Amount  decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	VATFee  decimal.Decimal `gorm:"column:vat_fee;type:numeric(14,2);not null"`
	Method  string          `gorm:"size:100"`
	Details string          `gorm:"type:text"`
	Status  string          `gorm:"size:40;not null;index"`
	Date    time.Time       `gorm:"not null;index:idx_transactions_user_date,priority:2"`

	User *User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
