package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/rewards-portal/internal/domain/error"
	coreport "github.com/amirhossein-jamali/rewards-portal/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// User represents a portal account with a withdrawable balance
type User struct {
	ID           uint64          // Unique identifier for the user
	Username     string          // Globally unique login name
	PasswordHash string          // Salted one-way hash, never the plaintext
	balance      decimal.Decimal // Funds available for withdrawal (private)
	IsAdmin      bool            // Administrator flag
	CreatedAt    time.Time       // When the user was created
	UpdatedAt    time.Time       // When the user was last updated
}

// NewUser creates a regular user with a zero balance
func NewUser(username, passwordHash string, timeProvider coreport.TimeProvider) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errs.ErrInvalidUsername
	}
	if passwordHash == "" {
		return nil, errs.ErrInvalidPassword
	}

	now := timeProvider.Now()
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		balance:      decimal.Zero,
		IsAdmin:      false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// NewAdministrator creates an administrator account with a zero balance
func NewAdministrator(username, passwordHash string, timeProvider coreport.TimeProvider) (*User, error) {
	user, err := NewUser(username, passwordHash, timeProvider)
	if err != nil {
		return nil, err
	}
	user.IsAdmin = true
	return user, nil
}

// RestoreUser rebuilds a user from persisted state (for repositories)
func RestoreUser(id uint64, username, passwordHash string, balance decimal.Decimal, isAdmin bool, createdAt, updatedAt time.Time) *User {
	return &User{
		ID:           id,
		Username:     username,
		PasswordHash: passwordHash,
		balance:      balance,
		IsAdmin:      isAdmin,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// Balance returns the current balance
func (u *User) Balance() decimal.Decimal {
	return u.balance
}

// GetBalance returns the balance as a string with 2 decimal places
func (u *User) GetBalance() string {
	return FormatMoney(u.balance)
}

// SetBalance overwrites the balance, rounding to two decimal places
func (u *User) SetBalance(balance decimal.Decimal, timeProvider coreport.TimeProvider) {
	u.balance = balance.Round(MaxDecimalPlaces)
	u.UpdatedAt = timeProvider.Now()
}

// CanWithdraw checks whether the balance covers the amount
func (u *User) CanWithdraw(amount decimal.Decimal) bool {
	return u.balance.GreaterThanOrEqual(amount)
}

// Debit subtracts the amount from the balance if sufficient balance exists
// Returns error if insufficient balance
func (u *User) Debit(amount decimal.Decimal, timeProvider coreport.TimeProvider) error {
	if !u.CanWithdraw(amount) {
		return errs.NewInsufficientBalanceError(u.ID, FormatMoney(amount), u.GetBalance())
	}

	u.balance = u.balance.Sub(amount)
	u.UpdatedAt = timeProvider.Now()
	return nil
}
