package error

import (
	"errors"
	"fmt"
)

// Error codes used in logs
const (
	// 4xxx - Client errors
	CodeInsufficientBalance = 4001
	CodeInvalidAmount       = 4002
	CodeInvalidUserID       = 4003
	CodeDuplicateUser       = 4004
	CodeInvalidCredentials  = 4010
	CodeAlreadyReviewed     = 4090
	CodeInvalidReview       = 4220
	CodeNotFound            = 4040

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInsufficientBalance is returned when a user's balance does not cover a withdrawal
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidAmount is returned when an amount is malformed or not positive
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidUserID is returned when the user ID is zero
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidTransactionID is returned when the transaction ID is zero
	ErrInvalidTransactionID = errors.New("transaction ID must be positive")

	// ErrInvalidUsername is returned when the username is blank
	ErrInvalidUsername = errors.New("username is required")

	// ErrInvalidPassword is returned when the password is blank
	ErrInvalidPassword = errors.New("password is required")

	// ErrInvalidCredentials is returned for any failed login
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDuplicateUser is returned when the username is already taken
	ErrDuplicateUser = errors.New("username taken")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrTransactionAlreadyReviewed is returned when a non-pending transaction is reviewed again
	ErrTransactionAlreadyReviewed = errors.New("transaction already reviewed")

	// ErrInvalidReviewAction is returned for review actions other than approve/reject
	ErrInvalidReviewAction = errors.New("invalid review action")

	// ErrSessionNotFound is returned when a session token does not resolve
	ErrSessionNotFound = errors.New("session not found")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrTransactionAlreadyReviewed):
		return CodeAlreadyReviewed
	case errors.Is(err, ErrInvalidReviewAction):
		return CodeInvalidReview
	case IsNotFoundError(err):
		return CodeNotFound
	default:
		return CodeInternalServer
	}
}

// InsufficientBalanceError provides detailed error information for insufficient balance
type InsufficientBalanceError struct {
	UserID      uint64
	Amount      string
	CurrBalance string
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for user %d: required %s, available %s",
		e.UserID, e.Amount, e.CurrBalance)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_balance",
		"user_id":         e.UserID,
		"amount":          e.Amount,
		"current_balance": e.CurrBalance,
		"error_code":      CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(userID uint64, amount, currentBalance string) error {
	return &InsufficientBalanceError{
		UserID:      userID,
		Amount:      amount,
		CurrBalance: currentBalance,
	}
}

// ReviewError describes a failed administrator review of a withdrawal
type ReviewError struct {
	TransactionID uint64
	Action        string
	Status        string
	Err           error
}

// Error implements the error interface for ReviewError
func (e *ReviewError) Error() string {
	return fmt.Sprintf("review %q of transaction %d (status %s) failed: %v",
		e.Action, e.TransactionID, e.Status, e.Err)
}

// Unwrap returns the underlying error
func (e *ReviewError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ReviewError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "review_error",
		"transaction_id": e.TransactionID,
		"action":         e.Action,
		"status":         e.Status,
		"error":          e.Err.Error(),
		"error_code":     ErrorCode(e.Err),
	}
}

// NewReviewError creates a detailed review error
func NewReviewError(transactionID uint64, action, status string, err error) error {
	return &ReviewError{
		TransactionID: transactionID,
		Action:        action,
		Status:        status,
		Err:           err,
	}
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsDuplicateUserError checks if the error is a username conflict
func IsDuplicateUserError(err error) bool {
	return errors.Is(err, ErrDuplicateUser)
}

// IsValidationError reports whether err is caused by bad user input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidUsername) ||
		errors.Is(err, ErrInvalidPassword) ||
		errors.Is(err, ErrInvalidReviewAction)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrSessionNotFound)
}
