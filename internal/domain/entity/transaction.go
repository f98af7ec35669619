package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/rewards-portal/internal/domain/error"
	coreport "github.com/amirhossein-jamali/rewards-portal/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// TransactionType tags the kind of balance movement
type TransactionType string

// Transaction types
const (
	TypeWithdrawal TransactionType = "withdrawal"
)

// TransactionStatus defines possible status values for a transaction
type TransactionStatus string

// TransactionStatus constants
const (
	StatusPending  TransactionStatus = "Pending"
	StatusApproved TransactionStatus = "Approved"
	StatusRejected TransactionStatus = "Rejected"
	StatusFailed   TransactionStatus = "Failed (Insufficient Funds)"
)

// ReviewAction is an administrator decision on a pending withdrawal
type ReviewAction string

// Review actions
const (
	ActionApprove ReviewAction = "approve"
	ActionReject  ReviewAction = "reject"
)

// ParseReviewAction validates a submitted review action
func ParseReviewAction(action string) (ReviewAction, error) {
	switch ReviewAction(action) {
	case ActionApprove, ActionReject:
		return ReviewAction(action), nil
	default:
		return "", fmt.Errorf("%w: %q", errs.ErrInvalidReviewAction, action)
	}
}

// Transaction represents a withdrawal request against a user's balance
type Transaction struct {
	ID      uint64            // Unique identifier for the transaction
	UserID  uint64            // ID of the user this transaction belongs to
	Type    TransactionType   // Always TypeWithdrawal for now
	Amount  decimal.Decimal   // Requested principal
	VATFee  decimal.Decimal   // Tax withheld, fixed at creation
	Method  string            // Payout channel
	Details string            // Free-form payout details
	Status  TransactionStatus // Review status
	Date    time.Time         // Creation time, immutable
	User    *User             // Owning user when loaded with the transaction (nullable)
}

// NewWithdrawal creates a pending withdrawal with its VAT fee computed once
func NewWithdrawal(
	userID uint64,
	amount decimal.Decimal,
	method string,
	details string,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", errs.ErrInvalidAmount)
	}

	return &Transaction{
		UserID:  userID,
		Type:    TypeWithdrawal,
		Amount:  amount,
		VATFee:  ComputeVATFee(amount),
		Method:  method,
		Details: details,
		Status:  StatusPending,
		Date:    timeProvider.Now(),
	}, nil
}

// IsPending reports whether the transaction still awaits review
func (t *Transaction) IsPending() bool {
	return t.Status == StatusPending
}

// NetAmount is the payout after VAT is withheld
func (t *Transaction) NetAmount() decimal.Decimal {
	return t.Amount.Sub(t.VATFee)
}

// Transition moves a pending transaction to a final status.
// A transaction transitions at most once.
func (t *Transaction) Transition(to TransactionStatus) error {
	if !t.IsPending() {
		return errs.ErrTransactionAlreadyReviewed
	}
	if !isFinalStatus(to) {
		return fmt.Errorf("%w: cannot transition to %q", errs.ErrInvalidReviewAction, to)
	}
	t.Status = to
	return nil
}

// OwnedBy reports whether the transaction belongs to the given user
func (t *Transaction) OwnedBy(userID uint64) bool {
	return t.UserID == userID
}

// isFinalStatus validates if the status ends the review lifecycle
func isFinalStatus(status TransactionStatus) bool {
	return status == StatusApproved || status == StatusRejected || status == StatusFailed
}
