package usecase

import (
	"context"

	"github.com/amirhossein-jamali/rewards-portal/internal/domain/entity"
)

// WithdrawalRequest represents a submitted withdrawal form
type WithdrawalRequest struct {
	Amount  string `form:"amount"`
	Method  string `form:"method"`
	Details string `form:"details"`
}

// WithdrawalUseCase defines the withdrawal workflow
type WithdrawalUseCase interface {
	// RequestWithdrawal validates the request against the current balance and
	// records a pending withdrawal. The balance is not debited.
	RequestWithdrawal(ctx context.Context, userID uint64, req WithdrawalRequest) (*entity.Transaction, error)

	// ReviewWithdrawal applies an administrator decision to a pending withdrawal
	ReviewWithdrawal(ctx context.Context, transactionID uint64, action string) (*entity.Transaction, error)

	// GetInvoice returns a withdrawal with its owner if the viewer may see it
	GetInvoice(ctx context.Context, viewer *entity.User, transactionID uint64) (*entity.Transaction, error)

	// History returns the user's transactions, newest first
	History(ctx context.Context, userID uint64) ([]*entity.Transaction, error)

	// ListAll returns every transaction with its owner, newest first
	ListAll(ctx context.Context) ([]*entity.Transaction, error)
}
