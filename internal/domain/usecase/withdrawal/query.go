package withdrawal

import (
	"context"

	"github.com/amirhossein-jamali/rewards-portal/internal/domain/entity"
	errs "github.com/amirhossein-jamali/rewards-portal/internal/domain/error"
)

// GetInvoice returns a withdrawal together with its owner. Only the owner and
// administrators may see it; anyone else gets ErrTransactionNotFound.
func (s *Service) GetInvoice(ctx context.Context, viewer *entity.User, transactionID uint64) (*entity.Transaction, error) {
	if viewer == nil || transactionID == 0 {
		return nil, errs.ErrTransactionNotFound
	}

	txn, err := s.transactions(ctx).GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if !viewer.IsAdmin && !txn.OwnedBy(viewer.ID) {
		s.logger.Warn("Invoice requested by non-owner", map[string]any{
			"transactionId": transactionID,
			"viewerId":      viewer.ID,
		})
		return nil, errs.ErrTransactionNotFound
	}

	return txn, nil
}

// History returns the user's transactions, newest first
func (s *Service) History(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	return s.transactions(ctx).ListByUser(ctx, userID)
}

// ListAll returns every transaction with its owner, newest first
func (s *Service) ListAll(ctx context.Context) ([]*entity.Transaction, error) {
	return s.transactions(ctx).ListAll(ctx)
}
