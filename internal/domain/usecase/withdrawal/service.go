package withdrawal

import (
	"context"

	coreport "github.com/amirhossein-jamali/rewards-portal/internal/domain/port/core"
	"github.com/amirhossein-jamali/rewards-portal/internal/domain/port/persistence"
)

// Service implements the withdrawal workflow: request, review and the read
// side backing dashboards and invoices
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	metrics      coreport.Metrics
}

// NewWithdrawalService creates a new withdrawal service
func NewWithdrawalService(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.Metrics,
) *Service {
	return &Service{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
		metrics:      metrics,
	}
}

// users returns a user repository bound to the transaction in ctx, if any
func (s *Service) users(ctx context.Context) persistence.UserRepository {
	return s.uow.GetUserRepository(ctx)
}

// transactions returns a transaction repository bound to the transaction in ctx, if any
func (s *Service) transactions(ctx context.Context) persistence.TransactionRepository {
	return s.uow.GetTransactionRepository(ctx)
}
