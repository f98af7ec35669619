package withdrawal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/rewards-portal/internal/domain/entity"
	errs "github.com/amirhossein-jamali/rewards-portal/internal/domain/error"
	"github.com/amirhossein-jamali/rewards-portal/internal/domain/port/usecase"
	coremocks "github.com/amirhossein-jamali/rewards-portal/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/rewards-portal/mocks/port/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Key for transaction context
const txKey contextKey = "tx"

var fixedTime = time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

type serviceFixture struct {
	uow     *persistencemocks.MockUnitOfWork
	users   *persistencemocks.MockUserRepository
	txns    *persistencemocks.MockTransactionRepository
	time    *coremocks.MockTimeProvider
	logger  *coremocks.MockLogger
	metrics *coremocks.MockMetrics
	service *Service
}

func newServiceFixture(t *testing.T) *serviceFixture {
	f := &serviceFixture{
		uow:     persistencemocks.NewMockUnitOfWork(t),
		users:   persistencemocks.NewMockUserRepository(t),
		txns:    persistencemocks.NewMockTransactionRepository(t),
		time:    coremocks.NewMockTimeProvider(t),
		logger:  coremocks.NewMockLogger(t),
		metrics: coremocks.NewMockMetrics(t),
	}
	f.uow.EXPECT().GetUserRepository(mock.Anything).Return(f.users).Maybe()
	f.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(f.txns).Maybe()
	f.time.EXPECT().Now().Return(fixedTime).Maybe()
	f.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	f.service = NewWithdrawalService(f.uow, f.time, f.logger, f.metrics)
	return f
}

func userWithBalance(id uint64, balance string) *entity.User {
	return entity.RestoreUser(id, "alice", "hash", decimal.RequireFromString(balance), false, fixedTime, fixedTime)
}

func pendingWithdrawal(id, userID uint64, amount string) *entity.Transaction {
	value := decimal.RequireFromString(amount)
	return &entity.Transaction{
		ID:     id,
		UserID: userID,
		Type:   entity.TypeWithdrawal,
		Amount: value,
		VATFee: entity.ComputeVATFee(value),
		Status: entity.StatusPending,
		Date:   fixedTime,
	}
}

func decimalEq(s string) any {
	want := decimal.RequireFromString(s)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

func TestRequestWithdrawal(t *testing.T) {
	ctx := context.Background()

	t.Run("Accepted request", func(t *testing.T) {
		// Arrange
		f := newServiceFixture(t)
		f.users.EXPECT().GetByID(mock.Anything, uint64(1)).Return(userWithBalance(1, "100.00"), nil).Once()
		f.txns.EXPECT().Create(mock.Anything, mock.MatchedBy(func(tx *entity.Transaction) bool {
			return tx.UserID == 1 && tx.Status == entity.StatusPending
		})).Run(func(_ context.Context, tx *entity.Transaction) {
			tx.ID = 42
		}).Return(nil).Once()
		f.metrics.EXPECT().WithdrawalRequested().Once()

		// Act
		tx, err := f.service.RequestWithdrawal(ctx, 1, usecase.WithdrawalRequest{
			Amount:  "40.00",
			Method:  " paypal ",
			Details: "alice@example.com",
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, uint64(42), tx.ID)
		assert.Equal(t, "40.00", entity.FormatMoney(tx.Amount))
		assert.Equal(t, "3.00", entity.FormatMoney(tx.VATFee))
		assert.Equal(t, "paypal", tx.Method)
		assert.Equal(t, entity.StatusPending, tx.Status)
	})

	t.Run("Amount exceeding balance creates nothing", func(t *testing.T) {
		f := newServiceFixture(t)
		f.users.EXPECT().GetByID(mock.Anything, uint64(1)).Return(userWithBalance(1, "60.5"), nil).Once()

		tx, err := f.service.RequestWithdrawal(ctx, 1, usecase.WithdrawalRequest{Amount: "1000.00"})

		require.Error(t, err)
		assert.Nil(t, tx)
		var insufficient *errs.InsufficientBalanceError
		require.True(t, errors.As(err, &insufficient))
		assert.Equal(t, "60.50", insufficient.CurrBalance)
		f.txns.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Malformed amounts", func(t *testing.T) {
		for _, amount := range []string{"", "abc", "0", "-10", "10.001", "1e2"} {
			t.Run(amount, func(t *testing.T) {
				f := newServiceFixture(t)

				tx, err := f.service.RequestWithdrawal(ctx, 1, usecase.WithdrawalRequest{Amount: amount})

				assert.ErrorIs(t, err, errs.ErrInvalidAmount)
				assert.Nil(t, tx)
			})
		}
	})

	t.Run("Persistence failure", func(t *testing.T) {
		f := newServiceFixture(t)
		f.users.EXPECT().GetByID(mock.Anything, uint64(1)).Return(userWithBalance(1, "100.00"), nil).Once()
		f.txns.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDatabaseConnection).Once()

		_, err := f.service.RequestWithdrawal(ctx, 1, usecase.WithdrawalRequest{Amount: "10"})

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestReviewWithdrawal(t *testing.T) {
	ctx := context.Background()
	txCtx := context.WithValue(ctx, txKey, "mockTransaction")

	t.Run("Approve with sufficient balance", func(t *testing.T) {
		f := newServiceFixture(t)
		f.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		f.txns.EXPECT().GetByID(txCtx, uint64(9)).Return(pendingWithdrawal(9, 1, "40.00"), nil).Once()
		f.users.EXPECT().DebitIfSufficient(txCtx, uint64(1), decimalEq("40")).Return(true, nil).Once()
		f.txns.EXPECT().UpdateStatus(txCtx, uint64(9), entity.StatusPending, entity.StatusApproved).Return(nil).Once()
		f.uow.EXPECT().Commit(txCtx).Return(nil).Once()
		f.metrics.EXPECT().WithdrawalReviewed(string(entity.StatusApproved)).Once()

		tx, err := f.service.ReviewWithdrawal(ctx, 9, "approve")

		require.NoError(t, err)
		assert.Equal(t, entity.StatusApproved, tx.Status)
		f.uow.AssertNotCalled(t, "Rollback", mock.Anything)
	})

	t.Run("Approve with insufficient balance fails the withdrawal", func(t *testing.T) {
		f := newServiceFixture(t)
		f.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		f.txns.EXPECT().GetByID(txCtx, uint64(9)).Return(pendingWithdrawal(9, 1, "40.00"), nil).Once()
		f.users.EXPECT().DebitIfSufficient(txCtx, uint64(1), decimalEq("40")).Return(false, nil).Once()
		f.txns.EXPECT().UpdateStatus(txCtx, uint64(9), entity.StatusPending, entity.StatusFailed).Return(nil).Once()
		f.uow.EXPECT().Commit(txCtx).Return(nil).Once()
		f.metrics.EXPECT().WithdrawalReviewed(string(entity.StatusFailed)).Once()

		tx, err := f.service.ReviewWithdrawal(ctx, 9, "approve")

		require.NoError(t, err)
		assert.Equal(t, entity.StatusFailed, tx.Status)
	})

	t.Run("Reject never touches balances", func(t *testing.T) {
		f := newServiceFixture(t)
		f.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		f.txns.EXPECT().GetByID(txCtx, uint64(9)).Return(pendingWithdrawal(9, 1, "40.00"), nil).Once()
		f.txns.EXPECT().UpdateStatus(txCtx, uint64(9), entity.StatusPending, entity.StatusRejected).Return(nil).Once()
		f.uow.EXPECT().Commit(txCtx).Return(nil).Once()
		f.metrics.EXPECT().WithdrawalReviewed(string(entity.StatusRejected)).Once()

		tx, err := f.service.ReviewWithdrawal(ctx, 9, "reject")

		require.NoError(t, err)
		assert.Equal(t, entity.StatusRejected, tx.Status)
		f.users.AssertNotCalled(t, "DebitIfSufficient", mock.Anything, mock.Anything, mock.Anything)
		f.users.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Already reviewed", func(t *testing.T) {
		f := newServiceFixture(t)
		approved := pendingWithdrawal(9, 1, "40.00")
		approved.Status = entity.StatusApproved
		f.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		f.txns.EXPECT().GetByID(txCtx, uint64(9)).Return(approved, nil).Once()
		f.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		tx, err := f.service.ReviewWithdrawal(ctx, 9, "approve")

		assert.Nil(t, tx)
		assert.ErrorIs(t, err, errs.ErrTransactionAlreadyReviewed)
		var reviewErr *errs.ReviewError
		require.True(t, errors.As(err, &reviewErr))
		assert.Equal(t, "Approved", reviewErr.Status)
		f.users.AssertNotCalled(t, "DebitIfSufficient", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Concurrent review loses the status race and rolls back the debit", func(t *testing.T) {
		f := newServiceFixture(t)
		f.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		f.txns.EXPECT().GetByID(txCtx, uint64(9)).Return(pendingWithdrawal(9, 1, "40.00"), nil).Once()
		f.users.EXPECT().DebitIfSufficient(txCtx, uint64(1), decimalEq("40")).Return(true, nil).Once()
		f.txns.EXPECT().UpdateStatus(txCtx, uint64(9), entity.StatusPending, entity.StatusApproved).
			Return(errs.ErrTransactionAlreadyReviewed).Once()
		f.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		_, err := f.service.ReviewWithdrawal(ctx, 9, "approve")

		assert.ErrorIs(t, err, errs.ErrTransactionAlreadyReviewed)
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("Unknown action changes nothing", func(t *testing.T) {
		f := newServiceFixture(t)

		_, err := f.service.ReviewWithdrawal(ctx, 9, "cancel")

		assert.ErrorIs(t, err, errs.ErrInvalidReviewAction)
		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("Unknown transaction", func(t *testing.T) {
		f := newServiceFixture(t)
		f.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		f.txns.EXPECT().GetByID(txCtx, uint64(404)).Return(nil, errs.ErrTransactionNotFound).Once()
		f.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		_, err := f.service.ReviewWithdrawal(ctx, 404, "reject")

		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})
}

func TestGetInvoice(t *testing.T) {
	ctx := context.Background()
	owner := userWithBalance(1, "10.00")
	stranger := entity.RestoreUser(2, "bob", "hash", decimal.Zero, false, fixedTime, fixedTime)
	admin := entity.RestoreUser(3, "root", "hash", decimal.Zero, true, fixedTime, fixedTime)

	t.Run("Owner and administrator may view", func(t *testing.T) {
		for _, viewer := range []*entity.User{owner, admin} {
			f := newServiceFixture(t)
			tx := pendingWithdrawal(9, 1, "40.00")
			tx.User = owner
			f.txns.EXPECT().GetByID(mock.Anything, uint64(9)).Return(tx, nil).Once()

			got, err := f.service.GetInvoice(ctx, viewer, 9)

			require.NoError(t, err)
			assert.Equal(t, "alice", got.User.Username)
		}
	})

	t.Run("Other users see nothing", func(t *testing.T) {
		f := newServiceFixture(t)
		f.txns.EXPECT().GetByID(mock.Anything, uint64(9)).Return(pendingWithdrawal(9, 1, "40.00"), nil).Once()

		got, err := f.service.GetInvoice(ctx, stranger, 9)

		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
		assert.Nil(t, got)
	})

	t.Run("Missing transaction", func(t *testing.T) {
		f := newServiceFixture(t)
		f.txns.EXPECT().GetByID(mock.Anything, uint64(9)).Return(nil, errs.ErrTransactionNotFound).Once()

		_, err := f.service.GetInvoice(ctx, owner, 9)

		assert.True(t, errs.IsNotFoundError(err))
	})
}
