package withdrawal

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/amirhossein-jamali/rewards-portal/internal/domain/entity"
	errs "github.com/amirhossein-jamali/rewards-portal/internal/domain/error"
	coreport "github.com/amirhossein-jamali/rewards-portal/internal/domain/port/core"
	"github.com/amirhossein-jamali/rewards-portal/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/rewards-portal/internal/domain/port/usecase"
	coremocks "github.com/amirhossein-jamali/rewards-portal/mocks/port/core"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memoryStore is an in-memory UnitOfWork used to run the workflow end to end.
// Begin/Commit/Rollback are no-ops; every operation is individually atomic.
type memoryStore struct {
	mu     sync.Mutex
	clock  coreport.TimeProvider
	users  map[uint64]*entity.User
	txns   map[uint64]*entity.Transaction
	nextTx uint64
}

func newMemoryStore(clock coreport.TimeProvider) *memoryStore {
	return &memoryStore{
		clock: clock,
		users: make(map[uint64]*entity.User),
		txns:  make(map[uint64]*entity.Transaction),
	}
}

func (m *memoryStore) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (m *memoryStore) Commit(context.Context) error                       { return nil }
func (m *memoryStore) Rollback(context.Context) error                     { return nil }

func (m *memoryStore) GetUserRepository(context.Context) persistence.UserRepository {
	return m
}

func (m *memoryStore) GetTransactionRepository(context.Context) persistence.TransactionRepository {
	return memoryTransactions{m}
}

func (m *memoryStore) GetByID(_ context.Context, id uint64) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (m *memoryStore) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, errs.ErrUserNotFound
}

func (m *memoryStore) Create(_ context.Context, user *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user.ID = uint64(len(m.users) + 1)
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *memoryStore) UpdateBalance(_ context.Context, userID uint64, balance decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return errs.ErrUserNotFound
	}
	u.SetBalance(balance, m.clock)
	return nil
}

func (m *memoryStore) DebitIfSufficient(_ context.Context, userID uint64, amount decimal.Decimal) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return false, nil
	}
	if err := u.Debit(amount, m.clock); err != nil {
		return false, nil
	}
	return true, nil
}

func (m *memoryStore) ListCustomers(context.Context) ([]*entity.User, error) {
	return nil, nil
}

type memoryTransactions struct{ *memoryStore }

func (m memoryTransactions) Create(_ context.Context, tx *entity.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextTx++
	tx.ID = m.nextTx
	copied := *tx
	m.txns[tx.ID] = &copied
	return nil
}

func (m memoryTransactions) GetByID(_ context.Context, id uint64) (*entity.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tx, ok := m.txns[id]
	if !ok {
		return nil, errs.ErrTransactionNotFound
	}
	copied := *tx
	return &copied, nil
}

func (m memoryTransactions) ListByUser(_ context.Context, userID uint64) ([]*entity.Transaction, error) {
	all, _ := m.ListAll(context.Background())
	var result []*entity.Transaction
	for _, tx := range all {
		if tx.UserID == userID {
			result = append(result, tx)
		}
	}
	return result, nil
}

func (m memoryTransactions) ListAll(context.Context) ([]*entity.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]*entity.Transaction, 0, len(m.txns))
	for _, tx := range m.txns {
		copied := *tx
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (m memoryTransactions) UpdateStatus(_ context.Context, id uint64, from, to entity.TransactionStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	tx, ok := m.txns[id]
	if !ok || tx.Status != from {
		return errs.ErrTransactionAlreadyReviewed
	}
	tx.Status = to
	return nil
}

func newScenario(t *testing.T, balance string) (*Service, *memoryStore, uint64) {
	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(fixedTime).Maybe()
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	metrics := coremocks.NewMockMetrics(t)
	metrics.EXPECT().WithdrawalRequested().Maybe()
	metrics.EXPECT().WithdrawalReviewed(mock.Anything).Maybe()

	store := newMemoryStore(clock)
	user, err := entity.NewUser("alice", "hash", clock)
	require.NoError(t, err)
	user.SetBalance(decimal.RequireFromString(balance), clock)
	require.NoError(t, store.Create(context.Background(), user))

	return NewWithdrawalService(store, clock, logger, metrics), store, user.ID
}

func balanceOf(t *testing.T, store *memoryStore, userID uint64) string {
	u, err := store.GetByID(context.Background(), userID)
	require.NoError(t, err)
	return u.GetBalance()
}

func TestWithdrawalScenario(t *testing.T) {
	ctx := context.Background()
	service, store, userID := newScenario(t, "100.00")

	// Request 40.00 against 100.00
	tx, err := service.RequestWithdrawal(ctx, userID, usecase.WithdrawalRequest{Amount: "40.00", Method: "bank"})
	require.NoError(t, err)
	assert.Equal(t, "40.00", entity.FormatMoney(tx.Amount))
	assert.Equal(t, "3.00", entity.FormatMoney(tx.VATFee))
	assert.Equal(t, entity.StatusPending, tx.Status)
	assert.Equal(t, "100.00", balanceOf(t, store, userID), "request must not debit")

	// Approve it
	reviewed, err := service.ReviewWithdrawal(ctx, tx.ID, "approve")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusApproved, reviewed.Status)
	assert.Equal(t, "60.00", balanceOf(t, store, userID))

	// Request 1000.00 against 60.00
	_, err = service.RequestWithdrawal(ctx, userID, usecase.WithdrawalRequest{Amount: "1000.00"})
	var insufficient *errs.InsufficientBalanceError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, "60.00", insufficient.CurrBalance)

	history, err := service.History(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestApprovalRechecksCurrentBalance(t *testing.T) {
	ctx := context.Background()
	service, store, userID := newScenario(t, "100.00")

	tx, err := service.RequestWithdrawal(ctx, userID, usecase.WithdrawalRequest{Amount: "80.00"})
	require.NoError(t, err)

	// Administrator lowers the balance between request and approval
	require.NoError(t, store.UpdateBalance(ctx, userID, decimal.RequireFromString("50.00")))

	reviewed, err := service.ReviewWithdrawal(ctx, tx.ID, "approve")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusFailed, reviewed.Status)
	assert.Equal(t, "50.00", balanceOf(t, store, userID))
}

func TestRejectKeepsBalance(t *testing.T) {
	ctx := context.Background()
	service, store, userID := newScenario(t, "100.00")

	tx, err := service.RequestWithdrawal(ctx, userID, usecase.WithdrawalRequest{Amount: "30.00"})
	require.NoError(t, err)

	reviewed, err := service.ReviewWithdrawal(ctx, tx.ID, "reject")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusRejected, reviewed.Status)
	assert.Equal(t, "100.00", balanceOf(t, store, userID))
}

func TestStatusTransitionsAtMostOnce(t *testing.T) {
	ctx := context.Background()
	service, store, userID := newScenario(t, "100.00")

	tx, err := service.RequestWithdrawal(ctx, userID, usecase.WithdrawalRequest{Amount: "40.00"})
	require.NoError(t, err)

	_, err = service.ReviewWithdrawal(ctx, tx.ID, "approve")
	require.NoError(t, err)

	_, err = service.ReviewWithdrawal(ctx, tx.ID, "approve")
	assert.ErrorIs(t, err, errs.ErrTransactionAlreadyReviewed)

	_, err = service.ReviewWithdrawal(ctx, tx.ID, "reject")
	assert.ErrorIs(t, err, errs.ErrTransactionAlreadyReviewed)

	assert.Equal(t, "60.00", balanceOf(t, store, userID), "balance debited exactly once")
}

func TestConcurrentApprovalsNeverOverdraw(t *testing.T) {
	ctx := context.Background()
	service, store, userID := newScenario(t, "100.00")

	var ids []uint64
	for i := 0; i < 5; i++ {
		tx, err := service.RequestWithdrawal(ctx, userID, usecase.WithdrawalRequest{Amount: "30.00"})
		require.NoError(t, err)
		ids = append(ids, tx.ID)
	}

	var wg sync.WaitGroup
	statuses := make([]entity.TransactionStatus, len(ids))
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id uint64) {
			defer wg.Done()
			reviewed, err := service.ReviewWithdrawal(ctx, id, "approve")
			if err == nil {
				statuses[i] = reviewed.Status
			}
		}(i, id)
	}
	wg.Wait()

	approved := 0
	for _, status := range statuses {
		if status == entity.StatusApproved {
			approved++
		}
	}
	assert.Equal(t, 3, approved)
	assert.Equal(t, "10.00", balanceOf(t, store, userID))
}
