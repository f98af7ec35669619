package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirhossein-jamali/rewards-portal/internal/domain/entity"
	errs "github.com/amirhossein-jamali/rewards-portal/internal/domain/error"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var transactionColumns = []string{"id", "user_id", "type", "amount", "vat_fee", "method", "details", "status", "date"}

func TestTransactionRepositoryCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db, noopLogger)
	mock.ExpectQuery(`INSERT INTO "transactions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	txn := &entity.Transaction{
		UserID: 7,
		Type:   entity.TypeWithdrawal,
		Amount: decimal.RequireFromString("40.00"),
		VATFee: decimal.RequireFromString("3.00"),
		Method: "bank",
		Status: entity.StatusPending,
		Date:   fixedTime,
	}

	err := repo.Create(context.Background(), txn)

	require.NoError(t, err)
	assert.Equal(t, uint64(42), txn.ID)
}

func TestTransactionRepositoryGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Loads owning user", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTransactionRepository(db, noopLogger)
		mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE "transactions"."id" = \$1`).
			WillReturnRows(sqlmock.NewRows(transactionColumns).
				AddRow(42, 7, "withdrawal", "40.00", "3.00", "bank", "IBAN", "Pending", fixedTime))
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"."id" = \$1`).
			WithArgs(7).
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(7, "alice", "hash", "100.00", false, fixedTime, fixedTime))

		txn, err := repo.GetByID(ctx, 42)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusPending, txn.Status)
		assert.Equal(t, "3.00", entity.FormatMoney(txn.VATFee))
		require.NotNil(t, txn.User)
		assert.Equal(t, "alice", txn.User.Username)
	})

	t.Run("Not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTransactionRepository(db, noopLogger)
		mock.ExpectQuery(`SELECT \* FROM "transactions"`).WillReturnRows(sqlmock.NewRows(transactionColumns))

		_, err := repo.GetByID(ctx, 404)

		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})
}

func TestTransactionRepositoryListByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db, noopLogger)
	mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE user_id = \$1 ORDER BY date desc, id desc`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows(transactionColumns).
			AddRow(43, 7, "withdrawal", "10.00", "0.75", "bank", "", "Pending", fixedTime).
			AddRow(42, 7, "withdrawal", "40.00", "3.00", "bank", "", "Approved", fixedTime))

	txns, err := repo.ListByUser(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, uint64(43), txns[0].ID)
	assert.Equal(t, entity.StatusApproved, txns[1].Status)
}

func TestTransactionRepositoryUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Pending row transitions", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTransactionRepository(db, noopLogger)
		mock.ExpectExec(`UPDATE "transactions" SET "status"=\$1 WHERE id = \$2 AND status = \$3`).
			WithArgs("Approved", 42, "Pending").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(ctx, 42, entity.StatusPending, entity.StatusApproved)

		require.NoError(t, err)
	})

	t.Run("Already reviewed", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTransactionRepository(db, noopLogger)
		mock.ExpectExec(`UPDATE "transactions"`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "transactions" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		err := repo.UpdateStatus(ctx, 42, entity.StatusPending, entity.StatusApproved)

		assert.ErrorIs(t, err, errs.ErrTransactionAlreadyReviewed)
	})

	t.Run("Missing row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTransactionRepository(db, noopLogger)
		mock.ExpectExec(`UPDATE "transactions"`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "transactions"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		err := repo.UpdateStatus(ctx, 404, entity.StatusPending, entity.StatusRejected)

		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})
}

func TestErrorClassifier(t *testing.T) {
	c := NewErrorClassifier()

	assert.Equal(t, DuplicateKeyError, c.Classify(stringErr("Error 1062 (23000): Duplicate entry 'alice' for key 'idx_users_username'")))
	assert.Equal(t, ForeignKeyError, c.Classify(stringErr(`insert or update on table "transactions" violates foreign key constraint`)))
	assert.Equal(t, LockError, c.Classify(stringErr("ERROR: deadlock detected (SQLSTATE 40P01)")))
	assert.Equal(t, ConnectionError, c.Classify(stringErr("dial tcp 127.0.0.1:5432: connect: connection refused")))
	assert.Equal(t, ErrorType(""), c.Classify(nil))
}

type stringErr string

func (e stringErr) Error() string { return string(e) }
