package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/rewards-portal/internal/domain/entity"
	errs "github.com/amirhossein-jamali/rewards-portal/internal/domain/error"
	coreport "github.com/amirhossein-jamali/rewards-portal/internal/domain/port/core"
	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// newestFirst orders by creation time with the ID as tie breaker
const newestFirst = "date desc, id desc"

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// transactionModelToEntity converts a transaction model to an entity
func transactionModelToEntity(m *model.Transaction) *entity.Transaction {
	txn := &entity.Transaction{
		ID:      m.ID,
		UserID:  m.UserID,
		Type:    entity.TransactionType(m.Type),
		Amount:  m.Amount,
		VATFee:  m.VATFee,
		Method:  m.Method,
		Details: m.Details,
		Status:  entity.TransactionStatus(m.Status),
		Date:    m.Date,
	}
	if m.User != nil {
		txn.User = userModelToEntity(m.User)
	}
	return txn
}

func transactionModelsToEntities(models []model.Transaction) []*entity.Transaction {
	txns := make([]*entity.Transaction, 0, len(models))
	for i := range models {
		txns = append(txns, transactionModelToEntity(&models[i]))
	}
	return txns
}

// handleDatabaseError standardizes database error handling
func (r *TransactionRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrTransactionNotFound
	}

	if r.errorClassifier.IsForeignKeyError(err) {
		return errs.ErrUserNotFound
	}

	logFields := map[string]any{"error": err.Error(), "error_type": string(r.errorClassifier.Classify(err))}
	for k, v := range fields {
		logFields[k] = v
	}
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), logFields)

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create saves a new transaction and assigns the generated ID
func (r *TransactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	txnModel := model.Transaction{
		UserID:  txn.UserID,
		Type:    string(txn.Type),
		Amount:  txn.Amount,
		VATFee:  txn.VATFee,
		Method:  txn.Method,
		Details: txn.Details,
		Status:  string(txn.Status),
		Date:    txn.Date,
	}

	if err := r.db.WithContext(ctx).Create(&txnModel).Error; err != nil {
		return r.handleDatabaseError("creating transaction", err, map[string]any{"user_id": txn.UserID})
	}

	txn.ID = txnModel.ID
	return nil
}

// GetByID retrieves a transaction with its owning user
func (r *TransactionRepository) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	var txnModel model.Transaction
	if err := r.db.WithContext(ctx).Preload("User").First(&txnModel, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting transaction", err, map[string]any{"transaction_id": id})
	}
	return transactionModelToEntity(&txnModel), nil
}

// ListByUser returns a user's transactions, newest first
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	var txnModels []model.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order(newestFirst).
		Find(&txnModels).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing user transactions", err, map[string]any{"user_id": userID})
	}
	return transactionModelsToEntities(txnModels), nil
}

// ListAll returns every transaction with its owning user, newest first
func (r *TransactionRepository) ListAll(ctx context.Context) ([]*entity.Transaction, error) {
	var txnModels []model.Transaction
	err := r.db.WithContext(ctx).
		Preload("User").
		Order(newestFirst).
		Find(&txnModels).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing transactions", err, nil)
	}
	return transactionModelsToEntities(txnModels), nil
}

// UpdateStatus moves a transaction from one status to another. The status
// condition in the WHERE clause makes the transition happen at most once.
func (r *TransactionRepository) UpdateStatus(ctx context.Context, id uint64, from, to entity.TransactionStatus) error {
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ? AND status = ?", id, string(from)).
		Update("status", string(to))

	if result.Error != nil {
		return r.handleDatabaseError("updating transaction status", result.Error, map[string]any{
			"transaction_id": id,
			"to":             string(to),
		})
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&model.Transaction{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return r.handleDatabaseError("checking transaction", err, map[string]any{"transaction_id": id})
		}
		if count == 0 {
			return errs.ErrTransactionNotFound
		}
		return errs.ErrTransactionAlreadyReviewed
	}

	return nil
}
