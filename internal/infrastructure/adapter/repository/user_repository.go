package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/rewards-portal/internal/domain/entity"
	errs "github.com/amirhossein-jamali/rewards-portal/internal/domain/error"
	coreport "github.com/amirhossein-jamali/rewards-portal/internal/domain/port/core"
	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// userModelToEntity converts a user model to an entity
func userModelToEntity(m *model.User) *entity.User {
	return entity.RestoreUser(m.ID, m.Username, m.Password, m.Balance, m.IsAdmin, m.CreatedAt, m.UpdatedAt)
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrUserNotFound
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		r.logger.Warn("Duplicate username", fields)
		return errs.ErrDuplicateUser
	}

	logFields := map[string]any{"error": err.Error(), "error_type": string(r.errorClassifier.Classify(err))}
	for k, v := range fields {
		logFields[k] = v
	}
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), logFields)

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	if err := r.db.WithContext(ctx).First(&userModel, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting user", err, map[string]any{"user_id": id})
	}
	return userModelToEntity(&userModel), nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userModel model.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&userModel).Error
	if err != nil {
		return nil, r.handleDatabaseError("getting user by username", err, map[string]any{"username": username})
	}
	return userModelToEntity(&userModel), nil
}

// Create creates a new user and assigns the generated ID
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		Username:  user.Username,
		Password:  user.PasswordHash,
		Balance:   user.Balance(),
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&userModel).Error; err != nil {
		return r.handleDatabaseError("creating user", err, map[string]any{"username": user.Username})
	}

	user.ID = userModel.ID
	r.logger.Debug("User row created", map[string]any{
		"user_id":  user.ID,
		"is_admin": user.IsAdmin,
	})
	return nil
}

// UpdateBalance overwrites the balance of a user
func (r *UserRepository) UpdateBalance(ctx context.Context, userID uint64, balance decimal.Decimal) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"balance":    balance,
			"updated_at": r.timeProvider.Now(),
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating balance", result.Error, map[string]any{"user_id": userID})
	}

	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

// DebitIfSufficient subtracts amount in one conditional UPDATE. The row lock taken
// by the UPDATE serializes concurrent debits, and the WHERE clause is re-checked
// against the committed balance, so the balance can never go below zero here.
func (r *UserRepository) DebitIfSufficient(ctx context.Context, userID uint64, amount decimal.Decimal) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND balance >= ?", userID, amount).
		Updates(map[string]any{
			"balance":    gorm.Expr("balance - ?", amount),
			"updated_at": r.timeProvider.Now(),
		})

	if result.Error != nil {
		return false, r.handleDatabaseError("debiting balance", result.Error, map[string]any{
			"user_id": userID,
			"amount":  entity.FormatMoney(amount),
		})
	}

	debited := result.RowsAffected == 1
	r.logger.Debug("Conditional debit", map[string]any{
		"user_id": userID,
		"amount":  entity.FormatMoney(amount),
		"debited": debited,
	})
	return debited, nil
}

// ListCustomers returns every non-admin user ordered by username
func (r *UserRepository) ListCustomers(ctx context.Context) ([]*entity.User, error) {
	var userModels []model.User
	err := r.db.WithContext(ctx).
		Where("is_admin = ?", false).
		Order("username asc").
		Find(&userModels).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing customers", err, nil)
	}

	users := make([]*entity.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, userModelToEntity(&userModels[i]))
	}
	return users, nil
}
