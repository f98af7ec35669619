package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	coreport "github.com/amirhossein-jamali/rewards-portal/internal/domain/port/core"
	"github.com/amirhossein-jamali/rewards-portal/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/database/migration"
	"gorm.io/gorm"
)

// ErrNotConnected is returned when the manager is used before Connect
var ErrNotConnected = errors.New("database not connected")

// Manager manages the database connection lifecycle
type Manager struct {
	config       *Config
	dialector    gorm.Dialector
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider

	once       sync.Once
	connectErr error
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// NewManagerWithDialector creates a manager that opens the given dialector
// instead of the one derived from config.
func NewManagerWithDialector(config *Config, dialector gorm.Dialector, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	m := NewManager(config, logger, timeProvider)
	m.dialector = dialector
	return m
}

// Connect opens the connection pool and verifies it. Only the first call does
// any work, later calls return the same result.
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	m.once.Do(func() {
		m.db, m.connectErr = m.connect(ctx)
	})
	return m.db, m.connectErr
}

func (m *Manager) connect(ctx context.Context) (*gorm.DB, error) {
	m.logger.Info("Connecting to database", map[string]any{
		"driver": m.config.Driver,
	})

	dialector := m.dialector
	if dialector == nil {
		var err error
		if dialector, err = m.config.Dialector(); err != nil {
			return nil, err
		}
	}

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger:                                   NewDatabaseLogger(m.logger, m.timeProvider, m.config.LogLevel),
		NowFunc:                                  m.timeProvider.Now,
		DisableForeignKeyConstraintWhenMigrating: true,
		DisableAutomaticPing:                     true,
	})
	if err != nil {
		m.logger.Error("Failed to connect to database", map[string]any{"error": err.Error()})
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	pingCtx, cancel := m.timeProvider.WithTimeout(ctx, m.config.QueryTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		m.logger.Error("Database ping failed", map[string]any{"error": err.Error()})
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	m.logger.Info("Successfully connected to database", map[string]any{
		"driver":         m.config.Driver,
		"max_open_conns": m.config.MaxOpenConns,
		"max_idle_conns": m.config.MaxIdleConns,
	})

	return gormDB, nil
}

// DB returns the GORM database instance, nil before Connect
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// SQLDB returns the underlying connection pool
func (m *Manager) SQLDB() (*sql.DB, error) {
	if m.db == nil {
		return nil, ErrNotConnected
	}
	return m.db.DB()
}

// Migrate brings the schema up to date
func (m *Manager) Migrate(ctx context.Context) error {
	if m.db == nil {
		return ErrNotConnected
	}
	return migration.NewMigrationManager(m.db, m.logger, m.timeProvider).MigrateAll(ctx)
}

// Close closes the database connection
func (m *Manager) Close() error {
	if m.db == nil {
		return nil
	}

	m.logger.Info("Closing database connection", nil)

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	return sqlDB.Close()
}

// WithTimeout returns a context with timeout for database operations
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return m.timeProvider.WithTimeout(ctx, m.config.QueryTimeout)
}

// CreateUnitOfWork creates a new UnitOfWork instance
func (m *Manager) CreateUnitOfWork() persistence.UnitOfWork {
	return NewUnitOfWork(m.db, m.logger, m.timeProvider)
}
