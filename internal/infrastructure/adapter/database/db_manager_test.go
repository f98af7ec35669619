package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/rewards-portal/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
)

func newClock(t *testing.T) *coremocks.MockTimeProvider {
	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)).Maybe()
	clock.EXPECT().Since(mock.Anything).Return(time.Millisecond).Maybe()
	clock.EXPECT().WithTimeout(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
			return context.WithTimeout(ctx, d)
		}).Maybe()
	return clock
}

func TestManagerConnectOnce(t *testing.T) {
	// Arrange
	sqlDB, sqlMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer sqlDB.Close()

	sqlMock.ExpectPing()

	cfg := DefaultConfig()
	cfg.URL = "postgres://test"
	m := NewManagerWithDialector(cfg, postgres.New(postgres.Config{Conn: sqlDB}), logger.NewNoopLogger(), newClock(t))

	// Act
	first, err := m.Connect(context.Background())
	require.NoError(t, err)
	second, err := m.Connect(context.Background())
	require.NoError(t, err)

	// Assert
	assert.Same(t, first, second)
	assert.Same(t, first, m.DB())
	assert.NoError(t, sqlMock.ExpectationsWereMet())

	pool, err := m.SQLDB()
	require.NoError(t, err)
	assert.NotNil(t, pool)
}

func TestManagerConnectPingFailure(t *testing.T) {
	sqlDB, sqlMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer sqlDB.Close()

	sqlMock.ExpectPing().WillReturnError(errors.New("connection refused"))

	cfg := DefaultConfig()
	cfg.URL = "postgres://test"
	m := NewManagerWithDialector(cfg, postgres.New(postgres.Config{Conn: sqlDB}), logger.NewNoopLogger(), newClock(t))

	_, err = m.Connect(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to ping database")

	// The failure is sticky
	_, again := m.Connect(context.Background())
	assert.Equal(t, err, again)
}

func TestManagerBeforeConnect(t *testing.T) {
	m := NewManager(DefaultConfig(), logger.NewNoopLogger(), newClock(t))

	assert.Nil(t, m.DB())
	assert.ErrorIs(t, m.Migrate(context.Background()), ErrNotConnected)

	_, err := m.SQLDB()
	assert.ErrorIs(t, err, ErrNotConnected)

	assert.NoError(t, m.Close())
}
