package user

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/rewards-portal/internal/domain/entity"
	errs "github.com/amirhossein-jamali/rewards-portal/internal/domain/error"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	stored := entity.RestoreUser(5, "alice", "hashed", decimal.RequireFromString("10.00"), false, time.Time{}, time.Time{})

	t.Run("Valid credentials", func(t *testing.T) {
		f := newUserFixture(t)
		f.repo.EXPECT().GetByUsername(mock.Anything, "alice").Return(stored, nil).Once()
		f.hasher.EXPECT().Compare("hashed", "s3cret").Return(true).Once()

		user, err := f.uc.Authenticate(ctx, "alice", "s3cret")

		require.NoError(t, err)
		assert.Equal(t, uint64(5), user.ID)
	})

	t.Run("Wrong password", func(t *testing.T) {
		f := newUserFixture(t)
		f.repo.EXPECT().GetByUsername(mock.Anything, "alice").Return(stored, nil).Once()
		f.hasher.EXPECT().Compare("hashed", "nope").Return(false).Once()

		user, err := f.uc.Authenticate(ctx, "alice", "nope")

		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
		assert.Nil(t, user)
	})

	t.Run("Unknown user is indistinguishable", func(t *testing.T) {
		f := newUserFixture(t)
		f.repo.EXPECT().GetByUsername(mock.Anything, "bob").Return(nil, errs.ErrUserNotFound).Once()

		user, err := f.uc.Authenticate(ctx, "bob", "s3cret")

		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
		assert.Nil(t, user)
	})

	t.Run("Blank input", func(t *testing.T) {
		f := newUserFixture(t)

		_, err := f.uc.Authenticate(ctx, "", "s3cret")

		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("Repository failure is not masked", func(t *testing.T) {
		f := newUserFixture(t)
		f.repo.EXPECT().GetByUsername(mock.Anything, "alice").Return(nil, errs.ErrDatabaseConnection).Once()

		_, err := f.uc.Authenticate(ctx, "alice", "s3cret")

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}
