package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient implements redisClient over a map
type stubClient struct {
	data    map[string]string
	ttls    map[string]time.Duration
	pingErr error
	getErr  error
	closed  bool
}

func newStubClient() *stubClient {
	return &stubClient{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (s *stubClient) Get(_ context.Context, key string) *redis.StringCmd {
	if s.getErr != nil {
		return redis.NewStringResult("", s.getErr)
	}
	value, ok := s.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(value, nil)
}

func (s *stubClient) Set(_ context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	s.data[key] = value.(string)
	s.ttls[key] = ttl
	return redis.NewStatusResult("OK", nil)
}

func (s *stubClient) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, key := range keys {
		if _, ok := s.data[key]; ok {
			delete(s.data, key)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (s *stubClient) Ping(context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", s.pingErr)
}

func (s *stubClient) Close() error {
	s.closed = true
	return nil
}

func withStubClient(t *testing.T, stub *stubClient) *redis.Options {
	var opts redis.Options
	original := redisNewClient
	redisNewClient = func(o *redis.Options) redisClient {
		opts = *o
		return stub
	}
	t.Cleanup(func() { redisNewClient = original })
	return &opts
}

func TestNewRedisStore(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		stub := newStubClient()
		opts := withStubClient(t, stub)

		store, err := NewRedisStore(ctx, RedisConfig{Addr: "127.0.0.1:6379", Password: "secret", DB: 2}, time.Hour)

		require.NoError(t, err)
		require.NotNil(t, store)
		assert.Equal(t, "127.0.0.1:6379", opts.Addr)
		assert.Equal(t, "secret", opts.Password)
		assert.Equal(t, 2, opts.DB)
	})

	t.Run("ping fail", func(t *testing.T) {
		stub := newStubClient()
		stub.pingErr = errors.New("connection refused")
		withStubClient(t, stub)

		store, err := NewRedisStore(ctx, RedisConfig{Addr: "nowhere:6379"}, time.Hour)

		require.Error(t, err)
		assert.Nil(t, store)
		assert.True(t, stub.closed)
	})
}

func TestRedisStore(t *testing.T) {
	stub := newStubClient()
	withStubClient(t, stub)
	store, err := NewRedisStore(ctx, RedisConfig{Addr: "localhost:6379"}, 24*time.Hour)
	require.NoError(t, err)

	require.NoError(t, store.Set(ctx, "abc", 42))
	assert.Equal(t, "42", stub.data["session:abc"])
	assert.Equal(t, 24*time.Hour, stub.ttls["session:abc"])

	userID, ok, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint64(42), userID)

	require.NoError(t, store.Destroy(ctx, "abc"))
	_, ok, err = store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, ok)

	stub.data["session:bad"] = "not-a-number"
	_, ok, err = store.Get(ctx, "bad")
	require.NoError(t, err)
	assert.False(t, ok)

	stub.getErr = errors.New("timeout")
	_, _, err = store.Get(ctx, "abc")
	assert.Error(t, err)

	require.NoError(t, store.Close())
	assert.True(t, stub.closed)
}
