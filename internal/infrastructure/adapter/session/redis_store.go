package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/amirhossein-jamali/rewards-portal/internal/domain/port/persistence"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

// redisClient is the subset of *redis.Client the store needs
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

// redisNewClient builds the client, replaced in tests
var redisNewClient = func(opt *redis.Options) redisClient {
	return redis.NewClient(opt)
}

// RedisConfig holds the Redis connection settings
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// RedisStore keeps sessions in Redis so they survive restarts and are
// shared by every instance.
type RedisStore struct {
	client redisClient
	ttl    time.Duration
}

// NewRedisStore connects to Redis and verifies the connection
func NewRedisStore(ctx context.Context, cfg RedisConfig, ttl time.Duration) (*RedisStore, error) {
	client := redisNewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}
	return &RedisStore{client: client, ttl: ttl}, nil
}

var _ persistence.SessionStore = (*RedisStore)(nil)

// Get returns the user bound to sessionID; expiry is enforced by Redis
func (s *RedisStore) Get(ctx context.Context, sessionID string) (uint64, bool, error) {
	value, err := s.client.Get(ctx, redisKeyPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to load session: %w", err)
	}

	userID, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		// Corrupt entries behave like a missing session
		return 0, false, nil
	}
	return userID, true, nil
}

// Set binds sessionID to userID with the store's TTL
func (s *RedisStore) Set(ctx context.Context, sessionID string, userID uint64) error {
	err := s.client.Set(ctx, redisKeyPrefix+sessionID, strconv.FormatUint(userID, 10), s.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Destroy deletes sessionID
func (s *RedisStore) Destroy(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Close closes the Redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}
