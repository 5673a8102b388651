package loginstateport

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"gitlab.com/classhub-2025.net/internal/core/ports/primary"
	"gitlab.com/classhub-2025.net/internal/core/ports/secondary"
)

const stateKeyPrefix = "loginstate:"

var _ secondary.LoginStatePort = (*LoginStateRepository)(nil)

// LoginStateRepository keeps one-time OAuth anti-replay states in Redis.
// Consumption is a single GETDEL, so two concurrent callbacks presenting
// the same state can never both succeed.
type LoginStateRepository struct {
	redisClient *redis.Client
	ttl         time.Duration
	logger      primary.Logger
}

func NewLoginStateRepository(redisClient *redis.Client, ttl time.Duration, logger primary.Logger) *LoginStateRepository {
	return &LoginStateRepository{
		redisClient: redisClient,
		ttl:         ttl,
		logger:      logger,
	}
}

// Save stores the state with its creation time and the configured TTL.
// A state that is never consumed expires instead of living forever.
func (r *LoginStateRepository) Save(ctx context.Context, state string) error {
	key := fmt.Sprintf("%s%s", stateKeyPrefix, state)
	createdAt := time.Now().UTC().Format(time.RFC3339Nano)
	if err := r.redisClient.Set(ctx, key, createdAt, r.ttl).Err(); err != nil {
		r.logger.Error("Failed to save login state", "error", err)
		return fmt.Errorf("failed to save login state: %w", err)
	}

	return nil
}

// Consume deletes and returns the state in one atomic step. True exactly
// once per saved state.
func (r *LoginStateRepository) Consume(ctx context.Context, state string) (bool, error) {
	key := fmt.Sprintf("%s%s", stateKeyPrefix, state)
	_, err := r.redisClient.GetDel(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		r.logger.Error("Failed to consume login state", "error", err)
		return false, fmt.Errorf("failed to consume login state: %w", err)
	}

	return true, nil
}
