package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-library/internal/logger"
)

// LoginAttemptRepository counts failed logins per username in Redis.
// The counter expires window after the first failure.
type LoginAttemptRepository struct {
	client *redis.Client
	window time.Duration
}

// NewLoginAttemptRepository creates a new repository instance with the given lockout window
func NewLoginAttemptRepository(client *redis.Client, window time.Duration) *LoginAttemptRepository {
	return &LoginAttemptRepository{
		client: client,
		window: window,
	}
}

func loginAttemptKey(username string) string {
	return fmt.Sprintf("login_attempts:%s", strings.ToLower(strings.TrimSpace(username)))
}

// Attempts returns the number of failures recorded inside the current window.
func (r *LoginAttemptRepository) Attempts(ctx context.Context, username string) (int, error) {
	key := loginAttemptKey(username)

	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		logger.Log.Infow("redis get", "key", key, "error", err)
		return 0, err
	}

	n, err := strconv.Atoi(val)

	logger.Log.Infow("redis get", "key", key, "value", val, "error", err)

	return n, err
}

// RegisterFailure increments the counter and starts the window on the first failure.
func (r *LoginAttemptRepository) RegisterFailure(ctx context.Context, username string) (int, error) {
	key := loginAttemptKey(username)

	n, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("redis incr", "key", key, "error", err)
		return 0, err
	}

	if n == 1 {
		err = r.client.Expire(ctx, key, r.window).Err()
	}

	logger.Log.Infow("redis incr", "key", key, "result", n, "error", err)

	return int(n), err
}

// Reset clears the counter after a successful login.
func (r *LoginAttemptRepository) Reset(ctx context.Context, username string) error {
	key := loginAttemptKey(username)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("redis del", "key", key, "error", err)

	return err
}
