package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxAttempts = 10
	defaultWindow      = 15 * time.Minute
)

// LoginThrottle counts failed login attempts per subject in Redis.
// Key format: login_attempts:<subject>; the counter expires after the window
// so a quiet period clears the slate.
type LoginThrottle struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
}

// NewLoginThrottle creates a LoginThrottle wrapping the given Redis client.
func NewLoginThrottle(client *redis.Client, maxAttempts int, window time.Duration) *LoginThrottle {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &LoginThrottle{client: client, maxAttempts: maxAttempts, window: window}
}

// TooManyAttempts reports whether the subject has exhausted its attempts.
func (t *LoginThrottle) TooManyAttempts(ctx context.Context, subject string) (bool, error) {
	n, err := t.client.Get(ctx, t.key(subject)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n >= int64(t.maxAttempts), nil
}

// RecordFailure increments the subject's failure counter and starts the
// expiry window on the first failure.
func (t *LoginThrottle) RecordFailure(ctx context.Context, subject string) error {
	key := t.key(subject)
	pipe := t.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, t.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("record failure: %w", err)
	}
	return nil
}

// Reset clears the counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, subject string) error {
	return t.client.Del(ctx, t.key(subject)).Err()
}

func (t *LoginThrottle) key(subject string) string {
	return "login_attempts:" + subject
}
