package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxFailures = 5
	defaultWindow      = 15 * time.Minute
)

// LoginThrottle counts consecutive login failures per phone number.
// Key format: login_failures:<phone>
type LoginThrottle struct {
	client      *redis.Client
	maxFailures int
	window      time.Duration
}

// NewLoginThrottle creates a LoginThrottle. Non-positive limits fall back to
// 5 failures per 15 minutes.
func NewLoginThrottle(client *redis.Client, maxFailures int, window time.Duration) *LoginThrottle {
	if maxFailures <= 0 {
		maxFailures = defaultMaxFailures
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &LoginThrottle{client: client, maxFailures: maxFailures, window: window}
}

// Blocked reports whether the phone has exhausted its failure budget.
func (t *LoginThrottle) Blocked(ctx context.Context, phone string) (bool, error) {
	n, err := t.client.Get(ctx, t.key(phone)).Int()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n >= t.maxFailures, nil
}

// RecordFailure increments the counter and refreshes the window.
func (t *LoginThrottle) RecordFailure(ctx context.Context, phone string) error {
	key := t.key(phone)
	pipe := t.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, t.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("throttle record: %w", err)
	}
	return nil
}

// Reset clears the counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, phone string) error {
	return t.client.Del(ctx, t.key(phone)).Err()
}

func (t *LoginThrottle) key(phone string) string {
	return "login_failures:" + phone
}
