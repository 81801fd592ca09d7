// internal/auth/ratelimit.go
// Login attempt rate limiting. Failed attempts are counted per email
// inside a rolling window; a successful login clears the counter.

package auth

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// LoginLimiter bounds how often login can be attempted for one account.
type LoginLimiter interface {
	// Allow reports whether another attempt is permitted right now.
	Allow(ctx context.Context, email string) (bool, error)
	// RecordFailure counts a failed attempt against the account.
	RecordFailure(ctx context.Context, email string) error
	// Reset clears the account's counter after a successful login.
	Reset(ctx context.Context, email string) error
}

func loginAttemptsKey(email string) string {
	return fmt.Sprintf("login_attempts:%s", strings.ToLower(strings.TrimSpace(email)))
}

// redisLoginLimiter shares the counter across instances.
type redisLoginLimiter struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
}

func NewRedisLoginLimiter(client *redis.Client, maxAttempts int, window time.Duration) LoginLimiter {
	return &redisLoginLimiter{
		client:      client,
		maxAttempts: maxAttempts,
		window:      window,
	}
}

func (l *redisLoginLimiter) Allow(ctx context.Context, email string) (bool, error) {
	count, err := l.client.Get(ctx, loginAttemptsKey(email)).Int()
	if err == redis.Nil {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("check login attempts: %w", err)
	}
	return count < l.maxAttempts, nil
}

func (l *redisLoginLimiter) RecordFailure(ctx context.Context, email string) error {
	key := loginAttemptsKey(email)
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("record login failure: %w", err)
	}
	if count == 1 {
		// First failure in this window starts the clock.
		return l.client.Expire(ctx, key, l.window).Err()
	}
	return nil
}

func (l *redisLoginLimiter) Reset(ctx context.Context, email string) error {
	return l.client.Del(ctx, loginAttemptsKey(email)).Err()
}

// memoryLoginLimiter backs development and tests when Redis is absent.
type memoryLoginLimiter struct {
	mu          sync.Mutex
	maxAttempts int
	window      time.Duration
	failures    map[string][]time.Time
}

func NewMemoryLoginLimiter(maxAttempts int, window time.Duration) LoginLimiter {
	return &memoryLoginLimiter{
		maxAttempts: maxAttempts,
		window:      window,
		failures:    make(map[string][]time.Time),
	}
}

func (l *memoryLoginLimiter) Allow(ctx context.Context, email string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.recent(email)) < l.maxAttempts, nil
}

func (l *memoryLoginLimiter) RecordFailure(ctx context.Context, email string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := loginAttemptsKey(email)
	l.failures[key] = append(l.recent(email), time.Now())
	return nil
}

func (l *memoryLoginLimiter) Reset(ctx context.Context, email string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.failures, loginAttemptsKey(email))
	return nil
}

// recent drops failures that have aged out of the window. Callers hold
// the lock.
func (l *memoryLoginLimiter) recent(email string) []time.Time {
	key := loginAttemptsKey(email)
	cutoff := time.Now().Add(-l.window)

	kept := l.failures[key][:0]
	for _, at := range l.failures[key] {
		if at.After(cutoff) {
			kept = append(kept, at)
		}
	}
	l.failures[key] = kept
	return kept
}
