package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hrmsystem/hrm-api/internal/core/domain"
)

// counter is the part of the Redis client the limiter talks to.
type counter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// SignInLimiter locks an email out after too many failed sign-ins.
// Key format: signin:fail:<email>
type SignInLimiter struct {
	client      counter
	maxAttempts int64
	lockout     time.Duration
}

// NewSignInLimiter allows maxAttempts failures per email. Each failure
// restarts the lockout window.
func NewSignInLimiter(client counter, maxAttempts int, lockout time.Duration) *SignInLimiter {
	return &SignInLimiter{client: client, maxAttempts: int64(maxAttempts), lockout: lockout}
}

func (l *SignInLimiter) Check(ctx context.Context, email string) error {
	n, err := l.client.Get(ctx, l.key(email)).Int64()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("signin limiter check: %w", err)
	}
	if n >= l.maxAttempts {
		return domain.ErrTooManyAttempts
	}
	return nil
}

func (l *SignInLimiter) Fail(ctx context.Context, email string) error {
	key := l.key(email)
	if err := l.client.Incr(ctx, key).Err(); err != nil {
		return fmt.Errorf("signin limiter incr: %w", err)
	}
	if err := l.client.Expire(ctx, key, l.lockout).Err(); err != nil {
		return fmt.Errorf("signin limiter expire: %w", err)
	}
	return nil
}

func (l *SignInLimiter) Reset(ctx context.Context, email string) error {
	if err := l.client.Del(ctx, l.key(email)).Err(); err != nil {
		return fmt.Errorf("signin limiter reset: %w", err)
	}
	return nil
}

func (l *SignInLimiter) key(email string) string {
	return "signin:fail:" + strings.ToLower(email)
}
