package redis

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hrmsystem/hrm-api/internal/core/domain"
)

// fakeCounter keeps counters in a map and records expirations.
type fakeCounter struct {
	values  map[string]int64
	expires map[string]time.Duration
	err     error
}

func newFakeCounter() *fakeCounter {
	return &fakeCounter{values: map[string]int64{}, expires: map[string]time.Duration{}}
}

func (f *fakeCounter) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(strconv.FormatInt(v, 10), nil)
}

func (f *fakeCounter) Incr(_ context.Context, key string) *redis.IntCmd {
	f.values[key]++
	return redis.NewIntResult(f.values[key], nil)
}

func (f *fakeCounter) Expire(_ context.Context, key string, d time.Duration) *redis.BoolCmd {
	f.expires[key] = d
	return redis.NewBoolResult(true, nil)
}

func (f *fakeCounter) Del(_ context.Context, keys ...string) *redis.IntCmd {
	for _, k := range keys {
		delete(f.values, k)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

func TestSignInLimiter_LocksOutAfterMaxAttempts(t *testing.T) {
	ctx := context.Background()
	fake := newFakeCounter()
	l := NewSignInLimiter(fake, 3, 15*time.Minute)

	for i := 0; i < 3; i++ {
		if err := l.Check(ctx, "Admin@example.com"); err != nil {
			t.Fatalf("attempt %d: unexpected error %v", i+1, err)
		}
		if err := l.Fail(ctx, "Admin@example.com"); err != nil {
			t.Fatalf("fail: %v", err)
		}
	}

	if err := l.Check(ctx, "admin@example.com"); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
	if got := fake.expires["signin:fail:admin@example.com"]; got != 15*time.Minute {
		t.Fatalf("expected 15m lockout, got %v", got)
	}

	if err := l.Reset(ctx, "admin@example.com"); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if err := l.Check(ctx, "admin@example.com"); err != nil {
		t.Fatalf("expected reset to clear lockout, got %v", err)
	}
}

func TestSignInLimiter_CheckError(t *testing.T) {
	fake := newFakeCounter()
	fake.err = errors.New("connection refused")
	l := NewSignInLimiter(fake, 3, time.Minute)

	err := l.Check(context.Background(), "a@b.com")
	if err == nil || errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected backend error, got %v", err)
	}
}
