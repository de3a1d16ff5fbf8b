package service

import "context"

// NopLimiter never throttles. It stands in when no Redis is configured.
type NopLimiter struct{}

func (NopLimiter) Check(context.Context, string) error { return nil }
func (NopLimiter) Fail(context.Context, string) error  { return nil }
func (NopLimiter) Reset(context.Context, string) error { return nil }
