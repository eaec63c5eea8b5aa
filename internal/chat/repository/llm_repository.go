package repository

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// LLMRepository sends a single system + user exchange to a hosted language model and returns the text reply.
type LLMRepository interface {
	Complete(ctx context.Context, model, systemPrompt, message string) (string, error)
}

func newRequestLimiter(maxRequestPerMinute int) *rate.Limiter {
	if maxRequestPerMinute <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(maxRequestPerMinute)), 1)
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
