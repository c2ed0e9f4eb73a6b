package dota

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// RetryPolicy es la espera fija ante un 429. MaxRetries == 0 reintenta sin límite.
type RetryPolicy struct {
	Sleep      time.Duration
	MaxRetries int
	// OnRateLimit se llama antes de cada espera (para loguear)
	OnRateLimit func(attempt int, wait time.Duration)
}

var ErrMaxRetries = errors.New("se agotaron los reintentos por rate limit")

// Retry ejecuta fn y, si devuelve ErrRateLimited, duerme y reintenta.
// Cualquier otro error se devuelve tal cual.
func Retry(ctx context.Context, p RetryPolicy, fn func() error) error {
	attempt := 0
	for {
		err := fn()
		if err == nil || !errors.Is(err, ErrRateLimited) {
			return err
		}
		attempt++
		if p.MaxRetries > 0 && attempt > p.MaxRetries {
			return fmt.Errorf("%w: %v", ErrMaxRetries, err)
		}
		if p.OnRateLimit != nil {
			p.OnRateLimit(attempt, p.Sleep)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.Sleep):
		}
	}
}
