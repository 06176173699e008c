package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

type retryProvider struct {
	inner Provider
	cfg   RetryConfig
	sleep func(context.Context, time.Duration) error
}

// WithRetry retries transient failures with capped exponential backoff and
// ±20% jitter. A rate limit's RetryAfter replaces the computed wait. A
// rejected reply is retried once; truncation and context errors never are.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &retryProvider{inner: p, cfg: cfg, sleep: sleepCtx}
}

func (r *retryProvider) ModelID() string { return r.inner.ModelID() }

func (r *retryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	rejected := 0
	for attempt := 0; ; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}

		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return nil, err
		case errors.As(err, new(*ErrTruncated)):
			return nil, err
		case errors.As(err, new(*ErrInvalidResponse)):
			if rejected++; rejected > 1 {
				return nil, err
			}
		}
		if attempt+1 >= r.cfg.MaxAttempts {
			return nil, err
		}

		if serr := r.sleep(ctx, r.wait(attempt, err)); serr != nil {
			return nil, serr
		}
	}
}

func (r *retryProvider) wait(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	d := float64(r.cfg.InitialWait)
	for range attempt {
		d *= r.cfg.Multiplier
		if d >= float64(r.cfg.MaxWait) {
			d = float64(r.cfg.MaxWait)
			break
		}
	}
	d += d * 0.2 * (2*rand.Float64() - 1)
	return time.Duration(max(d, 0))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
