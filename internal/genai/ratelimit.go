package genai

import (
	"context"
	"sync"
	"time"

	"github.com/ykhadiri/alkimiya/internal/elements"
)

// RateLimited wraps a Generator with a token bucket limiter. Free-tier
// Gemini keys are limited per minute; the wrapper makes a burst of detail,
// speech and mixing calls queue instead of failing.
type RateLimited struct {
	inner    Generator
	rpm      int
	mu       sync.Mutex
	tokens   int
	lastFill time.Time
}

// NewRateLimited wraps the given generator with a limiter that allows at
// most rpm requests per minute.
func NewRateLimited(inner Generator, rpm int) Generator {
	return &RateLimited{
		inner:    inner,
		rpm:      rpm,
		tokens:   rpm,
		lastFill: time.Now(),
	}
}

func (r *RateLimited) Name() string { return r.inner.Name() }

func (r *RateLimited) ElementDetails(ctx context.Context, el elements.Element) (*ElementDetails, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.inner.ElementDetails(ctx, el)
}

func (r *RateLimited) Speech(ctx context.Context, text string, lang elements.Lang) ([]byte, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.inner.Speech(ctx, text, lang)
}

func (r *RateLimited) Combine(ctx context.Context, els []elements.Element) (*Compound, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.inner.Combine(ctx, els)
}

func (r *RateLimited) wait(ctx context.Context) error {
	for {
		r.mu.Lock()
		now := time.Now()
		elapsed := now.Sub(r.lastFill)

		// Refill tokens based on elapsed time.
		refill := int(elapsed.Seconds() * float64(r.rpm) / 60.0)
		if refill > 0 {
			r.tokens += refill
			if r.tokens > r.rpm {
				r.tokens = r.rpm
			}
			r.lastFill = now
		}

		if r.tokens > 0 {
			r.tokens--
			r.mu.Unlock()
			return nil
		}
		r.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(100 * time.Millisecond):
		}
	}
}
