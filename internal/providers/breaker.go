package providers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
)

// BreakerTranslator wraps a Translator with a circuit breaker so a dead or
// slow model endpoint fails fast instead of stacking up blocked requests.
// The breaker opens after a 60% failure rate over at least 5 requests and
// probes again after 30 seconds.
type BreakerTranslator struct {
	inner Translator
	cb    *gobreaker.CircuitBreaker[string]
}

func NewBreakerTranslator(name string, inner Translator, logger *slog.Logger) *BreakerTranslator {
	cb := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 5 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("translator circuit state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	})

	return &BreakerTranslator{inner: inner, cb: cb}
}

func (t *BreakerTranslator) Translate(ctx context.Context, text string) (string, error) {
	result, err := t.cb.Execute(func() (string, error) {
		return t.inner.Translate(ctx, text)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", fmt.Errorf("%w: %v", ErrModelUnavailable, err)
		}
		return "", err
	}
	return result, nil
}
