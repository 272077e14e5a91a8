package openmeteo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

// BackoffConfig controls exponential backoff between retries.
type BackoffConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultBackoff is used by NewClient and NewGeocoder.
var DefaultBackoff = BackoffConfig{
	MaxRetries:      3,
	InitialInterval: 500 * time.Millisecond,
	MaxInterval:     5 * time.Second,
}

var (
	errRateLimited = errors.New("rate limited")
	errServerError = errors.New("server error")
	// ErrCircuitOpen is returned without retrying while the breaker is open.
	ErrCircuitOpen = errors.New("circuit breaker open")
)

// StatusError is a non-retryable, non-2xx response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("open-meteo API error: status %d: %s", e.StatusCode, e.Body)
}

// transport bundles the HTTP client and resilience shared by the forecast and
// geocoding clients.
type transport struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	backoff    BackoffConfig

	// onRetry is called before each backoff sleep.
	onRetry func(attempt int, err error)
}

func newTransport(name string, timeout time.Duration, rps float64) *transport {
	return &transport{
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        name,
			MaxRequests: 1,
			Interval:    time.Minute,
			Timeout:     2 * time.Minute,
		}),
		backoff: DefaultBackoff,
	}
}

// get issues a GET with rate limiting, retries on transport errors, 429 and
// 5xx, and the circuit breaker. The caller closes the returned body.
func (t *transport) get(ctx context.Context, fullURL string) (*http.Response, error) {
	var attempt int
	for {
		if err := t.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		result, err := t.breaker.Execute(func() (interface{}, error) {
			return t.do(ctx, fullURL)
		})
		if err == nil {
			return result.(*http.Response), nil
		}

		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", ErrCircuitOpen, err)
		}
		var statusErr *StatusError
		if errors.As(err, &statusErr) || ctx.Err() != nil || attempt >= t.backoff.MaxRetries {
			return nil, err
		}

		if t.onRetry != nil {
			t.onRetry(attempt+1, err)
		}
		if err := sleep(ctx, t.delay(attempt)); err != nil {
			return nil, err
		}
		attempt++
	}
}

func (t *transport) do(ctx context.Context, fullURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: %s", errRateLimited, body)
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: status %d: %s", errServerError, resp.StatusCode, body)
	default:
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}
}

func (t *transport) delay(attempt int) time.Duration {
	d := t.backoff.InitialInterval * time.Duration(math.Pow(2, float64(attempt)))
	if t.backoff.MaxInterval > 0 && d > t.backoff.MaxInterval {
		d = t.backoff.MaxInterval
	}
	return d
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
