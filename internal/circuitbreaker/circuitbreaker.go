// Package circuitbreaker is a thin generic wrapper around gobreaker/v2 with
// a shared set of sane defaults for the retries this codebase performs.
package circuitbreaker

import (
	"time"

	"github.com/sony/gobreaker/v2"
)

// CircuitBreaker wraps gobreaker.CircuitBreaker[T], trading its untyped
// settings struct for one with our own defaults.
type CircuitBreaker[T any] struct {
	cb *gobreaker.CircuitBreaker[T]
}

// Config mirrors the gobreaker settings we actually vary per call site.
type Config struct {
	Name          string
	MaxRequests   uint32
	Interval      time.Duration
	Timeout       time.Duration
	FailureRatio  float64
	MinRequests   uint32
	OnStateChange func(name string, from, to gobreaker.State)
}

// DefaultConfig returns a breaker that opens after 60% of at least 5
// requests in a rolling window fail, then probes once after Timeout.
func DefaultConfig(name string) Config {
	return Config{
		Name:         name,
		MaxRequests:  1,
		Interval:     60 * time.Second,
		Timeout:      30 * time.Second,
		FailureRatio: 0.6,
		MinRequests:  5,
	}
}

// New builds a CircuitBreaker[T] from cfg.
func New[T any](cfg Config) *CircuitBreaker[T] {
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= cfg.FailureRatio
		},
	}
	if cfg.OnStateChange != nil {
		settings.OnStateChange = cfg.OnStateChange
	}
	return &CircuitBreaker[T]{cb: gobreaker.NewCircuitBreaker[T](settings)}
}

// Execute runs req through the breaker, short-circuiting with
// gobreaker.ErrOpenState while the breaker is open.
func (c *CircuitBreaker[T]) Execute(req func() (T, error)) (T, error) {
	return c.cb.Execute(req)
}

// State returns the breaker's current state.
func (c *CircuitBreaker[T]) State() gobreaker.State {
	return c.cb.State()
}
