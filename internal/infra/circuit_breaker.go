package infra

import (
	"errors"
	"sync"
	"time"
)

// BreakerState is the breaker position reported by /health.
type BreakerState int

const (
	BreakerClosed BreakerState = iota
	BreakerOpen
	BreakerHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case BreakerClosed:
		return "closed"
	case BreakerOpen:
		return "open"
	case BreakerHalfOpen:
		return "half-open"
	}
	return "unknown"
}

// ErrBreakerOpen is returned by Do while the breaker is open.
var ErrBreakerOpen = errors.New("circuit breaker is open")

// Breaker guards the SMTP relay. After threshold consecutive failures it
// fails fast for coolDown, then lets a single trial call through; its outcome
// closes or re-opens the breaker. Other callers fail fast while it runs.
type Breaker struct {
	mu        sync.Mutex
	state     BreakerState
	failures  int
	trial     bool
	openedAt  time.Time
	threshold int
	coolDown  time.Duration
	now       func() time.Time
}

// NewBreaker opens after threshold consecutive failures and tries again
// after coolDown.
func NewBreaker(threshold int, coolDown time.Duration) *Breaker {
	if threshold <= 0 {
		threshold = 3
	}
	if coolDown <= 0 {
		coolDown = 30 * time.Second
	}
	return &Breaker{threshold: threshold, coolDown: coolDown, now: time.Now}
}

func (b *Breaker) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stateLocked()
}

func (b *Breaker) stateLocked() BreakerState {
	if b.state == BreakerOpen && b.now().Sub(b.openedAt) >= b.coolDown {
		b.state = BreakerHalfOpen
	}
	return b.state
}

// Do runs fn unless the breaker is open, or half-open with a trial call
// already in flight.
func (b *Breaker) Do(fn func() error) error {
	b.mu.Lock()
	state := b.stateLocked()
	if state == BreakerOpen || (state == BreakerHalfOpen && b.trial) {
		b.mu.Unlock()
		return ErrBreakerOpen
	}
	isTrial := state == BreakerHalfOpen
	if isTrial {
		b.trial = true
	}
	b.mu.Unlock()

	err := fn()

	b.mu.Lock()
	defer b.mu.Unlock()
	if isTrial {
		b.trial = false
	}
	if err == nil {
		b.state = BreakerClosed
		b.failures = 0
		return nil
	}
	b.failures++
	if isTrial || b.failures >= b.threshold {
		b.state = BreakerOpen
		b.openedAt = b.now()
		b.failures = 0
	}
	return err
}
