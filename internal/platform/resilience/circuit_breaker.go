package resilience

import (
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitState string

const (
	CircuitStateClosed   CircuitState = "closed"
	CircuitStateOpen     CircuitState = "open"
	CircuitStateHalfOpen CircuitState = "half_open"
)

// CircuitBreaker stops calls to a failing dependency for an open timeout,
// then lets a limited number of probes through before closing again.
type CircuitBreaker struct {
	mu sync.Mutex

	failureThreshold int
	openTimeout      time.Duration
	halfOpenMaxReq   int
	onStateChange    func(from, to CircuitState)

	state               CircuitState
	consecutiveFailures int
	openedAt            time.Time
	halfOpenInFlight    int
	halfOpenSuccesses   int
	now                 func() time.Time
}

func NewCircuitBreaker(cfg CircuitBreakerConfig) *CircuitBreaker {
	cfg = NormalizeCircuitBreakerConfig(cfg)

	return &CircuitBreaker{
		failureThreshold: cfg.FailureThreshold,
		openTimeout:      cfg.OpenTimeout,
		halfOpenMaxReq:   cfg.HalfOpenMaxReq,
		onStateChange:    cfg.OnStateChange,
		state:            CircuitStateClosed,
		now:              time.Now,
	}
}

func (b *CircuitBreaker) Allow() error {
	b.mu.Lock()
	from := b.state

	if b.state == CircuitStateOpen {
		if b.now().Sub(b.openedAt) < b.openTimeout {
			b.mu.Unlock()
			return ErrCircuitOpen
		}
		b.toHalfOpen()
	}

	var err error
	if b.state == CircuitStateHalfOpen {
		if b.halfOpenInFlight >= b.halfOpenMaxReq {
			err = ErrCircuitOpen
		} else {
			b.halfOpenInFlight++
		}
	}

	to := b.state
	b.mu.Unlock()
	b.notify(from, to)

	return err
}

func (b *CircuitBreaker) RecordSuccess() {
	b.mu.Lock()
	from := b.state

	switch b.state {
	case CircuitStateClosed:
		b.consecutiveFailures = 0
	case CircuitStateHalfOpen:
		if b.halfOpenInFlight > 0 {
			b.halfOpenInFlight--
		}
		b.halfOpenSuccesses++
		if b.halfOpenSuccesses >= b.halfOpenMaxReq && b.halfOpenInFlight == 0 {
			b.toClosed()
		}
	}

	to := b.state
	b.mu.Unlock()
	b.notify(from, to)
}

func (b *CircuitBreaker) RecordFailure() {
	b.mu.Lock()
	from := b.state

	switch b.state {
	case CircuitStateClosed:
		b.consecutiveFailures++
		if b.consecutiveFailures >= b.failureThreshold {
			b.toOpen()
		}
	case CircuitStateHalfOpen:
		b.toOpen()
	case CircuitStateOpen:
		b.openedAt = b.now()
	}

	to := b.state
	b.mu.Unlock()
	b.notify(from, to)
}

// Execute runs fn when the breaker allows it. Errors for which isFailure
// reports true count as failures; any other outcome counts as a success.
func (b *CircuitBreaker) Execute(fn func() error, isFailure func(error) bool) error {
	if err := b.Allow(); err != nil {
		return err
	}

	err := fn()
	if err != nil && (isFailure == nil || isFailure(err)) {
		b.RecordFailure()
	} else {
		b.RecordSuccess()
	}
	return err
}

func (b *CircuitBreaker) State() CircuitState {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitStateOpen && b.now().Sub(b.openedAt) >= b.openTimeout {
		return CircuitStateHalfOpen
	}
	return b.state
}

func (b *CircuitBreaker) notify(from, to CircuitState) {
	if from != to && b.onStateChange != nil {
		b.onStateChange(from, to)
	}
}

func (b *CircuitBreaker) toClosed() {
	b.state = CircuitStateClosed
	b.consecutiveFailures = 0
	b.halfOpenInFlight = 0
	b.halfOpenSuccesses = 0
	b.openedAt = time.Time{}
}

func (b *CircuitBreaker) toOpen() {
	b.state = CircuitStateOpen
	b.openedAt = b.now()
	b.halfOpenInFlight = 0
	b.halfOpenSuccesses = 0
}

func (b *CircuitBreaker) toHalfOpen() {
	b.state = CircuitStateHalfOpen
	b.halfOpenInFlight = 0
	b.halfOpenSuccesses = 0
}
