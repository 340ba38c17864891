package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// sleepTimer drives backoff waits through a SleepFunc so tests can record delays
// without waiting.
type sleepTimer struct {
	ctx   context.Context
	sleep SleepFunc
	c     chan time.Time
}

func newSleepTimer(ctx context.Context, sleep SleepFunc) backoff.Timer {
	if sleep == nil {
		return nil
	}
	return &sleepTimer{ctx: ctx, sleep: sleep, c: make(chan time.Time, 1)}
}

// Start blocks for the wait itself; a cancelled context is picked up by the
// retry loop once C fires.
func (t *sleepTimer) Start(d time.Duration) {
	_ = t.sleep(t.ctx, d)
	t.c <- time.Now()
}

func (t *sleepTimer) Stop() {}

func (t *sleepTimer) C() <-chan time.Time { return t.c }

// RetryPolicy retries a call MaxRetries times after the first attempt with
// exponential backoff: BaseDelay, 2×BaseDelay, … capped at MaxDelay.
type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
	Sleep      SleepFunc
}

var DefaultLeadFetchPolicy = RetryPolicy{
	MaxRetries: 2,
	BaseDelay:  time.Second,
	MaxDelay:   30 * time.Second,
}

func (p RetryPolicy) exponential() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.BaseDelay
	b.RandomizationFactor = 0
	b.Multiplier = 2
	b.MaxInterval = p.MaxDelay
	if b.MaxInterval <= 0 {
		b.MaxInterval = backoff.DefaultMaxInterval
	}
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}

// Delay is the wait before retry number n (1-based).
func (p RetryPolicy) Delay(n int) time.Duration {
	if n < 1 {
		return 0
	}
	b := p.exponential()
	var d time.Duration
	for i := 0; i < n; i++ {
		d = b.NextBackOff()
	}
	return d
}

// Do runs fn until it succeeds, returns an error retryable rejects, or retries run out.
// The last error is returned along with the number of attempts made.
func (p RetryPolicy) Do(ctx context.Context, fn func(ctx context.Context) error, retryable func(error) bool) (int, error) {
	retries := p.MaxRetries
	if retries < 0 {
		retries = 0
	}
	b := backoff.WithContext(backoff.WithMaxRetries(p.exponential(), uint64(retries)), ctx)

	attempts := 0
	err := backoff.RetryNotifyWithTimer(func() error {
		attempts++
		err := fn(ctx)
		if err != nil && retryable != nil && !retryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}, b, nil, newSleepTimer(ctx, p.Sleep))
	return attempts, err
}

// PollPolicy bounds a status poll to Attempts checks, Interval apart.
type PollPolicy struct {
	Attempts int
	Interval time.Duration
	Sleep    SleepFunc
}

var DefaultPollPolicy = PollPolicy{Attempts: 10, Interval: 3 * time.Second}

var errStillWorking = errors.New("still working")

// Poll calls check up to Attempts times. It stops early when check reports done or
// fails. done is false when the attempts ran out.
func (p PollPolicy) Poll(ctx context.Context, check func(ctx context.Context) (bool, error)) (done bool, attempts int, err error) {
	limit := p.Attempts
	if limit < 1 {
		limit = 1
	}
	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(p.Interval), uint64(limit-1)), ctx)

	err = backoff.RetryNotifyWithTimer(func() error {
		attempts++
		ok, cErr := check(ctx)
		if cErr != nil {
			return backoff.Permanent(cErr)
		}
		if !ok {
			return errStillWorking
		}
		return nil
	}, b, nil, newSleepTimer(ctx, p.Sleep))

	switch {
	case err == nil:
		return true, attempts, nil
	case errors.Is(err, errStillWorking):
		return false, attempts, nil
	default:
		return false, attempts, err
	}
}
