package usecase

import (
	"context"
	"errors"
	"testing"
	"time"
)

type recordedSleeps struct {
	delays []time.Duration
}

func (r *recordedSleeps) sleep(_ context.Context, d time.Duration) error {
	r.delays = append(r.delays, d)
	return nil
}

func TestRetryPolicy_Delay(t *testing.T) {
	p := RetryPolicy{BaseDelay: time.Second, MaxDelay: 30 * time.Second}
	want := []time.Duration{0, time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second, 16 * time.Second, 30 * time.Second, 30 * time.Second}
	for n, w := range want {
		if got := p.Delay(n); got != w {
			t.Fatalf("delay(%d): expected %v, got %v", n, w, got)
		}
	}
}

func TestRetryPolicy_Do(t *testing.T) {
	t.Run("succeeds on third attempt", func(t *testing.T) {
		rec := &recordedSleeps{}
		p := DefaultLeadFetchPolicy
		p.Sleep = rec.sleep
		calls := 0
		attempts, err := p.Do(context.Background(), func(context.Context) error {
			calls++
			if calls < 3 {
				return errors.New("connection reset")
			}
			return nil
		}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if attempts != 3 || calls != 3 {
			t.Fatalf("expected 3 attempts, got %d/%d", attempts, calls)
		}
		if len(rec.delays) != 2 || rec.delays[0] != time.Second || rec.delays[1] != 2*time.Second {
			t.Fatalf("unexpected delays %v", rec.delays)
		}
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		rec := &recordedSleeps{}
		p := DefaultLeadFetchPolicy
		p.Sleep = rec.sleep
		calls := 0
		boom := errors.New("boom")
		attempts, err := p.Do(context.Background(), func(context.Context) error {
			calls++
			return boom
		}, nil)
		if !errors.Is(err, boom) || attempts != 3 || calls != 3 {
			t.Fatalf("expected 3 failed attempts, got %d err=%v", attempts, err)
		}
	})

	t.Run("non retryable stops immediately", func(t *testing.T) {
		p := DefaultLeadFetchPolicy
		p.Sleep = (&recordedSleeps{}).sleep
		terminal := errors.New("not found")
		attempts, err := p.Do(context.Background(), func(context.Context) error { return terminal },
			func(err error) bool { return !errors.Is(err, terminal) })
		if attempts != 1 || !errors.Is(err, terminal) {
			t.Fatalf("expected single attempt, got %d err=%v", attempts, err)
		}
	})

	t.Run("cancelled context stops waiting", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		p := RetryPolicy{MaxRetries: 5, BaseDelay: time.Hour}
		attempts, err := p.Do(ctx, func(context.Context) error { return errors.New("x") }, nil)
		if attempts != 1 || !errors.Is(err, context.Canceled) {
			t.Fatalf("expected cancellation after first attempt, got %d err=%v", attempts, err)
		}
	})
}

func TestPollPolicy(t *testing.T) {
	t.Run("exhausts attempts", func(t *testing.T) {
		rec := &recordedSleeps{}
		p := DefaultPollPolicy
		p.Sleep = rec.sleep
		checks := 0
		done, attempts, err := p.Poll(context.Background(), func(context.Context) (bool, error) {
			checks++
			return false, nil
		})
		if done || err != nil {
			t.Fatalf("expected not done without error, got %v %v", done, err)
		}
		if attempts != 10 || checks != 10 || len(rec.delays) != 9 {
			t.Fatalf("expected 10 checks and 9 sleeps, got %d/%d/%d", attempts, checks, len(rec.delays))
		}
		for _, d := range rec.delays {
			if d != 3*time.Second {
				t.Fatalf("unexpected interval %v", d)
			}
		}
	})

	t.Run("stops when done", func(t *testing.T) {
		p := DefaultPollPolicy
		p.Sleep = (&recordedSleeps{}).sleep
		checks := 0
		done, attempts, err := p.Poll(context.Background(), func(context.Context) (bool, error) {
			checks++
			return checks == 4, nil
		})
		if !done || attempts != 4 || err != nil {
			t.Fatalf("expected done at 4, got %v %d %v", done, attempts, err)
		}
	})

	t.Run("stops on error", func(t *testing.T) {
		p := DefaultPollPolicy
		p.Sleep = (&recordedSleeps{}).sleep
		boom := errors.New("boom")
		_, attempts, err := p.Poll(context.Background(), func(context.Context) (bool, error) { return false, boom })
		if attempts != 1 || !errors.Is(err, boom) {
			t.Fatalf("expected error on first check, got %d %v", attempts, err)
		}
	})
}
