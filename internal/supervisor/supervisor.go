// Package supervisor restarts a crashed worker within a bounded restart
// budget.
//
// A worker is restarted after it returns an error or panics. When more than
// Policy.MaxRestarts restarts happen within Policy.Window the supervisor gives
// up and returns ErrRestartBudgetExhausted wrapping the last failure. A worker
// that returns nil, or returns after its context was cancelled, ends
// supervision cleanly.
package supervisor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/danieljhkim/missionfuel/internal/clock"
	"github.com/danieljhkim/missionfuel/internal/ctxlog"
	"github.com/danieljhkim/missionfuel/internal/metrics"
)

// ErrRestartBudgetExhausted is returned when a worker crashes too often.
var ErrRestartBudgetExhausted = errors.New("restart budget exhausted")

// Worker is a long-running unit of work. It should return when ctx is done.
type Worker func(ctx context.Context) error

// Policy bounds restarts.
type Policy struct {
	// MaxRestarts is the number of restarts allowed within Window.
	// Zero means a crash is never restarted.
	MaxRestarts int

	// Window is the sliding period restarts are counted over.
	Window time.Duration

	// InitialBackoff is the delay before the first restart. Zero restarts
	// immediately.
	InitialBackoff time.Duration

	// MaxBackoff caps the delay; if <= 0, there is no cap beyond the
	// backoff library's default.
	MaxBackoff time.Duration
}

// DefaultPolicy allows 3 restarts in 5 seconds.
func DefaultPolicy() Policy {
	return Policy{
		MaxRestarts:    3,
		Window:         5 * time.Second,
		InitialBackoff: 100 * time.Millisecond,
		MaxBackoff:     2 * time.Second,
	}
}

// Supervisor runs a worker under a Policy.
type Supervisor struct {
	policy Policy
	clock  clock.Clock
}

// New creates a Supervisor. Non-positive windows fall back to the default.
func New(policy Policy, clk clock.Clock) *Supervisor {
	if policy.Window <= 0 {
		policy.Window = DefaultPolicy().Window
	}
	if policy.MaxRestarts < 0 {
		policy.MaxRestarts = 0
	}
	return &Supervisor{policy: policy, clock: clk}
}

// Run starts w and restarts it on failure until it finishes cleanly, ctx is
// cancelled, or the restart budget is exhausted.
func (s *Supervisor) Run(ctx context.Context, name string, w Worker) error {
	logger := ctxlog.FromContext(ctx).With("worker", name)
	delays := s.newBackOff()
	var restarts []time.Time

	for {
		err := runOnce(ctx, w)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			// Shutdown, not a crash.
			return nil
		}

		now := s.clock.Now()
		restarts = pruneBefore(restarts, now.Add(-s.policy.Window))
		if len(restarts) == 0 && delays != nil {
			// Healthy for a whole window: start the backoff over.
			delays.Reset()
		}
		if len(restarts) >= s.policy.MaxRestarts {
			logger.Error("giving up on worker", "error", err, "restarts", len(restarts), "window", s.policy.Window)
			return fmt.Errorf("%w: %s crashed %d times within %s: %w",
				ErrRestartBudgetExhausted, name, len(restarts)+1, s.policy.Window, err)
		}
		restarts = append(restarts, now)

		delay := s.nextDelay(delays)
		logger.Warn("worker crashed, restarting", "error", err, "attempt", len(restarts), "delay", delay)
		metrics.RecordRestart(name)

		if delay > 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-s.clock.After(delay):
			}
		}
	}
}

// runOnce runs w, converting a panic into an error.
func runOnce(ctx context.Context, w Worker) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("worker panic: %v", r)
		}
	}()
	return w(ctx)
}

func (s *Supervisor) newBackOff() *backoff.ExponentialBackOff {
	if s.policy.InitialBackoff <= 0 {
		return nil
	}
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.policy.InitialBackoff
	b.RandomizationFactor = 0
	if s.policy.MaxBackoff > 0 {
		b.MaxInterval = s.policy.MaxBackoff
	}
	b.Reset()
	return b
}

func (s *Supervisor) nextDelay(b *backoff.ExponentialBackOff) time.Duration {
	if b == nil {
		return 0
	}
	d := b.NextBackOff()
	if d == backoff.Stop {
		return s.policy.MaxBackoff
	}
	return d
}

// pruneBefore drops restart times older than cutoff. times is sorted.
func pruneBefore(times []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(times) && !times[i].After(cutoff) {
		i++
	}
	return times[i:]
}
