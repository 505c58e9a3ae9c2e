package readiness

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/bryanwweber/backend-posts-api-redcell/internal/metrics"
)

// State enumerates the lifecycle of the gate.
type State int

const (
	// StatePending means Wait has not been called yet.
	StatePending State = iota
	// StateProbing means the gate is actively checking the dependency.
	StateProbing
	// StateReady means the dependency answered the required number of consecutive probes.
	StateReady
	// StateFailed means the attempt budget was exhausted or the wait was cancelled.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateProbing:
		return "probing"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Probe checks whether the dependency can accept connections. It must be
// cheap and side-effect free; the gate calls it under a per-attempt timeout.
type Probe func(ctx context.Context) error

// Policy bounds the probing loop. Exhausting MaxAttempts is fatal: the gate
// reports failure to the caller instead of retrying forever.
type Policy struct {
	Interval         time.Duration
	ProbeTimeout     time.Duration
	MaxAttempts      int
	SuccessThreshold int
	OnRetry          func(attempt int, err error)
}

const (
	defaultInterval         = 1 * time.Second
	defaultProbeTimeout     = 5 * time.Second
	defaultMaxAttempts      = 10
	defaultSuccessThreshold = 1
)

// Gate blocks dependents until a dependency reports healthy. It is the
// in-process equivalent of an orchestrator health check: probe at a fixed
// interval, require consecutive successes, give up after a bounded number
// of attempts.
type Gate struct {
	probe  Probe
	policy Policy
	clock  clockwork.Clock

	mu    sync.Mutex
	state State
}

// NewGate creates a gate for the given probe. Zero policy fields fall back
// to the defaults (1s interval, 5s probe timeout, 10 attempts, 1 success).
func NewGate(probe Probe, policy Policy, clock clockwork.Clock) *Gate {
	if policy.Interval <= 0 {
		policy.Interval = defaultInterval
	}
	if policy.ProbeTimeout <= 0 {
		policy.ProbeTimeout = defaultProbeTimeout
	}
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = defaultMaxAttempts
	}
	if policy.SuccessThreshold < 1 {
		policy.SuccessThreshold = defaultSuccessThreshold
	}

	return &Gate{
		probe:  probe,
		policy: policy,
		clock:  clock,
		state:  StatePending,
	}
}

// State returns the current gate state.
func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *Gate) setState(s State) {
	g.mu.Lock()
	g.state = s
	g.mu.Unlock()
	metrics.ReadinessGateState.Set(float64(s))
}

// Wait blocks until the probe has succeeded SuccessThreshold times in a row,
// the attempt budget is exhausted, or ctx is cancelled. A probe failure resets
// the success run. A non-nil return means the dependent must not start; the
// gate is single-use and ends in StateReady or StateFailed.
func (g *Gate) Wait(ctx context.Context) error {
	g.setState(StateProbing)

	var (
		successes int
		lastErr   error
	)

	for attempt := 1; ; attempt++ {
		err := g.runProbe(ctx)
		if err == nil {
			successes++
			metrics.ReadinessProbesTotal.WithLabelValues("success").Inc()
			if successes >= g.policy.SuccessThreshold {
				g.setState(StateReady)
				return nil
			}
		} else {
			successes = 0
			lastErr = err
			metrics.ReadinessProbesTotal.WithLabelValues("failure").Inc()
		}

		if attempt >= g.policy.MaxAttempts {
			g.setState(StateFailed)
			if lastErr == nil {
				lastErr = fmt.Errorf("needed %d consecutive successes, saw %d", g.policy.SuccessThreshold, successes)
			}
			return fmt.Errorf("dependency not ready after %d attempts: %w", g.policy.MaxAttempts, lastErr)
		}

		if err != nil && g.policy.OnRetry != nil {
			g.policy.OnRetry(attempt, err)
		}

		select {
		case <-g.clock.After(g.policy.Interval):
		case <-ctx.Done():
			g.setState(StateFailed)
			return fmt.Errorf("readiness wait cancelled: %w", ctx.Err())
		}
	}
}

func (g *Gate) runProbe(ctx context.Context) error {
	probeCtx, cancel := context.WithTimeout(ctx, g.policy.ProbeTimeout)
	defer cancel()
	return g.probe(probeCtx)
}
