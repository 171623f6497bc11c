// Package metrics exposes prometheus collectors of the submission lifecycle.
// A nil *Collector is valid and records nothing.
package metrics

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tarantool/go-txflow/txn"
)

const namespace = "txflow"

// Submission results.
const (
	SubmitOK      = "ok"
	SubmitRefused = "refused"
	SubmitFailed  = "failed"
)

// OutcomeError labels waits that ended with an error instead of an outcome.
const OutcomeError = "error"

// Collector holds the lifecycle collectors.
type Collector struct {
	submissions  *prometheus.CounterVec
	polls        prometheus.Counter
	outcomes     *prometheus.CounterVec
	waitDuration prometheus.Histogram
}

// New creates the collectors and registers them on reg. A nil reg skips registration.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{ //nolint:exhaustruct
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Transaction submissions by result.",
		}, []string{"result"}),
		polls: prometheus.NewCounter(prometheus.CounterOpts{ //nolint:exhaustruct
			Namespace: namespace,
			Name:      "status_polls_total",
			Help:      "Transaction status queries.",
		}),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{ //nolint:exhaustruct
			Namespace: namespace,
			Name:      "outcomes_total",
			Help:      "Finished waits by outcome.",
		}, []string{"outcome"}),
		waitDuration: prometheus.NewHistogram(prometheus.HistogramOpts{ //nolint:exhaustruct
			Namespace: namespace,
			Name:      "wait_duration_seconds",
			Help:      "Time from the first status query to the end of the wait.",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
		}),
	}

	if reg == nil {
		return c, nil
	}

	for _, collector := range []prometheus.Collector{c.submissions, c.polls, c.outcomes, c.waitDuration} {
		err := reg.Register(collector)
		if err != nil {
			return nil, fmt.Errorf("failed to register collector: %w", err)
		}
	}

	return c, nil
}

// Submitted counts a submission attempt.
func (c *Collector) Submitted(err error) {
	if c == nil {
		return
	}

	result := SubmitOK

	switch {
	case errors.Is(err, txn.ErrSubmit):
		result = SubmitRefused
	case err != nil:
		result = SubmitFailed
	}

	c.submissions.WithLabelValues(result).Inc()
}

// Polled counts a status query.
func (c *Collector) Polled() {
	if c == nil {
		return
	}

	c.polls.Inc()
}

// Finished records the end of a wait. A non-nil err overrides the outcome.
func (c *Collector) Finished(outcome txn.Outcome, err error, elapsed time.Duration) {
	if c == nil {
		return
	}

	label := OutcomeError
	if err == nil {
		label = OutcomeLabel(outcome.Kind())
	}

	c.outcomes.WithLabelValues(label).Inc()
	c.waitDuration.Observe(elapsed.Seconds())
}

// OutcomeLabel returns the label value of an outcome kind, e.g. "timed_out".
func OutcomeLabel(kind txn.OutcomeKind) string {
	switch kind {
	case txn.OutcomeTimedOut:
		return "timed_out"
	default:
		return strings.ToLower(kind.String())
	}
}
