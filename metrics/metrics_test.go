package metrics_test

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-txflow/metrics"
	"github.com/tarantool/go-txflow/txn"
)

func TestCollector_Submitted(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewPedanticRegistry()

	c, err := metrics.New(reg)
	require.NoError(t, err)

	c.Submitted(nil)
	c.Submitted(nil)
	c.Submitted(txn.NewSubmitError(txn.ErrNoFeeInstructions))
	c.Submitted(errors.New("connection reset"))

	count, err := testutil.GatherAndCount(reg, "txflow_submissions_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	families, err := reg.Gather()
	require.NoError(t, err)

	values := map[string]float64{}

	for _, family := range families {
		if family.GetName() != "txflow_submissions_total" {
			continue
		}

		for _, metric := range family.GetMetric() {
			values[metric.GetLabel()[0].GetValue()] = metric.GetCounter().GetValue()
		}
	}

	assert.Equal(t, map[string]float64{
		metrics.SubmitOK:      2,
		metrics.SubmitRefused: 1,
		metrics.SubmitFailed:  1,
	}, values)
}

func TestCollector_PolledFinished(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()

	c, err := metrics.New(reg)
	require.NoError(t, err)

	c.Polled()
	c.Polled()
	c.Polled()
	c.Finished(txn.Accepted("tx-1", nil), nil, time.Second)
	c.Finished(txn.TimedOut("tx-2", time.Minute), nil, time.Minute)
	c.Finished(txn.Outcome{}, errors.New("boom"), time.Millisecond)

	count, err := testutil.GatherAndCount(reg,
		"txflow_status_polls_total", "txflow_outcomes_total", "txflow_wait_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1+3+1, count)

	families, err := reg.Gather()
	require.NoError(t, err)

	for _, family := range families {
		switch family.GetName() {
		case "txflow_status_polls_total":
			assert.InDelta(t, 3.0, family.GetMetric()[0].GetCounter().GetValue(), 0)
		case "txflow_wait_duration_seconds":
			assert.Equal(t, uint64(3), family.GetMetric()[0].GetHistogram().GetSampleCount())
		}
	}
}

func TestCollector_DoubleRegistration(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()

	_, err := metrics.New(reg)
	require.NoError(t, err)

	_, err = metrics.New(reg)
	require.Error(t, err)
}

func TestCollector_Nil(t *testing.T) {
	t.Parallel()

	var c *metrics.Collector

	assert.NotPanics(t, func() {
		c.Submitted(nil)
		c.Polled()
		c.Finished(txn.Rejected("tx-1", "no"), nil, time.Second)
	})
}

func TestCollector_Unregistered(t *testing.T) {
	t.Parallel()

	c, err := metrics.New(nil)
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestOutcomeLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "accepted", metrics.OutcomeLabel(txn.OutcomeAccepted))
	assert.Equal(t, "rejected", metrics.OutcomeLabel(txn.OutcomeRejected))
	assert.Equal(t, "timed_out", metrics.OutcomeLabel(txn.OutcomeTimedOut))
	assert.Equal(t, "none", metrics.OutcomeLabel(txn.OutcomeNone))
}
