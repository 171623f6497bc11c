// Package waiter submits transactions and waits for their finality by polling
// the provider with a bounded interval and deadline.
package waiter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tarantool/go-txflow/decoder"
	"github.com/tarantool/go-txflow/internal/options"
	"github.com/tarantool/go-txflow/journal"
	"github.com/tarantool/go-txflow/provider"
	"github.com/tarantool/go-txflow/txn"
)

// bookkeepingTimeout bounds journal writes made after the caller's context is gone.
const bookkeepingTimeout = 5 * time.Second

// Waiter submits requests and polls their status. It holds no per-transaction
// state, concurrent waits share nothing but the provider.
type Waiter struct {
	provider provider.Provider
	opts     waiterOptions
}

// New creates a Waiter over the provider.
func New(p provider.Provider, opts ...Option) *Waiter {
	cfg := options.ApplyOptions(defaultWaiterOptions, opts)
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	return &Waiter{
		provider: p,
		opts:     cfg,
	}
}

// PollInterval returns the configured delay between status queries.
func (w *Waiter) PollInterval() time.Duration {
	return w.opts.interval
}

// Timeout returns the configured wait deadline.
func (w *Waiter) Timeout() time.Duration {
	return w.opts.timeout
}

// SubmitAndWait validates and submits the request, then waits for its outcome.
//
// A refused submission is a txn.SubmitError and is never retried. An accepted
// transaction without an accept payload is a decoder.MissingAcceptPayloadError.
// Rejected and TimedOut are outcomes, not errors; use Outcome.Err to turn them
// into errors.
func (w *Waiter) SubmitAndWait(ctx context.Context, req txn.Request) (txn.Outcome, error) {
	if err := req.Validate(); err != nil {
		err = txn.NewSubmitError(err)
		w.opts.metrics.Submitted(err)

		return txn.Outcome{}, err
	}

	handle, err := w.provider.Submit(ctx, req)
	if err != nil {
		if ctx.Err() == nil && !errors.Is(err, txn.ErrSubmit) {
			err = txn.NewSubmitError(err)
		}

		w.opts.metrics.Submitted(err)
		w.opts.logger.Warn("transaction submission failed", zap.Error(err))

		return txn.Outcome{}, fmt.Errorf("failed to submit transaction: %w", err)
	}

	w.opts.metrics.Submitted(nil)
	w.opts.logger.Debug("transaction submitted", zap.Stringer("handle", handle))

	w.record(ctx, req, handle)

	return w.Wait(ctx, handle)
}

// Wait polls the status of a submitted transaction: immediately, then every
// poll interval, until a terminal status, the deadline or the cancellation of
// ctx. Cancellation returns the context error and stops polling.
func (w *Waiter) Wait(ctx context.Context, handle txn.Handle) (txn.Outcome, error) {
	start := time.Now()
	logger := w.opts.logger.With(zap.Stringer("handle", handle))

	waitCtx, cancel := context.WithTimeout(ctx, w.opts.timeout)
	defer cancel()

	ticker := time.NewTicker(w.opts.interval)
	defer ticker.Stop()

	finish := func(outcome txn.Outcome, err error) (txn.Outcome, error) {
		w.opts.metrics.Finished(outcome, err, time.Since(start))
		return outcome, err
	}

	failures := 0

	for poll := 1; ; poll++ {
		if ctx.Err() != nil {
			logger.Info("wait cancelled", zap.Int("poll", poll), zap.Duration("elapsed", time.Since(start)))
			return finish(txn.Outcome{}, fmt.Errorf("waiting for transaction %s: %w", handle, ctx.Err()))
		}

		if waitCtx.Err() != nil {
			logger.Info("wait timed out", zap.Int("poll", poll), zap.Duration("elapsed", time.Since(start)))
			return finish(txn.TimedOut(handle, w.opts.timeout), nil)
		}

		resp, err := w.provider.Status(waitCtx, handle)
		w.opts.metrics.Polled()

		switch {
		case err != nil && waitCtx.Err() != nil:
			// The deadline or cancellation interrupted the query, the loop head reports it.
			continue
		case err != nil:
			failures++

			logger.Warn("status query failed",
				zap.Int("poll", poll), zap.Int("failures", failures), zap.Error(err))

			if failures > w.opts.maxStatusErrors {
				return finish(txn.Outcome{}, StatusQueryError{Handle: handle, Failures: failures, Err: err})
			}
		default:
			failures = 0

			logger.Debug("status polled",
				zap.Int("poll", poll),
				zap.Stringer("status", resp.Status),
				zap.Duration("elapsed", time.Since(start)))

			outcome, terminal, err := w.settle(ctx, handle, resp)
			if terminal || err != nil {
				return finish(outcome, err)
			}
		}

		select {
		case <-waitCtx.Done():
		case <-ticker.C:
		}
	}
}

// Check performs a single status query for a retained handle. The boolean
// reports whether the transaction reached a terminal status.
func (w *Waiter) Check(ctx context.Context, handle txn.Handle) (txn.Outcome, bool, error) {
	resp, err := w.provider.Status(ctx, handle)
	w.opts.metrics.Polled()

	if err != nil {
		return txn.Outcome{}, false, fmt.Errorf("failed to query status of %s: %w", handle, err)
	}

	outcome, terminal, err := w.settle(ctx, handle, resp)

	return outcome, terminal, err
}

// settle converts a status response into an outcome and retires terminal handles.
// A status outside the known set is an error and keeps the handle retained.
func (w *Waiter) settle(ctx context.Context, handle txn.Handle, resp txn.StatusResponse) (txn.Outcome, bool, error) {
	var (
		outcome txn.Outcome
		err     error
	)

	switch resp.Status {
	case txn.StatusPending:
		return txn.Outcome{}, false, nil
	case txn.StatusAccepted:
		changes, decodeErr := decoder.AcceptedChanges(resp)
		if decodeErr != nil {
			err = fmt.Errorf("transaction %s: %w", handle, decodeErr)
		} else {
			outcome = txn.Accepted(handle, changes)
		}
	case txn.StatusRejected:
		reason := ""
		if resp.Result != nil {
			reason = resp.Result.Reject
		}

		outcome = txn.Rejected(handle, reason)
	default:
		return txn.Outcome{}, false, fmt.Errorf("transaction %s: %w: %d", handle, txn.ErrUnknownStatus, resp.Status)
	}

	w.opts.logger.Info("transaction finalized",
		zap.Stringer("handle", handle),
		zap.Stringer("status", resp.Status),
		zap.Error(err))

	w.retire(ctx, handle)

	return outcome, true, err
}

func (w *Waiter) record(ctx context.Context, req txn.Request, handle txn.Handle) {
	if w.opts.journal == nil {
		return
	}

	entry, err := journal.NewEntry(req, handle, time.Now())
	if err == nil {
		err = w.opts.journal.Record(ctx, entry)
	}

	if err != nil {
		w.opts.logger.Warn("failed to record transaction", zap.Stringer("handle", handle), zap.Error(err))
	}
}

func (w *Waiter) retire(ctx context.Context, handle txn.Handle) {
	if w.opts.journal == nil {
		return
	}

	retireCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), bookkeepingTimeout)
	defer cancel()

	err := w.opts.journal.Retire(retireCtx, handle)
	if err != nil {
		w.opts.logger.Warn("failed to retire transaction", zap.Stringer("handle", handle), zap.Error(err))
	}
}
