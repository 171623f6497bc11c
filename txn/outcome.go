package txn

import (
	"slices"
	"time"

	"github.com/tarantool/go-txflow/substate"
)

// OutcomeKind represents the terminal result of waiting for a transaction.
type OutcomeKind int

const (
	// OutcomeNone is the zero value; it never describes a real transaction.
	OutcomeNone OutcomeKind = iota
	// OutcomeAccepted means the transaction was committed.
	OutcomeAccepted
	// OutcomeRejected means the ledger refused the transaction.
	OutcomeRejected
	// OutcomeTimedOut means no terminal status was observed before the deadline.
	OutcomeTimedOut
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNone:
		return "None"
	case OutcomeAccepted:
		return "Accepted"
	case OutcomeRejected:
		return "Rejected"
	case OutcomeTimedOut:
		return "TimedOut"
	default:
		return "Unknown"
	}
}

// Outcome is the terminal result of a submitted transaction.
type Outcome struct {
	kind    OutcomeKind
	handle  Handle
	changes []substate.Change
	reason  string
	after   time.Duration
}

// Accepted returns an accepted outcome carrying the up-substate changes.
func Accepted(handle Handle, changes []substate.Change) Outcome {
	return Outcome{
		kind:    OutcomeAccepted,
		handle:  handle,
		changes: slices.Clone(changes),
		reason:  "",
		after:   0,
	}
}

// Rejected returns a rejected outcome with the ledger-supplied reason.
func Rejected(handle Handle, reason string) Outcome {
	return Outcome{
		kind:    OutcomeRejected,
		handle:  handle,
		changes: nil,
		reason:  reason,
		after:   0,
	}
}

// TimedOut returns a timed out outcome. The handle remains valid.
func TimedOut(handle Handle, after time.Duration) Outcome {
	return Outcome{
		kind:    OutcomeTimedOut,
		handle:  handle,
		changes: nil,
		reason:  "",
		after:   after,
	}
}

// Kind returns the outcome variant.
func (o Outcome) Kind() OutcomeKind {
	return o.kind
}

// Handle returns the handle of the transaction.
func (o Outcome) Handle() Handle {
	return o.handle
}

// Changes returns a copy of the up-substate changes of an accepted outcome.
func (o Outcome) Changes() []substate.Change {
	return slices.Clone(o.changes)
}

// Reason returns the rejection reason.
func (o Outcome) Reason() string {
	return o.reason
}

// IsAccepted reports whether the transaction was committed.
func (o Outcome) IsAccepted() bool {
	return o.kind == OutcomeAccepted
}

// Err converts a non-accepted outcome into an error.
func (o Outcome) Err() error {
	switch o.kind {
	case OutcomeAccepted:
		return nil
	case OutcomeRejected:
		return RejectedError{Handle: o.handle, Reason: o.reason}
	case OutcomeTimedOut:
		return TimeoutError{Handle: o.handle, After: o.after}
	default:
		return ErrNoOutcome
	}
}
