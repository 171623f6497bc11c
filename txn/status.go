package txn

import (
	"errors"
	"fmt"

	"github.com/tarantool/go-txflow/substate"
)

// ErrUnknownStatus is returned when a status name is not recognized.
var ErrUnknownStatus = errors.New("unknown transaction status")

// Status represents the finality status of a submitted transaction.
type Status int

const (
	// StatusPending means the transaction is not finalized yet.
	StatusPending Status = iota
	// StatusAccepted means the transaction was finalized and committed.
	StatusAccepted
	// StatusRejected means the ledger refused the transaction.
	StatusRejected
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusAccepted:
		return "Accepted"
	case StatusRejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// IsTerminal reports whether no further status change is expected.
func (s Status) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// ParseStatus converts a wire status name into a Status.
// "New" and "DryRun" are reported by some providers before the transaction is
// picked up, they are treated as pending. "InvalidTransaction" is a rejection.
func ParseStatus(name string) (Status, error) {
	switch name {
	case "Pending", "New", "DryRun":
		return StatusPending, nil
	case "Accepted":
		return StatusAccepted, nil
	case "Rejected", "InvalidTransaction":
		return StatusRejected, nil
	default:
		return StatusPending, fmt.Errorf("%w: %q", ErrUnknownStatus, name)
	}
}

// AcceptBranch is the payload of an accepted transaction.
type AcceptBranch struct {
	// UpSubstates lists created and updated substates in ledger order.
	UpSubstates []substate.Change
	// DownSubstates lists destroyed or superseded substates.
	DownSubstates []substate.Change
}

// ResultPayload is the finalized result of a transaction.
type ResultPayload struct {
	Accept *AcceptBranch
	Reject string
}

// StatusResponse is a single status report for a handle.
type StatusResponse struct {
	Status Status
	// Result is set for terminal statuses only.
	Result *ResultPayload
}
