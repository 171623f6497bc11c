package txn

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrSubmit matches every SubmitError.
	ErrSubmit = errors.New("transaction submission refused")
	// ErrRejected matches every RejectedError.
	ErrRejected = errors.New("transaction rejected")
	// ErrTimeout matches every TimeoutError.
	ErrTimeout = errors.New("timed out waiting for transaction")
	// ErrNoOutcome is returned by the zero Outcome.
	ErrNoOutcome = errors.New("no transaction outcome")

	// ErrNoInstructions is returned when a request carries no main instructions.
	ErrNoInstructions = errors.New("request has no instructions")
	// ErrNoFeeInstructions is returned when a request carries no fee instructions.
	ErrNoFeeInstructions = errors.New("request has no fee instructions")
)

// SubmitError represents a synchronous refusal of a request by the provider.
// It is never retried.
type SubmitError struct {
	Err error
}

func errSubmit(err error) error {
	if err == nil {
		return nil
	}

	return SubmitError{Err: err}
}

// NewSubmitError wraps a provider refusal.
func NewSubmitError(err error) error {
	return errSubmit(err)
}

// Error returns the error message.
func (e SubmitError) Error() string {
	return fmt.Sprintf("%s: %s", ErrSubmit, e.Err)
}

func (e SubmitError) Unwrap() error {
	return e.Err
}

// Is makes SubmitError match ErrSubmit.
func (e SubmitError) Is(target error) bool {
	return target == ErrSubmit //nolint:errorlint
}

// RejectedError represents a semantic rejection by the ledger.
type RejectedError struct {
	Handle Handle
	Reason string
}

// Error returns the error message.
func (e RejectedError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrRejected, e.Handle, e.Reason)
}

// Is makes RejectedError match ErrRejected.
func (e RejectedError) Is(target error) bool {
	return target == ErrRejected //nolint:errorlint
}

// TimeoutError reports that no terminal status was observed in time.
// The handle stays valid for a later status check.
type TimeoutError struct {
	Handle Handle
	After  time.Duration
}

// Error returns the error message.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("%s %s after %s", ErrTimeout, e.Handle, e.After)
}

// Is makes TimeoutError match ErrTimeout.
func (e TimeoutError) Is(target error) bool {
	return target == ErrTimeout //nolint:errorlint
}
