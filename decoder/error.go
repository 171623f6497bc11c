package decoder

import (
	"errors"
	"fmt"

	"github.com/tarantool/go-txflow/substate"
	"github.com/tarantool/go-txflow/txn"
)

var (
	// ErrDecode matches every error describing a payload that does not fit
	// the decoding contract.
	ErrDecode = errors.New("failed to decode transaction result")
	// ErrInvalidLayout matches every LayoutError.
	ErrInvalidLayout = errors.New("invalid decoding layout")
)

// Layout validation failures wrapped by LayoutError.
var (
	ErrEmptyVersion    = errors.New("layout version is empty")
	ErrNegativeIndex   = errors.New("slot index is negative")
	ErrDuplicateIndex  = errors.New("slot index is used twice")
	ErrUnknownRole     = errors.New("slot role is unknown")
	ErrTokenOutOfRange = errors.New("slot token is out of range")
	ErrIncompleteToken = errors.New("token needs exactly one resource and one component slot")
)

// UnexpectedShapeError reports an entry of the change list that does not
// match its slot. Actual is TagNone when the list is too short.
type UnexpectedShapeError struct {
	Index    int
	Expected substate.Tag
	Actual   substate.Tag
}

// Error returns the error message.
func (e UnexpectedShapeError) Error() string {
	if e.Actual == substate.TagNone {
		return fmt.Sprintf("%s: expected %s at index %d, list is too short", ErrDecode, e.Expected, e.Index)
	}

	return fmt.Sprintf("%s: expected %s at index %d, got %s", ErrDecode, e.Expected, e.Index, e.Actual)
}

// Is makes UnexpectedShapeError match ErrDecode.
func (e UnexpectedShapeError) Is(target error) bool {
	return target == ErrDecode //nolint:errorlint
}

// MissingAcceptPayloadError reports a status response without a usable accept branch.
type MissingAcceptPayloadError struct {
	Status txn.Status
}

// Error returns the error message.
func (e MissingAcceptPayloadError) Error() string {
	return fmt.Sprintf("%s: %s status has no accept payload", ErrDecode, e.Status)
}

// Is makes MissingAcceptPayloadError match ErrDecode.
func (e MissingAcceptPayloadError) Is(target error) bool {
	return target == ErrDecode //nolint:errorlint
}

// LayoutError represents a layout rejected at construction.
type LayoutError struct {
	Version string
	Err     error
}

func errLayout(version string, err error) error {
	if err == nil {
		return nil
	}

	return LayoutError{Version: version, Err: err}
}

// Error returns the error message.
func (e LayoutError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrInvalidLayout, e.Version, e.Err)
}

func (e LayoutError) Unwrap() error {
	return e.Err
}

// Is makes LayoutError match ErrInvalidLayout.
func (e LayoutError) Is(target error) bool {
	return target == ErrInvalidLayout //nolint:errorlint
}
