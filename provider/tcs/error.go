package tcs

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyReply is returned when a procedure returns no values.
	ErrEmptyReply = errors.New("procedure returned no values")
	// ErrEmptyHandle is returned when the submit procedure returns an empty handle.
	ErrEmptyHandle = errors.New("empty transaction handle")
)

// DecodingError represents an error that occurs during decoding of a procedure reply.
type DecodingError struct {
	ObjectType string
	Text       string
	Err        error
}

// Error returns the error message.
func (e DecodingError) Error() string {
	suffix := e.ObjectType
	if e.Text != "" {
		suffix = fmt.Sprintf("%s, %s", suffix, e.Text)
	}

	return fmt.Sprintf("failed to decode %s: %s", suffix, e.Err)
}

func (e DecodingError) Unwrap() error {
	return e.Err
}

func errDecoding(objectType, text string, err error) error {
	if err == nil {
		return nil
	}

	return DecodingError{
		ObjectType: objectType,
		Text:       text,
		Err:        err,
	}
}

// NewStatusDecodingError returns a new status reply decoding error.
func NewStatusDecodingError(text string, err error) error {
	return errDecoding("status", text, err)
}

// NewHandleDecodingError returns a new submit reply decoding error.
func NewHandleDecodingError(err error) error {
	return errDecoding("handle", "", err)
}

// NewAccountDecodingError returns a new account reply decoding error.
func NewAccountDecodingError(err error) error {
	return errDecoding("account", "", err)
}

// NewBalancesDecodingError returns a new balances reply decoding error.
func NewBalancesDecodingError(err error) error {
	return errDecoding("balances", "", err)
}

// CallError represents a failed stored procedure call.
type CallError struct {
	Procedure string
	Err       error
}

// Error returns the error message.
func (e CallError) Error() string {
	return fmt.Sprintf("failed to call %s: %s", e.Procedure, e.Err)
}

func (e CallError) Unwrap() error {
	return e.Err
}

func errCall(procedure string, err error) error {
	if err == nil {
		return nil
	}

	return CallError{
		Procedure: procedure,
		Err:       err,
	}
}
