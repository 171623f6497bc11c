package txn

import (
	"fmt"

	"github.com/tarantool/go-option"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/tarantool/go-txflow/instruction"
)

const (
	requestFieldsLen     = 9
	requirementFieldsLen = 2
)

// EncodingError represents an error that occurs while encoding a request.
type EncodingError struct {
	Field string
	Err   error
}

// Error returns the error message.
func (e EncodingError) Error() string {
	return fmt.Sprintf("failed to encode request field %s: %s", e.Field, e.Err)
}

func (e EncodingError) Unwrap() error {
	return e.Err
}

func errEncoding(field string, err error) error {
	if err == nil {
		return nil
	}

	return EncodingError{Field: field, Err: err}
}

// EncodeMsgpack writes the request in the provider wire format.
func (r Request) EncodeMsgpack(enc *msgpack.Encoder) error {
	err := enc.EncodeMapLen(requestFieldsLen)
	if err != nil {
		return errEncoding("map length", err)
	}

	fields := []struct {
		name   string
		encode func() error
	}{
		{"account_id", func() error { return enc.EncodeUint(r.accountID) }},
		{"instructions", func() error { return encodeInstructions(enc, r.instructions) }},
		{"fee_instructions", func() error { return encodeInstructions(enc, r.fees) }},
		{"inputs", func() error { return enc.EncodeArrayLen(0) }},
		{"input_refs", func() error { return enc.EncodeArrayLen(0) }},
		{"required_substates", func() error { return encodeRequirements(enc, r.required) }},
		{"is_dry_run", func() error { return enc.EncodeBool(r.dryRun) }},
		{"min_epoch", func() error { return encodeOptionalUint(enc, r.minEpoch) }},
		{"max_epoch", func() error { return encodeOptionalUint(enc, r.maxEpoch) }},
	}

	for _, field := range fields {
		err = enc.EncodeString(field.name)
		if err != nil {
			return errEncoding(field.name, err)
		}

		err = field.encode()
		if err != nil {
			return errEncoding(field.name, err)
		}
	}

	return nil
}

func encodeInstructions(enc *msgpack.Encoder, list []instruction.Instruction) error {
	err := enc.EncodeArrayLen(len(list))
	if err != nil {
		return err //nolint:wrapcheck
	}

	for _, ins := range list {
		err = ins.EncodeMsgpack(enc)
		if err != nil {
			return err //nolint:wrapcheck
		}
	}

	return nil
}

func encodeRequirements(enc *msgpack.Encoder, list []Requirement) error {
	err := enc.EncodeArrayLen(len(list))
	if err != nil {
		return err //nolint:wrapcheck
	}

	for _, req := range list {
		err = enc.EncodeMapLen(requirementFieldsLen)
		if err != nil {
			return err //nolint:wrapcheck
		}

		err = enc.EncodeString("substate_id")
		if err != nil {
			return err //nolint:wrapcheck
		}

		err = enc.EncodeString(req.ID)
		if err != nil {
			return err //nolint:wrapcheck
		}

		err = enc.EncodeString("version")
		if err != nil {
			return err //nolint:wrapcheck
		}

		if req.Version.IsSome() {
			err = enc.EncodeUint32(req.Version.UnwrapOr(0))
		} else {
			err = enc.EncodeNil()
		}

		if err != nil {
			return err //nolint:wrapcheck
		}
	}

	return nil
}

func encodeOptionalUint(enc *msgpack.Encoder, value option.Generic[uint64]) error {
	if !value.IsSome() {
		return enc.EncodeNil() //nolint:wrapcheck
	}

	return enc.EncodeUint(value.UnwrapOr(0)) //nolint:wrapcheck
}
