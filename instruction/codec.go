package instruction

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// ErrUnknownKind is returned when an instruction of an unknown kind is encoded.
var ErrUnknownKind = errors.New("unknown instruction kind")

const (
	callFieldsLen      = 3
	workspaceFieldsLen = 1
)

// EncodingError represents an error that occurs while encoding an instruction.
type EncodingError struct {
	Text string
	Err  error
}

// Error returns the error message.
func (e EncodingError) Error() string {
	return fmt.Sprintf("failed to encode instruction, %s: %s", e.Text, e.Err)
}

func (e EncodingError) Unwrap() error {
	return e.Err
}

func errEncoding(text string, err error) error {
	if err == nil {
		return nil
	}

	return EncodingError{Text: text, Err: err}
}

// EncodeMsgpack writes the instruction as a single-entry map keyed by the
// variant name.
func (i Instruction) EncodeMsgpack(enc *msgpack.Encoder) error {
	switch i.kind {
	case KindCallFunction:
		return i.encodeCall(enc, "template_address", "function")
	case KindCallMethod:
		return i.encodeCall(enc, "component_address", "method")
	case KindPutLastOutputOnWorkspace:
		err := encodeVariantHeader(enc, i.kind, workspaceFieldsLen)
		if err != nil {
			return err
		}

		err = enc.EncodeString("key")
		if err != nil {
			return errEncoding("workspace key name", err)
		}

		return errEncoding("workspace key", encodeKey(enc, i.key))
	default:
		return fmt.Errorf("%w: %d", ErrUnknownKind, i.kind)
	}
}

func (i Instruction) encodeCall(enc *msgpack.Encoder, targetField, callField string) error {
	err := encodeVariantHeader(enc, i.kind, callFieldsLen)
	if err != nil {
		return err
	}

	for _, field := range [...][2]string{{targetField, i.target}, {callField, i.call}} {
		err = enc.EncodeString(field[0])
		if err != nil {
			return errEncoding(field[0]+" name", err)
		}

		err = enc.EncodeString(field[1])
		if err != nil {
			return errEncoding(field[0], err)
		}
	}

	err = enc.EncodeString("args")
	if err != nil {
		return errEncoding("args name", err)
	}

	err = enc.EncodeArrayLen(len(i.args))
	if err != nil {
		return errEncoding("args length", err)
	}

	for _, arg := range i.args {
		err = arg.EncodeMsgpack(enc)
		if err != nil {
			return err
		}
	}

	return nil
}

func encodeVariantHeader(enc *msgpack.Encoder, kind Kind, fields int) error {
	err := enc.EncodeMapLen(1)
	if err != nil {
		return errEncoding("variant map length", err)
	}

	err = enc.EncodeString(kind.String())
	if err != nil {
		return errEncoding("variant name", err)
	}

	err = enc.EncodeMapLen(fields)
	if err != nil {
		return errEncoding("variant fields length", err)
	}

	return nil
}

// EncodeMsgpack writes a literal as a string and a workspace reference as
// {"Workspace": [key...]}.
func (a Arg) EncodeMsgpack(enc *msgpack.Encoder) error {
	if !a.isRef {
		return errEncoding("literal arg", enc.EncodeString(a.literal))
	}

	err := enc.EncodeMapLen(1)
	if err != nil {
		return errEncoding("workspace arg map length", err)
	}

	err = enc.EncodeString("Workspace")
	if err != nil {
		return errEncoding("workspace arg name", err)
	}

	return errEncoding("workspace arg key", encodeKey(enc, a.workspace))
}

func encodeKey(enc *msgpack.Encoder, key []byte) error {
	err := enc.EncodeArrayLen(len(key))
	if err != nil {
		return err //nolint:wrapcheck
	}

	for _, b := range key {
		err = enc.EncodeUint8(b)
		if err != nil {
			return err //nolint:wrapcheck
		}
	}

	return nil
}
