package substate

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	// ErrMalformedID is returned when a substate id is not a single-entry map.
	ErrMalformedID = errors.New("substate id must be a single-entry map")
	// ErrMalformedChange is returned when a change is not a [id, substate] pair.
	ErrMalformedChange = errors.New("substate change must be a [id, substate] array")
)

const changeArrayLen = 2

// DecodingError represents an error that occurs during decoding of substate records.
type DecodingError struct {
	ObjectType string
	Err        error
}

// Error returns the error message.
func (e DecodingError) Error() string {
	return fmt.Sprintf("failed to decode %s: %s", e.ObjectType, e.Err)
}

func (e DecodingError) Unwrap() error {
	return e.Err
}

func errDecoding(objectType string, err error) error {
	if err == nil {
		return nil
	}

	return DecodingError{ObjectType: objectType, Err: err}
}

// EncodeMsgpack writes the id as {Tag: address}.
func (id ID) EncodeMsgpack(enc *msgpack.Encoder) error {
	err := enc.EncodeMapLen(1)
	if err != nil {
		return err //nolint:wrapcheck
	}

	err = enc.EncodeString(id.Tag.String())
	if err != nil {
		return err //nolint:wrapcheck
	}

	return enc.EncodeString(id.Address) //nolint:wrapcheck
}

// DecodeMsgpack reads an id encoded as {Tag: address}.
func (id *ID) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeMapLen()
	if err != nil {
		return errDecoding("substate id", err)
	}

	if n != 1 {
		return errDecoding("substate id", fmt.Errorf("%w, got %d entries", ErrMalformedID, n))
	}

	name, err := dec.DecodeString()
	if err != nil {
		return errDecoding("substate id tag", err)
	}

	address, err := dec.DecodeString()
	if err != nil {
		return errDecoding("substate id address", err)
	}

	id.Tag = ParseTag(name)
	id.Address = address

	return nil
}

// EncodeMsgpack writes the change as [id, {version: n}].
func (c Change) EncodeMsgpack(enc *msgpack.Encoder) error {
	err := enc.EncodeArrayLen(changeArrayLen)
	if err != nil {
		return err //nolint:wrapcheck
	}

	err = c.ID.EncodeMsgpack(enc)
	if err != nil {
		return err
	}

	err = enc.EncodeMapLen(1)
	if err != nil {
		return err //nolint:wrapcheck
	}

	err = enc.EncodeString("version")
	if err != nil {
		return err //nolint:wrapcheck
	}

	return enc.EncodeUint32(c.Version) //nolint:wrapcheck
}

// DecodeMsgpack reads a change encoded as [id, substate]. Only the version
// field of the substate body is kept; the rest is skipped.
func (c *Change) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return errDecoding("substate change", err)
	}

	if n != changeArrayLen {
		return errDecoding("substate change", fmt.Errorf("%w, got %d items", ErrMalformedChange, n))
	}

	err = c.ID.DecodeMsgpack(dec)
	if err != nil {
		return err
	}

	var body struct {
		Version uint32 `msgpack:"version"`
	}

	err = dec.Decode(&body)
	if err != nil {
		return errDecoding("substate body", err)
	}

	c.Version = body.Version

	return nil
}
