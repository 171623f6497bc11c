package marshaller

import (
	"github.com/vmihailenco/msgpack/v5"
)

// TypedMsgpackMarshaller is a generic msgpack marshaller for typed objects.
// Types implementing msgpack.CustomEncoder/CustomDecoder use their own codec.
type TypedMsgpackMarshaller[T any] struct{}

// NewTypedMsgpackMarshaller creates a new TypedMsgpackMarshaller for the specified type.
func NewTypedMsgpackMarshaller[T any]() TypedMsgpackMarshaller[T] {
	return TypedMsgpackMarshaller[T]{}
}

// Marshal serializes the typed data to msgpack.
func (m TypedMsgpackMarshaller[T]) Marshal(data T) ([]byte, error) {
	marshalled, err := msgpack.Marshal(data)
	if err != nil {
		return []byte{}, errMarshal(err)
	}

	return marshalled, nil
}

// Unmarshal deserializes msgpack data into a typed object.
func (m TypedMsgpackMarshaller[T]) Unmarshal(data []byte) (T, error) {
	var out T

	err := msgpack.Unmarshal(data, &out)
	if err != nil {
		return zero[T](), errUnmarshal(err)
	}

	return out, nil
}
