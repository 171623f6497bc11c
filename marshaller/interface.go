// Package marshaller provides typed serialization of configuration and
// bookkeeping records.
package marshaller

// TypedMarshaller is a generic interface for typed marshalling operations.
type TypedMarshaller[T any] interface {
	Marshal(data T) ([]byte, error)
	Unmarshal(data []byte) (T, error)
}

var (
	_ TypedMarshaller[struct{}] = TypedYamlMarshaller[struct{}]{}
	_ TypedMarshaller[struct{}] = TypedMsgpackMarshaller[struct{}]{}
)

func zero[T any]() T {
	var out T
	return out
}
