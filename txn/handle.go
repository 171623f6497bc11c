package txn

// Handle is the opaque identifier the provider assigns to a submitted transaction.
type Handle string

func (h Handle) String() string {
	return string(h)
}

// IsZero reports whether the handle is empty.
func (h Handle) IsZero() bool {
	return h == ""
}
