// Package namer provides the key naming strategy of the pending transaction journal.
package namer

import (
	"strings"

	"github.com/tarantool/go-txflow/txn"
)

const pendingName = "pending"

// Namer represents keys naming strategy.
type Namer interface {
	Name(handle txn.Handle) (string, error) // Key of a pending handle.
	Prefix() string                         // Common prefix of all pending keys.
	Parse(key string) (txn.Handle, error)   // Convert a key back into a handle.
}

// DefaultNamer names keys as <prefix>/pending/<handle>.
type DefaultNamer struct {
	prefix string
}

// NewDefaultNamer returns new DefaultNamer object. Trailing slashes of the
// prefix are dropped.
func NewDefaultNamer(prefix string) *DefaultNamer {
	return &DefaultNamer{
		prefix: strings.TrimRight(prefix, "/"),
	}
}

// Name returns the key of the handle.
func (n *DefaultNamer) Name(handle txn.Handle) (string, error) {
	switch {
	case handle.IsZero():
		return "", errInvalidName(handle.String(), "handle is empty")
	case strings.Contains(handle.String(), "/"):
		return "", errInvalidName(handle.String(), "handle contains '/'")
	}

	return n.Prefix() + handle.String(), nil
}

// Prefix returns the prefix shared by every pending key, with a trailing slash.
func (n *DefaultNamer) Prefix() string {
	return n.prefix + "/" + pendingName + "/"
}

// Parse extracts the handle from a key.
func (n *DefaultNamer) Parse(key string) (txn.Handle, error) {
	name, ok := strings.CutPrefix(key, n.Prefix())
	switch {
	case !ok:
		return "", errInvalidKey(key, "prefix mismatch")
	case name == "":
		return "", errInvalidKey(key, "handle is empty")
	case strings.Contains(name, "/"):
		return "", errInvalidKey(key, "unexpected nesting")
	}

	return txn.Handle(name), nil
}
