// Package journal keeps track of submitted transactions that have not reached
// a terminal status yet, so a timed-out handle can be checked again later.
package journal

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/tarantool/go-txflow/hasher"
	"github.com/tarantool/go-txflow/marshaller"
	"github.com/tarantool/go-txflow/txn"
)

// Entry is a pending transaction.
type Entry struct {
	Handle txn.Handle `msgpack:"handle"`
	// Fingerprint identifies the submitted request, equal requests share it.
	Fingerprint string    `msgpack:"fingerprint"`
	SubmittedAt time.Time `msgpack:"submitted_at"`
}

// Journal is the interface that pending transaction stores must implement.
// Implementations must be safe for concurrent use.
type Journal interface {
	// Record stores the entry, replacing an entry with the same handle.
	Record(ctx context.Context, entry Entry) error
	// Retire removes the handle. Retiring an unknown handle is not an error.
	Retire(ctx context.Context, handle txn.Handle) error
	// Pending returns the stored entries ordered by submission time.
	Pending(ctx context.Context) ([]Entry, error)
}

// Fingerprint returns the hex encoded sha256 of the msgpack encoded request.
func Fingerprint(req txn.Request) (string, error) {
	data, err := marshaller.NewTypedMsgpackMarshaller[txn.Request]().Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	return hasher.HexString(hasher.NewSHA256Hasher(), data) //nolint:wrapcheck
}

// NewEntry returns the entry of a request submitted at the given time.
func NewEntry(req txn.Request, handle txn.Handle, submittedAt time.Time) (Entry, error) {
	fingerprint, err := Fingerprint(req)
	if err != nil {
		return Entry{}, err
	}

	return Entry{
		Handle:      handle,
		Fingerprint: fingerprint,
		SubmittedAt: submittedAt,
	}, nil
}

// SortEntries orders entries by submission time, then by handle.
func SortEntries(entries []Entry) {
	slices.SortFunc(entries, func(a, b Entry) int {
		if c := a.SubmittedAt.Compare(b.SubmittedAt); c != 0 {
			return c
		}

		return strings.Compare(a.Handle.String(), b.Handle.String())
	})
}
