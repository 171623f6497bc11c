package waiter

import (
	"errors"
	"fmt"

	"github.com/tarantool/go-txflow/txn"
)

// ErrStatusQuery matches every StatusQueryError.
var ErrStatusQuery = errors.New("transaction status query failed")

// StatusQueryError reports a wait aborted after too many consecutive failed
// status queries. The transaction may still finalize; the handle stays valid.
type StatusQueryError struct {
	Handle   txn.Handle
	Failures int
	Err      error
}

// Error returns the error message.
func (e StatusQueryError) Error() string {
	return fmt.Sprintf("%s: %s: %d consecutive failures: %s", ErrStatusQuery, e.Handle, e.Failures, e.Err)
}

func (e StatusQueryError) Unwrap() error {
	return e.Err
}

// Is makes StatusQueryError match ErrStatusQuery.
func (e StatusQueryError) Is(target error) bool {
	return target == ErrStatusQuery //nolint:errorlint
}
