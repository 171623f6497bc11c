package etcd

import "errors"

// ErrHandleMismatch is returned when a stored entry does not belong to its key.
var ErrHandleMismatch = errors.New("journal entry handle mismatch")
