package waiter

import (
	"time"

	"go.uber.org/zap"

	"github.com/tarantool/go-txflow/internal/options"
	"github.com/tarantool/go-txflow/journal"
	"github.com/tarantool/go-txflow/metrics"
)

const (
	// DefaultPollInterval is the delay between status queries.
	DefaultPollInterval = time.Second
	// DefaultTimeout bounds a single wait.
	DefaultTimeout = 60 * time.Second
	// DefaultMaxStatusErrors is the number of consecutive failed status
	// queries tolerated before a wait is aborted.
	DefaultMaxStatusErrors = 3
)

type waiterOptions struct {
	interval        time.Duration
	timeout         time.Duration
	maxStatusErrors int
	logger          *zap.Logger
	journal         journal.Journal
	metrics         *metrics.Collector
}

func defaultWaiterOptions() waiterOptions {
	return waiterOptions{
		interval:        DefaultPollInterval,
		timeout:         DefaultTimeout,
		maxStatusErrors: DefaultMaxStatusErrors,
		logger:          nil,
		journal:         nil,
		metrics:         nil,
	}
}

// Option configures a Waiter.
type Option = options.OptionCallback[waiterOptions]

// WithPollInterval sets the delay between status queries.
// Non-positive values keep the default.
func WithPollInterval(interval time.Duration) Option {
	return func(opts *waiterOptions) {
		if interval > 0 {
			opts.interval = interval
		}
	}
}

// WithTimeout sets the wait deadline. Non-positive values keep the default,
// a wait is never unbounded.
func WithTimeout(timeout time.Duration) Option {
	return func(opts *waiterOptions) {
		if timeout > 0 {
			opts.timeout = timeout
		}
	}
}

// WithMaxStatusErrors sets how many consecutive status query failures are
// retried. Negative values keep the default, zero aborts on the first failure.
func WithMaxStatusErrors(n int) Option {
	return func(opts *waiterOptions) {
		if n >= 0 {
			opts.maxStatusErrors = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(opts *waiterOptions) {
		opts.logger = logger
	}
}

// WithJournal records submitted handles until they reach a terminal status.
func WithJournal(j journal.Journal) Option {
	return func(opts *waiterOptions) {
		opts.journal = j
	}
}

// WithMetrics reports the lifecycle to the collector.
func WithMetrics(c *metrics.Collector) Option {
	return func(opts *waiterOptions) {
		opts.metrics = c
	}
}
