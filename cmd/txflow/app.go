package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	txflow "github.com/tarantool/go-txflow"
	"github.com/tarantool/go-txflow/config"
	"github.com/tarantool/go-txflow/journal"
	etcdjournal "github.com/tarantool/go-txflow/journal/etcd"
	"github.com/tarantool/go-txflow/metrics"
	"github.com/tarantool/go-txflow/provider"
	"github.com/tarantool/go-txflow/provider/tcs"
	"github.com/tarantool/go-txflow/waiter"
)

// app holds the state shared by the subcommands of one invocation.
type app struct {
	out io.Writer

	configPath  string
	verbose     bool
	metricsFile string

	config   config.Config
	logger   *zap.Logger
	registry *prometheus.Registry
	metrics  *metrics.Collector

	journal  journal.Journal
	durable  bool
	txClient *txflow.Client
	closers  []io.Closer

	// connect opens the provider; replaced in tests.
	connect func(ctx context.Context, cfg config.Config) (provider.Provider, io.Closer, error)
	// openJournal opens the durable journal, nil if none is configured.
	openJournal func(cfg config.Journal, logger *zap.Logger) (journal.Journal, io.Closer, error)
}

func newApp(out io.Writer) *app {
	return &app{ //nolint:exhaustruct
		out:         out,
		connect:     connectTarantool,
		openJournal: openEtcdJournal,
	}
}

func connectTarantool(ctx context.Context, cfg config.Config) (provider.Provider, io.Closer, error) {
	p, err := tcs.Connect(ctx, cfg.Tarantool.Addrs, cfg.Tarantool.Credentials,
		tcs.WithProcedures(cfg.Tarantool.Procedures))
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}

	return p, p, nil
}

// setup loads the configuration and builds the logger, metrics and journal.
func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err //nolint:wrapcheck
	}

	a.config = cfg

	if a.verbose {
		a.logger, err = zap.NewDevelopment()
	} else {
		a.logger, err = zap.NewProduction()
	}

	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	a.registry = prometheus.NewRegistry()

	a.metrics, err = metrics.New(a.registry)
	if err != nil {
		return err //nolint:wrapcheck
	}

	j, closer, err := a.openJournal(cfg.Journal, a.logger)
	if err != nil {
		return err
	}

	if closer != nil {
		a.closers = append(a.closers, closer)
	}

	if j == nil {
		a.logger.Warn("no journal endpoints configured, timed out handles are not kept after exit")
		a.journal = journal.NewMemory()

		return nil
	}

	a.journal = j
	a.durable = true

	return nil
}

// openEtcdJournal returns a nil journal when no endpoints are configured.
func openEtcdJournal(cfg config.Journal, logger *zap.Logger) (journal.Journal, io.Closer, error) {
	if len(cfg.Endpoints) == 0 {
		return nil, nil, nil
	}

	client, err := etcdjournal.Connect(cfg.Endpoints, logger.Named("etcd"))
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}

	return etcdjournal.New(client, cfg.Prefix), client, nil
}

// client connects to the wallet on first use and builds a txflow client over it.
func (a *app) client(ctx context.Context) (*txflow.Client, error) {
	if a.txClient != nil {
		return a.txClient, nil
	}

	p, closer, err := a.connect(ctx, a.config)
	if err != nil {
		return nil, err
	}

	if closer != nil {
		a.closers = append(a.closers, closer)
	}

	opts := append(a.config.WaiterOptions(),
		waiter.WithLogger(a.logger),
		waiter.WithJournal(a.journal),
		waiter.WithMetrics(a.metrics),
	)

	a.txClient = txflow.New(p,
		txflow.WithWaiter(waiter.New(p, opts...)),
		txflow.WithFeeAmount(a.config.Faucet.Fee),
		txflow.WithLogger(a.logger),
	)

	return a.txClient, nil
}

// teardown writes the metrics file and releases connections.
func (a *app) teardown() error {
	var errs []error

	if a.metricsFile != "" && a.registry != nil {
		err := prometheus.WriteToTextfile(a.metricsFile, a.registry)
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to write metrics: %w", err))
		}
	}

	for i := len(a.closers) - 1; i >= 0; i-- {
		err := a.closers[i].Close()
		if err != nil {
			errs = append(errs, err)
		}
	}

	a.closers = nil
	a.txClient = nil

	if a.logger != nil {
		_ = a.logger.Sync()
	}

	return errors.Join(errs...)
}
