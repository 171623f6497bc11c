// Package tcs provides a provider.Provider implementation over Tarantool
// stored procedures. Requests are sent as msgpack maps and status replies
// are decoded into txn.StatusResponse values.
package tcs

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/tarantool/go-tarantool/v2"
	"github.com/tarantool/go-tarantool/v2/pool"

	"github.com/tarantool/go-txflow/internal/options"
	"github.com/tarantool/go-txflow/provider"
	"github.com/tarantool/go-txflow/txn"
)

// Procedures holds the names of the stored procedures the provider calls.
type Procedures struct {
	Submit   string `yaml:"submit"`
	Status   string `yaml:"status"`
	Account  string `yaml:"account"`
	Balances string `yaml:"balances"`
}

// DefaultProcedures returns the procedure names exported by the txflow Lua module.
func DefaultProcedures() Procedures {
	return Procedures{
		Submit:   "txflow.submit_transaction",
		Status:   "txflow.transaction_status",
		Account:  "txflow.account",
		Balances: "txflow.account_balances",
	}
}

type providerOptions struct {
	procedures Procedures
	closer     io.Closer
}

func defaultProviderOptions() providerOptions {
	return providerOptions{
		procedures: DefaultProcedures(),
		closer:     nil,
	}
}

// Option configures the Tarantool provider.
type Option = options.OptionCallback[providerOptions]

// WithProcedures overrides the stored procedure names.
// Empty names keep their defaults.
func WithProcedures(procedures Procedures) Option {
	return func(opts *providerOptions) {
		if procedures.Submit != "" {
			opts.procedures.Submit = procedures.Submit
		}

		if procedures.Status != "" {
			opts.procedures.Status = procedures.Status
		}

		if procedures.Account != "" {
			opts.procedures.Account = procedures.Account
		}

		if procedures.Balances != "" {
			opts.procedures.Balances = procedures.Balances
		}
	}
}

func withCloser(closer io.Closer) Option {
	return func(opts *providerOptions) {
		opts.closer = closer
	}
}

// Provider is a Tarantool implementation of the provider interface.
type Provider struct {
	doer       tarantool.Doer
	procedures Procedures
	closer     io.Closer
}

var (
	_ provider.Provider = &Provider{} //nolint:exhaustruct
)

// New creates a provider sending requests through the doer.
func New(doer tarantool.Doer, opts ...Option) *Provider {
	cfg := options.ApplyOptions(defaultProviderOptions, opts)

	return &Provider{
		doer:       doer,
		procedures: cfg.procedures,
		closer:     cfg.closer,
	}
}

// Credentials are used to authenticate on every instance.
type Credentials struct {
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// Connect establishes connections to Tarantool instances and returns a provider
// routing calls to a writable instance. Close releases the connections.
func Connect(ctx context.Context, addrs []string, creds Credentials, opts ...Option) (*Provider, error) {
	instances := make([]pool.Instance, 0, len(addrs))
	for i, addr := range addrs {
		instances = append(instances, pool.Instance{
			Name: fmt.Sprintf("instance-%d", i),
			Dialer: &tarantool.NetDialer{
				Address:  addr,
				User:     creds.User,
				Password: creds.Password,
				RequiredProtocolInfo: tarantool.ProtocolInfo{
					Auth:     tarantool.AutoAuth,
					Version:  tarantool.ProtocolVersion(0),
					Features: nil,
				},
			},
			Opts: tarantool.Opts{
				Timeout:       0,
				Reconnect:     0,
				MaxReconnects: 0,
				RateLimit:     0,
				RLimitAction:  tarantool.RLimitAction(0),
				Concurrency:   0,
				SkipSchema:    false,
				Notify:        nil,
				Handle:        nil,
				Logger:        nil,
			},
		})
	}

	conn, err := pool.Connect(ctx, instances)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to tarantool pool: %w", err)
	}

	adapter := pool.NewConnectorAdapter(conn, pool.RW)

	return New(adapter, append(opts, withCloser(adapter))...), nil
}

// Close releases the connections opened by Connect.
func (p *Provider) Close() error {
	if p.closer == nil {
		return nil
	}

	err := p.closer.Close()
	if err != nil {
		return fmt.Errorf("failed to close tarantool connections: %w", err)
	}

	return nil
}

func (p *Provider) call(ctx context.Context, procedure string, result any, args ...any) error {
	if args == nil {
		args = []any{}
	}

	req := tarantool.NewCallRequest(procedure).Context(ctx).Args(args)

	return errCall(procedure, p.doer.Do(req).GetTyped(result))
}

// Submit calls the submit procedure. Errors raised by the procedure are
// reported as txn.SubmitError; transport errors are returned as CallError.
func (p *Provider) Submit(ctx context.Context, req txn.Request) (txn.Handle, error) {
	if err := req.Validate(); err != nil {
		return "", txn.NewSubmitError(err)
	}

	var reply []string

	err := p.call(ctx, p.procedures.Submit, &reply, req)

	var serverErr tarantool.Error

	switch {
	case errors.As(err, &serverErr):
		return "", txn.NewSubmitError(err)
	case err != nil:
		return "", err
	case len(reply) == 0:
		return "", NewHandleDecodingError(ErrEmptyReply)
	case reply[0] == "":
		return "", NewHandleDecodingError(ErrEmptyHandle)
	}

	return txn.Handle(reply[0]), nil
}

// Status calls the status procedure for the handle.
func (p *Provider) Status(ctx context.Context, handle txn.Handle) (txn.StatusResponse, error) {
	var reply []statusReply

	err := p.call(ctx, p.procedures.Status, &reply, handle.String())
	if err != nil {
		return txn.StatusResponse{}, err
	}

	if len(reply) == 0 {
		return txn.StatusResponse{}, NewStatusDecodingError("", ErrEmptyReply)
	}

	return reply[0].asStatusResponse()
}

// Account calls the account procedure.
func (p *Provider) Account(ctx context.Context) (provider.Account, error) {
	var reply []accountReply

	err := p.call(ctx, p.procedures.Account, &reply)
	if err != nil {
		return provider.Account{}, err
	}

	if len(reply) == 0 {
		return provider.Account{}, NewAccountDecodingError(ErrEmptyReply)
	}

	return reply[0].asAccount(), nil
}

// Balances calls the balances procedure for the account address.
func (p *Provider) Balances(ctx context.Context, address string) ([]provider.Balance, error) {
	var reply [][]balanceReply

	err := p.call(ctx, p.procedures.Balances, &reply, address)
	if err != nil {
		return nil, err
	}

	if len(reply) == 0 {
		return nil, NewBalancesDecodingError(ErrEmptyReply)
	}

	return asBalances(reply[0]), nil
}
