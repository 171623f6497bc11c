package txflow

import (
	"context"
	"fmt"
	"sync"

	"github.com/tarantool/go-option"
	"go.uber.org/zap"

	"github.com/tarantool/go-txflow/decoder"
	"github.com/tarantool/go-txflow/instruction"
	"github.com/tarantool/go-txflow/internal/options"
	"github.com/tarantool/go-txflow/provider"
	"github.com/tarantool/go-txflow/substate"
	"github.com/tarantool/go-txflow/token"
	"github.com/tarantool/go-txflow/txn"
	"github.com/tarantool/go-txflow/waiter"
)

const (
	// DefaultFeeAmount is the fee locked from the account for every transaction.
	DefaultFeeAmount = 2000

	// FirstSymbol is the symbol of the first token minted by a faucet deployment.
	FirstSymbol = "A"
	// SecondSymbol is the symbol of the second token.
	SecondSymbol = "B"
)

// clientOptions contains configuration options for client instances.
type clientOptions struct {
	waiter    *waiter.Waiter
	feeAmount int64
	logger    *zap.Logger
}

func defaultClientOptions() clientOptions {
	return clientOptions{
		waiter:    nil,
		feeAmount: DefaultFeeAmount,
		logger:    nil,
	}
}

// Option is a function that configures client options.
type Option = options.OptionCallback[clientOptions]

// WithWaiter replaces the waiter built from the provider with default options.
func WithWaiter(w *waiter.Waiter) Option {
	return func(opts *clientOptions) {
		opts.waiter = w
	}
}

// WithFeeAmount sets the fee paid for every transaction.
// Non-positive values keep the default.
func WithFeeAmount(amount int64) Option {
	return func(opts *clientOptions) {
		if amount > 0 {
			opts.feeAmount = amount
		}
	}
}

// WithLogger sets the logger. It is also handed to the default waiter.
func WithLogger(logger *zap.Logger) Option {
	return func(opts *clientOptions) {
		opts.logger = logger
	}
}

// Client submits transactions on behalf of the provider account.
// It is safe for concurrent use.
type Client struct {
	provider  provider.Provider
	waiter    *waiter.Waiter
	feeAmount int64
	logger    *zap.Logger

	mu      sync.Mutex
	account option.Generic[provider.Account]
}

// New creates a client over the provider.
func New(p provider.Provider, opts ...Option) *Client {
	cfg := options.ApplyOptions(defaultClientOptions, opts)
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	if cfg.waiter == nil {
		cfg.waiter = waiter.New(p, waiter.WithLogger(cfg.logger))
	}

	return &Client{
		provider:  p,
		waiter:    cfg.waiter,
		feeAmount: cfg.feeAmount,
		logger:    cfg.logger,
		mu:        sync.Mutex{},
		account:   option.None[provider.Account](),
	}
}

// Provider returns the underlying provider.
func (c *Client) Provider() provider.Provider {
	return c.provider
}

// Waiter returns the waiter used by the client.
func (c *Client) Waiter() *waiter.Waiter {
	return c.waiter
}

// FeeAmount returns the fee paid for every transaction.
func (c *Client) FeeAmount() int64 {
	return c.feeAmount
}

// Account returns the provider account. The first successful lookup is cached
// for the lifetime of the client, failures are not.
func (c *Client) Account(ctx context.Context) (provider.Account, error) {
	c.mu.Lock()
	cached, ok := c.account.Get()
	c.mu.Unlock()

	if ok {
		return cached, nil
	}

	account, err := c.provider.Account(ctx)
	if err != nil {
		return provider.Account{}, fmt.Errorf("failed to get account: %w", err)
	}

	c.mu.Lock()
	c.account = option.Some(account)
	c.mu.Unlock()

	c.logger.Debug("account resolved", zap.String("address", account.Address), zap.Uint64("id", account.ID))

	return account, nil
}

// Balances returns the balances of the provider account.
func (c *Client) Balances(ctx context.Context) ([]provider.Balance, error) {
	account, err := c.Account(ctx)
	if err != nil {
		return nil, err
	}

	balances, err := c.provider.Balances(ctx, account.Address)
	if err != nil {
		return nil, fmt.Errorf("failed to get balances of %s: %w", account.Address, err)
	}

	return balances, nil
}

// SubmitAndWaitForTransaction pays the fee from the account, submits the
// instructions and waits for the outcome.
func (c *Client) SubmitAndWaitForTransaction(
	ctx context.Context,
	account provider.Account,
	instructions []instruction.Instruction,
	requiredSubstates []txn.Requirement,
) (txn.Outcome, error) {
	req := txn.Build(
		instructions,
		[]instruction.Instruction{instruction.PayFee(account.Address, c.feeAmount)},
		requiredSubstates,
		txn.WithAccountID(account.ID),
	)

	return c.waiter.SubmitAndWait(ctx, req)
}

// DecodeMintedPair extracts the two faucet tokens from the changes of a
// deployment transaction using decoder.MintPairV1.
func (c *Client) DecodeMintedPair(changes []substate.Change) (token.Pair, error) {
	pair, err := decoder.DecodeMintedPair(changes, decoder.MintPairV1, FirstSymbol, SecondSymbol)
	if err != nil {
		return token.Pair{}, fmt.Errorf("failed to decode minted tokens: %w", err)
	}

	return pair, nil
}
