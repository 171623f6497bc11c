// Package dummy provides an in-memory ledger implementing provider.Provider
// for demonstration and tests. It executes the instructions it understands
// (faucet minting, taking free coins, deposits and fee payments) and reports
// the resulting substate changes in ledger order.
package dummy

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/tarantool/go-txflow/internal/options"
	"github.com/tarantool/go-txflow/provider"
	"github.com/tarantool/go-txflow/txn"
)

const (
	// MintFunction is the template function creating a faucet for a symbol.
	MintFunction = "mint_with_symbol"
	// TakeMethod is the faucet method returning a bucket of free coins.
	TakeMethod = "take_free_coins"
	// DepositMethod is the account method consuming a bucket.
	DepositMethod = "deposit"

	// DefaultFreeCoins is the bucket size returned by TakeMethod.
	DefaultFreeCoins = 1000
)

var (
	// ErrUnknownHandle is returned by Status for handles this ledger never issued.
	ErrUnknownHandle = errors.New("unknown transaction handle")
	// ErrUnknownAccount is returned by Balances for foreign addresses.
	ErrUnknownAccount = errors.New("unknown account")
)

type faucet struct {
	resource string
	vault    string
}

type bucket struct {
	resource string
	amount   int64
}

// transaction is a submitted request and its precomputed result.
type transaction struct {
	polls  int
	dryRun bool
	// effect commits the transaction to the ledger; nil for rejections.
	effect    func()
	result    txn.ResultPayload
	finalized bool
}

type providerOptions struct {
	account      provider.Account
	pendingPolls int
	freeCoins    int64
	rejections   map[string]string
}

func defaultProviderOptions() providerOptions {
	return providerOptions{
		account: provider.Account{
			Address: "component_" + newAddress(),
			ID:      1,
		},
		pendingPolls: 0,
		freeCoins:    DefaultFreeCoins,
		rejections:   map[string]string{},
	}
}

// Option configures the in-memory ledger.
type Option = options.OptionCallback[providerOptions]

// WithAccount sets the wallet account of the ledger.
func WithAccount(account provider.Account) Option {
	return func(opts *providerOptions) {
		opts.account = account
	}
}

// WithPendingPolls makes every transaction report Pending for the given
// number of status queries before it is finalized.
func WithPendingPolls(polls int) Option {
	return func(opts *providerOptions) {
		opts.pendingPolls = polls
	}
}

// WithFreeCoins sets the bucket size returned by the faucet.
func WithFreeCoins(amount int64) Option {
	return func(opts *providerOptions) {
		opts.freeCoins = amount
	}
}

// WithRejection makes every transaction calling the given function or method
// finalize as rejected with the reason.
func WithRejection(call, reason string) Option {
	return func(opts *providerOptions) {
		opts.rejections[call] = reason
	}
}

// Provider is a thread-safe in-memory ledger.
type Provider struct {
	opts providerOptions

	mu       sync.Mutex
	feeVault string
	// faucets maps a faucet component address to its resource.
	faucets map[string]faucet
	// balances and vaults are keyed by resource address.
	balances map[string]int64
	vaults   map[string]string
	// versions holds the current version of every existing substate.
	versions     map[string]uint32
	transactions map[txn.Handle]*transaction
}

// New returns an empty ledger holding only the wallet account.
func New(opts ...Option) *Provider {
	cfg := options.ApplyOptions(defaultProviderOptions, opts)
	feeVault := "vault_" + newAddress()

	return &Provider{
		opts:     cfg,
		mu:       sync.Mutex{},
		feeVault: feeVault,
		faucets:  make(map[string]faucet),
		balances: make(map[string]int64),
		vaults:   make(map[string]string),
		versions: map[string]uint32{
			cfg.account.Address: 0,
			feeVault:            0,
		},
		transactions: make(map[txn.Handle]*transaction),
	}
}

func newAddress() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Submit validates the request synchronously and queues it for finalization.
func (p *Provider) Submit(ctx context.Context, req txn.Request) (txn.Handle, error) {
	if err := ctx.Err(); err != nil {
		return "", err //nolint:wrapcheck
	}

	if err := req.Validate(); err != nil {
		return "", txn.NewSubmitError(err)
	}

	if req.AccountID() != p.opts.account.ID {
		return "", txn.NewSubmitError(fmt.Errorf("%w: id %d", ErrUnknownAccount, req.AccountID()))
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	handle := txn.Handle(newAddress())
	p.transactions[handle] = p.execute(req)

	return handle, nil
}

// Status reports the status of a transaction, finalizing it once the
// configured number of pending polls has passed.
func (p *Provider) Status(ctx context.Context, handle txn.Handle) (txn.StatusResponse, error) {
	if err := ctx.Err(); err != nil {
		return txn.StatusResponse{}, err //nolint:wrapcheck
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	tr, ok := p.transactions[handle]
	if !ok {
		return txn.StatusResponse{}, fmt.Errorf("%w: %s", ErrUnknownHandle, handle)
	}

	if !tr.finalized {
		tr.polls++
		if tr.polls <= p.opts.pendingPolls {
			return txn.StatusResponse{Status: txn.StatusPending, Result: nil}, nil
		}

		tr.finalized = true
		if tr.effect != nil && !tr.dryRun {
			tr.effect()
		}
	}

	result := tr.result

	if result.Accept != nil {
		return txn.StatusResponse{Status: txn.StatusAccepted, Result: &result}, nil
	}

	return txn.StatusResponse{Status: txn.StatusRejected, Result: &result}, nil
}

// Account returns the wallet account.
func (p *Provider) Account(ctx context.Context) (provider.Account, error) {
	if err := ctx.Err(); err != nil {
		return provider.Account{}, err //nolint:wrapcheck
	}

	return p.opts.account, nil
}

// Balances returns the account balances ordered by resource address.
func (p *Provider) Balances(ctx context.Context, address string) ([]provider.Balance, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck
	}

	if address != p.opts.account.Address {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAccount, address)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	balances := make([]provider.Balance, 0, len(p.balances))
	for resource, amount := range p.balances {
		balances = append(balances, provider.Balance{Resource: resource, Amount: amount})
	}

	slices.SortFunc(balances, func(a, b provider.Balance) int {
		return strings.Compare(a.Resource, b.Resource)
	})

	return balances, nil
}
