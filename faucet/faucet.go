// Package faucet deploys token faucets and collects free coins from them.
package faucet

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	txflow "github.com/tarantool/go-txflow"
	"github.com/tarantool/go-txflow/decoder"
	"github.com/tarantool/go-txflow/instruction"
	"github.com/tarantool/go-txflow/provider"
	"github.com/tarantool/go-txflow/token"
	"github.com/tarantool/go-txflow/txn"
)

const (
	// MintFunction is the template function creating a faucet for a symbol.
	MintFunction = "mint_with_symbol"
	// TakeMethod is the faucet method returning a bucket of free coins.
	TakeMethod = "take_free_coins"
	// DepositMethod is the account method consuming a bucket.
	DepositMethod = "deposit"

	// DefaultTemplateAddress is the address of the faucet template.
	DefaultTemplateAddress = "template_faucet"
	// DefaultInitialSupply is the supply minted for every symbol.
	DefaultInitialSupply = "100000"
)

var (
	// ErrEmptyTemplate is returned when no faucet template is configured.
	ErrEmptyTemplate = errors.New("faucet template address is empty")
	// ErrInvalidSupply is returned when the initial supply is not a positive integer.
	ErrInvalidSupply = errors.New("invalid initial supply")
	// ErrSameSymbol is returned when both tokens would get the same symbol.
	ErrSameSymbol = errors.New("token symbols must differ")
)

// bucketKey is the workspace slot the taken coins are put on.
var bucketKey = []byte{0} //nolint:gochecknoglobals

// Config describes a faucet deployment.
type Config struct {
	TemplateAddress string
	InitialSupply   string
	FirstSymbol     string
	SecondSymbol    string
	// Layout locates the minted tokens in the deployment changes.
	Layout decoder.Layout
}

// DefaultConfig returns the configuration of the reference faucet template.
func DefaultConfig() Config {
	return Config{
		TemplateAddress: DefaultTemplateAddress,
		InitialSupply:   DefaultInitialSupply,
		FirstSymbol:     txflow.FirstSymbol,
		SecondSymbol:    txflow.SecondSymbol,
		Layout:          decoder.MintPairV1,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	switch {
	case c.TemplateAddress == "":
		return ErrEmptyTemplate
	case c.FirstSymbol == c.SecondSymbol:
		return fmt.Errorf("%w: %q", ErrSameSymbol, c.FirstSymbol)
	case c.Layout.IsZero():
		return decoder.LayoutError{Version: "", Err: decoder.ErrEmptyVersion}
	}

	supply, err := strconv.ParseUint(c.InitialSupply, 10, 64)
	if err != nil || supply == 0 {
		return fmt.Errorf("%w: %q", ErrInvalidSupply, c.InitialSupply)
	}

	return nil
}

// Service runs the faucet flows through a client.
type Service struct {
	client *txflow.Client
	config Config
	logger *zap.Logger
}

// New creates a faucet service. Fees are paid as configured on the client.
func New(client *txflow.Client, config Config, logger *zap.Logger) (*Service, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid faucet config: %w", err)
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		client: client,
		config: config,
		logger: logger,
	}, nil
}

// InitFaucets deploys a faucet for each symbol in a single transaction and
// returns the minted tokens with zero balances.
func (s *Service) InitFaucets(ctx context.Context) (token.Pair, error) {
	account, err := s.client.Account(ctx)
	if err != nil {
		return token.Pair{}, err //nolint:wrapcheck
	}

	outcome, err := s.client.SubmitAndWaitForTransaction(ctx, account, []instruction.Instruction{
		s.mint(s.config.FirstSymbol),
		s.mint(s.config.SecondSymbol),
	}, nil)
	if err != nil {
		return token.Pair{}, fmt.Errorf("failed to deploy faucets: %w", err)
	}

	if err := outcome.Err(); err != nil {
		return token.Pair{}, fmt.Errorf("failed to deploy faucets: %w", err)
	}

	pair, err := decoder.DecodeMintedPair(
		outcome.Changes(), s.config.Layout, s.config.FirstSymbol, s.config.SecondSymbol)
	if err != nil {
		return token.Pair{}, fmt.Errorf("faucet deployment %s: %w", outcome.Handle(), err)
	}

	s.logger.Info("faucets deployed",
		zap.Stringer("handle", outcome.Handle()),
		zap.String("first", pair.First.Component),
		zap.String("second", pair.Second.Component))

	return pair, nil
}

func (s *Service) mint(symbol string) instruction.Instruction {
	return instruction.CallFunction(s.config.TemplateAddress, MintFunction,
		instruction.Literal(s.config.InitialSupply), instruction.Literal(symbol))
}

// TakeFreeCoins takes a bucket from the faucet component and deposits it on
// the account. Rejections and timeouts are returned as outcomes.
func (s *Service) TakeFreeCoins(ctx context.Context, faucetComponent string) (txn.Outcome, error) {
	account, err := s.client.Account(ctx)
	if err != nil {
		return txn.Outcome{}, err //nolint:wrapcheck
	}

	outcome, err := s.client.SubmitAndWaitForTransaction(ctx, account,
		[]instruction.Instruction{
			instruction.CallMethod(faucetComponent, TakeMethod),
			instruction.PutLastOutputOnWorkspace(bucketKey...),
			instruction.CallMethod(account.Address, DepositMethod, instruction.Workspace(bucketKey...)),
		},
		[]txn.Requirement{
			txn.Require(account.Address),
			txn.Require(faucetComponent),
		},
	)
	if err != nil {
		return txn.Outcome{}, fmt.Errorf("failed to take free coins from %s: %w", faucetComponent, err)
	}

	s.logger.Info("free coins taken",
		zap.String("faucet", faucetComponent),
		zap.Stringer("handle", outcome.Handle()),
		zap.Stringer("outcome", outcome.Kind()))

	return outcome, nil
}

// RefreshBalances returns the pair with balances read from the account.
// A resource the account does not hold has a zero balance.
func (s *Service) RefreshBalances(ctx context.Context, pair token.Pair) (token.Pair, error) {
	balances, err := s.client.Balances(ctx)
	if err != nil {
		return token.Pair{}, err //nolint:wrapcheck
	}

	return token.Pair{
		First:  pair.First.WithBalance(balanceOf(balances, pair.First)),
		Second: pair.Second.WithBalance(balanceOf(balances, pair.Second)),
	}, nil
}

func balanceOf(balances []provider.Balance, tok token.Token) int64 {
	for _, balance := range balances {
		if tok.Matches(balance.Resource) {
			return balance.Amount
		}
	}

	return 0
}
