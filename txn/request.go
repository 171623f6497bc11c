// Package txn provides the transaction request sent to a provider and the
// values describing its lifecycle: handle, status, outcome and errors.
package txn

import (
	"slices"

	"github.com/tarantool/go-option"

	"github.com/tarantool/go-txflow/instruction"
	"github.com/tarantool/go-txflow/internal/options"
)

// Requirement is a substate the ledger must have available to run the transaction.
type Requirement struct {
	// ID is the substate address, e.g. an account component.
	ID string
	// Version pins a substate version; None means any version.
	Version option.Generic[uint32]
}

// Require returns a requirement on any version of the substate.
func Require(id string) Requirement {
	return Requirement{ID: id, Version: option.None[uint32]()}
}

// RequireVersion returns a requirement on a specific substate version.
func RequireVersion(id string, version uint32) Requirement {
	return Requirement{ID: id, Version: option.Some(version)}
}

// Request is a transaction ready for submission.
type Request struct {
	accountID    uint64
	instructions []instruction.Instruction
	fees         []instruction.Instruction
	required     []Requirement
	minEpoch     option.Generic[uint64]
	maxEpoch     option.Generic[uint64]
	dryRun       bool
}

type buildOptions struct {
	accountID uint64
	minEpoch  option.Generic[uint64]
	maxEpoch  option.Generic[uint64]
	dryRun    bool
}

func defaultBuildOptions() buildOptions {
	return buildOptions{
		accountID: 0,
		minEpoch:  option.None[uint64](),
		maxEpoch:  option.None[uint64](),
		dryRun:    false,
	}
}

// Option configures a request built by Build.
type Option = options.OptionCallback[buildOptions]

// WithAccountID sets the wallet account the transaction is signed for.
func WithAccountID(id uint64) Option {
	return func(opts *buildOptions) {
		opts.accountID = id
	}
}

// WithMinEpoch sets the first epoch the transaction is valid in.
func WithMinEpoch(epoch uint64) Option {
	return func(opts *buildOptions) {
		opts.minEpoch = option.Some(epoch)
	}
}

// WithMaxEpoch sets the last epoch the transaction is valid in.
func WithMaxEpoch(epoch uint64) Option {
	return func(opts *buildOptions) {
		opts.maxEpoch = option.Some(epoch)
	}
}

// WithDryRun asks the provider to execute without committing.
func WithDryRun() Option {
	return func(opts *buildOptions) {
		opts.dryRun = true
	}
}

// Build assembles a request. It performs no I/O and no validation; input
// ordering is preserved exactly. Use Validate before submission.
func Build(
	instructions []instruction.Instruction,
	feeInstructions []instruction.Instruction,
	required []Requirement,
	opts ...Option,
) Request {
	cfg := options.ApplyOptions(defaultBuildOptions, opts)

	return Request{
		accountID:    cfg.accountID,
		instructions: slices.Clone(instructions),
		fees:         slices.Clone(feeInstructions),
		required:     slices.Clone(required),
		minEpoch:     cfg.minEpoch,
		maxEpoch:     cfg.maxEpoch,
		dryRun:       cfg.dryRun,
	}
}

// AccountID returns the wallet account id.
func (r Request) AccountID() uint64 {
	return r.accountID
}

// Instructions returns a copy of the main instructions.
func (r Request) Instructions() []instruction.Instruction {
	return slices.Clone(r.instructions)
}

// FeeInstructions returns a copy of the fee instructions.
func (r Request) FeeInstructions() []instruction.Instruction {
	return slices.Clone(r.fees)
}

// RequiredSubstates returns a copy of the required substates.
func (r Request) RequiredSubstates() []Requirement {
	return slices.Clone(r.required)
}

// MinEpoch returns the lower epoch bound.
func (r Request) MinEpoch() option.Generic[uint64] {
	return r.minEpoch
}

// MaxEpoch returns the upper epoch bound.
func (r Request) MaxEpoch() option.Generic[uint64] {
	return r.maxEpoch
}

// IsDryRun reports whether the request is a dry run.
func (r Request) IsDryRun() bool {
	return r.dryRun
}

// Validate enforces the submission policy: a state-changing transaction must
// carry instructions, and every transaction must pay fees.
func (r Request) Validate() error {
	switch {
	case len(r.fees) == 0:
		return ErrNoFeeInstructions
	case len(r.instructions) == 0:
		return ErrNoInstructions
	default:
		return nil
	}
}
