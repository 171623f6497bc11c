package txn

import (
	"slices"

	"github.com/tarantool/go-option"

	"github.com/tarantool/go-txflow/instruction"
)

// Builder assembles a Request section by section.
// Each section can be set once; setting it twice is a programming error and panics.
type Builder struct {
	instructions option.Generic[[]instruction.Instruction]
	fees         option.Generic[[]instruction.Instruction]
	required     option.Generic[[]Requirement]
	epochsSet    bool
	opts         []Option
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		instructions: option.None[[]instruction.Instruction](),
		fees:         option.None[[]instruction.Instruction](),
		required:     option.None[[]Requirement](),
		epochsSet:    false,
		opts:         nil,
	}
}

// Instructions sets the main instructions, executed in the given order.
func (b *Builder) Instructions(instructions ...instruction.Instruction) *Builder {
	if b.instructions.IsSome() {
		panic("instructions are already set")
	}

	b.instructions = option.Some(slices.Clone(instructions))

	return b
}

// Fee sets the fee instructions.
func (b *Builder) Fee(instructions ...instruction.Instruction) *Builder {
	if b.fees.IsSome() {
		panic("fee instructions are already set")
	}

	b.fees = option.Some(slices.Clone(instructions))

	return b
}

// Require sets the required substates.
func (b *Builder) Require(required ...Requirement) *Builder {
	if b.required.IsSome() {
		panic("required substates are already set")
	}

	b.required = option.Some(slices.Clone(required))

	return b
}

// Epochs bounds the epochs the transaction is valid in.
func (b *Builder) Epochs(minEpoch, maxEpoch uint64) *Builder {
	if b.epochsSet {
		panic("epochs are already set")
	}

	b.epochsSet = true
	b.opts = append(b.opts, WithMinEpoch(minEpoch), WithMaxEpoch(maxEpoch))

	return b
}

// Account sets the wallet account id.
func (b *Builder) Account(id uint64) *Builder {
	b.opts = append(b.opts, WithAccountID(id))

	return b
}

// DryRun marks the request as a dry run.
func (b *Builder) DryRun() *Builder {
	b.opts = append(b.opts, WithDryRun())

	return b
}

// Build returns the assembled request.
func (b *Builder) Build() Request {
	return Build(
		b.instructions.UnwrapOr(nil),
		b.fees.UnwrapOr(nil),
		b.required.UnwrapOr(nil),
		b.opts...,
	)
}
