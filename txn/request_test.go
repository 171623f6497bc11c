package txn_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-txflow/instruction"
	"github.com/tarantool/go-txflow/txn"
)

func makeInstructions(n int) []instruction.Instruction {
	out := make([]instruction.Instruction, 0, n)
	for i := range n {
		switch i % 3 {
		case 0:
			out = append(out, instruction.CallFunction("tpl", fmt.Sprintf("fn_%d", i)))
		case 1:
			out = append(out, instruction.CallMethod("component", fmt.Sprintf("method_%d", i)))
		default:
			out = append(out, instruction.PutLastOutputOnWorkspace(byte(i)))
		}
	}

	return out
}

func TestBuild_PreservesOrder(t *testing.T) {
	t.Parallel()

	fee := []instruction.Instruction{instruction.PayFee("account", 2000)}

	for _, n := range []int{1, 2, 3, 8, 33} {
		t.Run(fmt.Sprintf("instructions_%d", n), func(t *testing.T) {
			t.Parallel()

			ins := makeInstructions(n)
			req := txn.Build(ins, fee, nil)

			assert.Equal(t, ins, req.Instructions())
			assert.Equal(t, fee, req.FeeInstructions())
			require.NoError(t, req.Validate())
		})
	}
}

func TestBuild_Defaults(t *testing.T) {
	t.Parallel()

	req := txn.Build(makeInstructions(1), nil, nil)

	assert.Equal(t, uint64(0), req.AccountID())
	assert.False(t, req.IsDryRun())
	assert.False(t, req.MinEpoch().IsSome())
	assert.False(t, req.MaxEpoch().IsSome())
	assert.Empty(t, req.RequiredSubstates())
}

func TestBuild_Options(t *testing.T) {
	t.Parallel()

	req := txn.Build(makeInstructions(1), nil,
		[]txn.Requirement{txn.Require("component_a"), txn.RequireVersion("component_b", 4)},
		txn.WithAccountID(1),
		txn.WithDryRun(),
		txn.WithMinEpoch(10),
		txn.WithMaxEpoch(20),
	)

	assert.Equal(t, uint64(1), req.AccountID())
	assert.True(t, req.IsDryRun())
	assert.Equal(t, uint64(10), req.MinEpoch().UnwrapOr(0))
	assert.Equal(t, uint64(20), req.MaxEpoch().UnwrapOr(0))

	required := req.RequiredSubstates()
	require.Len(t, required, 2)
	assert.Equal(t, "component_a", required[0].ID)
	assert.False(t, required[0].Version.IsSome())
	assert.Equal(t, uint32(4), required[1].Version.UnwrapOr(0))
}

func TestBuild_ClonesInput(t *testing.T) {
	t.Parallel()

	ins := makeInstructions(2)
	fee := []instruction.Instruction{instruction.PayFee("account", 1)}
	req := txn.Build(ins, fee, nil)

	ins[0] = instruction.CallMethod("other", "other")
	fee[0] = instruction.PayFee("other", 2)

	assert.Equal(t, "fn_0", req.Instructions()[0].Function())
	assert.Equal(t, "account", req.FeeInstructions()[0].Component())

	got := req.Instructions()
	got[1] = instruction.CallMethod("other", "other")
	assert.Equal(t, "method_1", req.Instructions()[1].Method())
}

func TestRequest_Validate(t *testing.T) {
	t.Parallel()

	fee := []instruction.Instruction{instruction.PayFee("account", 2000)}

	require.ErrorIs(t, txn.Build(makeInstructions(1), nil, nil).Validate(), txn.ErrNoFeeInstructions)
	require.ErrorIs(t, txn.Build(nil, fee, nil).Validate(), txn.ErrNoInstructions)
	require.NoError(t, txn.Build(makeInstructions(1), fee, nil).Validate())
}
