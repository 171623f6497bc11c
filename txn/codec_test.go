package txn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/tarantool/go-txflow/instruction"
	"github.com/tarantool/go-txflow/txn"
)

type wireRequirement struct {
	SubstateID string  `msgpack:"substate_id"`
	Version    *uint32 `msgpack:"version"`
}

type wireRequest struct {
	AccountID         uint64            `msgpack:"account_id"`
	Instructions      []map[string]any  `msgpack:"instructions"`
	FeeInstructions   []map[string]any  `msgpack:"fee_instructions"`
	Inputs            []any             `msgpack:"inputs"`
	InputRefs         []any             `msgpack:"input_refs"`
	RequiredSubstates []wireRequirement `msgpack:"required_substates"`
	IsDryRun          bool              `msgpack:"is_dry_run"`
	MinEpoch          *uint64           `msgpack:"min_epoch"`
	MaxEpoch          *uint64           `msgpack:"max_epoch"`
}

func TestRequest_EncodeMsgpack(t *testing.T) {
	t.Parallel()

	req := txn.Build(
		[]instruction.Instruction{
			instruction.CallFunction("tpl", "mint_with_symbol", instruction.Literal("A")),
			instruction.CallFunction("tpl", "mint_with_symbol", instruction.Literal("B")),
		},
		[]instruction.Instruction{instruction.PayFee("account", 2000)},
		[]txn.Requirement{txn.Require("account"), txn.RequireVersion("faucet", 3)},
		txn.WithAccountID(1),
		txn.WithMaxEpoch(100),
	)

	data, err := msgpack.Marshal(req)
	require.NoError(t, err)

	var out wireRequest
	require.NoError(t, msgpack.Unmarshal(data, &out))

	assert.Equal(t, uint64(1), out.AccountID)
	require.Len(t, out.Instructions, 2)
	assert.Contains(t, out.Instructions[0], "CallFunction")
	require.Len(t, out.FeeInstructions, 1)
	assert.Contains(t, out.FeeInstructions[0], "CallMethod")
	assert.Empty(t, out.Inputs)
	assert.Empty(t, out.InputRefs)
	require.Len(t, out.RequiredSubstates, 2)
	assert.Equal(t, "account", out.RequiredSubstates[0].SubstateID)
	assert.Nil(t, out.RequiredSubstates[0].Version)
	require.NotNil(t, out.RequiredSubstates[1].Version)
	assert.Equal(t, uint32(3), *out.RequiredSubstates[1].Version)
	assert.False(t, out.IsDryRun)
	assert.Nil(t, out.MinEpoch)
	require.NotNil(t, out.MaxEpoch)
	assert.Equal(t, uint64(100), *out.MaxEpoch)
}

func TestRequest_EncodeMsgpack_Deterministic(t *testing.T) {
	t.Parallel()

	build := func() txn.Request {
		return txn.Build(
			[]instruction.Instruction{instruction.CallMethod("faucet", "take_free_coins")},
			[]instruction.Instruction{instruction.PayFee("account", 2000)},
			nil,
		)
	}

	first, err := msgpack.Marshal(build())
	require.NoError(t, err)

	second, err := msgpack.Marshal(build())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
