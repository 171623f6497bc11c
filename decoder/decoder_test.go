package decoder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-txflow/decoder"
	"github.com/tarantool/go-txflow/substate"
	"github.com/tarantool/go-txflow/token"
	"github.com/tarantool/go-txflow/txn"
)

func vault(address string) substate.Change {
	return substate.NewChange(substate.ID{Tag: substate.TagVault, Address: address})
}

func mintedChanges() []substate.Change {
	return []substate.Change{
		substate.NewChange(substate.Component("ACC")),
		vault("FEE"),
		substate.NewChange(substate.Resource("R1")),
		vault("V1"),
		substate.NewChange(substate.Component("C1")),
		substate.NewChange(substate.Resource("R2")),
		vault("V2"),
		substate.NewChange(substate.Component("C2")),
	}
}

func TestDecodeMintedPair(t *testing.T) {
	t.Parallel()

	pair, err := decoder.DecodeMintedPair(mintedChanges(), decoder.MintPairV1, "A", "B")
	require.NoError(t, err)

	assert.Equal(t, token.Pair{
		First:  token.Token{Resource: "R1", Component: "C1", Symbol: "A", Balance: 0},
		Second: token.Token{Resource: "R2", Component: "C2", Symbol: "B", Balance: 0},
	}, pair)
}

func TestDecodeMintedPair_Deterministic(t *testing.T) {
	t.Parallel()

	changes := mintedChanges()
	snapshot := mintedChanges()

	first, err := decoder.DecodeMintedPair(changes, decoder.MintPairV1, "A", "B")
	require.NoError(t, err)

	for range 10 {
		again, err := decoder.DecodeMintedPair(changes, decoder.MintPairV1, "A", "B")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}

	assert.Equal(t, snapshot, changes, "change list must not be mutated")
}

func TestDecodeMintedPair_ExtraEntries(t *testing.T) {
	t.Parallel()

	changes := append(mintedChanges(), vault("EXTRA"), substate.NewChange(substate.Component("C3")))

	pair, err := decoder.DecodeMintedPair(changes, decoder.MintPairV1, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, "C2", pair.Second.Component)
}

func TestDecodeMintedPair_UnexpectedShape(t *testing.T) {
	t.Parallel()

	swap := func(index int, change substate.Change) []substate.Change {
		changes := mintedChanges()
		changes[index] = change

		return changes
	}

	tests := []struct {
		name     string
		changes  []substate.Change
		expected decoder.UnexpectedShapeError
	}{
		{
			name:    "empty list",
			changes: nil,
			expected: decoder.UnexpectedShapeError{
				Index: 2, Expected: substate.TagResource, Actual: substate.TagNone,
			},
		},
		{
			name:    "seven entries",
			changes: mintedChanges()[:7],
			expected: decoder.UnexpectedShapeError{
				Index: 7, Expected: substate.TagComponent, Actual: substate.TagNone,
			},
		},
		{
			name:    "index 2 is not a resource",
			changes: swap(2, vault("V0")),
			expected: decoder.UnexpectedShapeError{
				Index: 2, Expected: substate.TagResource, Actual: substate.TagVault,
			},
		},
		{
			name:    "index 4 is not a component",
			changes: swap(4, substate.NewChange(substate.Resource("R9"))),
			expected: decoder.UnexpectedShapeError{
				Index: 4, Expected: substate.TagComponent, Actual: substate.TagResource,
			},
		},
		{
			name: "index 7 has an unknown tag",
			changes: swap(7, substate.NewChange(substate.ID{
				Tag: substate.TagUnknown, Address: "X",
			})),
			expected: decoder.UnexpectedShapeError{
				Index: 7, Expected: substate.TagComponent, Actual: substate.TagUnknown,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			pair, err := decoder.DecodeMintedPair(tc.changes, decoder.MintPairV1, "A", "B")
			require.Error(t, err)
			require.ErrorIs(t, err, decoder.ErrDecode)
			assert.Equal(t, token.Pair{}, pair, "no partially populated tokens")

			var shapeErr decoder.UnexpectedShapeError
			require.ErrorAs(t, err, &shapeErr)
			assert.Equal(t, tc.expected, shapeErr)
		})
	}
}

func TestDecodeMintedPair_ZeroLayout(t *testing.T) {
	t.Parallel()

	_, err := decoder.DecodeMintedPair(mintedChanges(), decoder.Layout{}, "A", "B")
	require.ErrorIs(t, err, decoder.ErrInvalidLayout)
}

func TestDecodeMintedPair_CustomLayout(t *testing.T) {
	t.Parallel()

	layout, err := decoder.NewLayout("swapped/v1",
		decoder.Slot{Index: 0, Role: decoder.RoleComponent, Token: decoder.SecondToken},
		decoder.Slot{Index: 1, Role: decoder.RoleResource, Token: decoder.SecondToken},
		decoder.Slot{Index: 2, Role: decoder.RoleComponent, Token: decoder.FirstToken},
		decoder.Slot{Index: 3, Role: decoder.RoleResource, Token: decoder.FirstToken},
	)
	require.NoError(t, err)

	pair, err := decoder.DecodeMintedPair([]substate.Change{
		substate.NewChange(substate.Component("C2")),
		substate.NewChange(substate.Resource("R2")),
		substate.NewChange(substate.Component("C1")),
		substate.NewChange(substate.Resource("R1")),
	}, layout, "X", "Y")
	require.NoError(t, err)
	assert.Equal(t, token.Token{Resource: "R1", Component: "C1", Symbol: "X", Balance: 0}, pair.First)
	assert.Equal(t, token.Token{Resource: "R2", Component: "C2", Symbol: "Y", Balance: 0}, pair.Second)
}

func TestAcceptedChanges(t *testing.T) {
	t.Parallel()

	changes := mintedChanges()

	got, err := decoder.AcceptedChanges(txn.StatusResponse{
		Status: txn.StatusAccepted,
		Result: &txn.ResultPayload{
			Accept: &txn.AcceptBranch{UpSubstates: changes, DownSubstates: nil},
			Reject: "",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, changes, got)
}

func TestAcceptedChanges_Missing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		resp txn.StatusResponse
	}{
		{
			name: "no result",
			resp: txn.StatusResponse{Status: txn.StatusAccepted, Result: nil},
		},
		{
			name: "no accept branch",
			resp: txn.StatusResponse{
				Status: txn.StatusAccepted,
				Result: &txn.ResultPayload{Accept: nil, Reject: ""},
			},
		},
		{
			name: "rejected",
			resp: txn.StatusResponse{
				Status: txn.StatusRejected,
				Result: &txn.ResultPayload{Accept: nil, Reject: "no fees"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			changes, err := decoder.AcceptedChanges(tc.resp)
			require.ErrorIs(t, err, decoder.ErrDecode)
			assert.Nil(t, changes)

			var missingErr decoder.MissingAcceptPayloadError
			require.ErrorAs(t, err, &missingErr)
			assert.Equal(t, tc.resp.Status, missingErr.Status)
		})
	}
}
