// Package decoder extracts typed tokens from the substate change list of an
// accepted transaction. Positions are never hard-coded: a versioned Layout
// declares which entry fills which token field, and every entry is checked
// against the expected tag before it is used.
package decoder

import (
	"github.com/tarantool/go-txflow/substate"
	"github.com/tarantool/go-txflow/token"
	"github.com/tarantool/go-txflow/txn"
)

// DecodeMintedPair builds the two tokens described by the layout. Balances are
// zero. Either both tokens are returned fully populated or an error is.
func DecodeMintedPair(
	changes []substate.Change,
	layout Layout,
	firstSymbol string,
	secondSymbol string,
) (token.Pair, error) {
	if layout.IsZero() {
		return token.Pair{}, errLayout("", ErrEmptyVersion)
	}

	tokens := [tokensPerPair]token.Token{
		{Resource: "", Component: "", Symbol: firstSymbol, Balance: 0},
		{Resource: "", Component: "", Symbol: secondSymbol, Balance: 0},
	}

	for _, slot := range layout.slots {
		expected := slot.Role.Tag()

		if slot.Index >= len(changes) {
			return token.Pair{}, UnexpectedShapeError{
				Index:    slot.Index,
				Expected: expected,
				Actual:   substate.TagNone,
			}
		}

		entry := changes[slot.Index]
		if entry.Tag() != expected {
			return token.Pair{}, UnexpectedShapeError{
				Index:    slot.Index,
				Expected: expected,
				Actual:   entry.Tag(),
			}
		}

		switch slot.Role {
		case RoleResource:
			tokens[slot.Token].Resource = entry.Address()
		case RoleComponent:
			tokens[slot.Token].Component = entry.Address()
		}
	}

	return token.Pair{First: tokens[FirstToken], Second: tokens[SecondToken]}, nil
}

// AcceptedChanges returns the created and updated substates of an accepted
// transaction. A response that is not accepted, or lacks the accept branch,
// is a MissingAcceptPayloadError.
func AcceptedChanges(resp txn.StatusResponse) ([]substate.Change, error) {
	if resp.Status != txn.StatusAccepted || resp.Result == nil || resp.Result.Accept == nil {
		return nil, MissingAcceptPayloadError{Status: resp.Status}
	}

	return resp.Result.Accept.UpSubstates, nil
}
