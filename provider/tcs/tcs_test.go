// Package tcs_test provides unit tests for the Tarantool provider.
// It uses a scripted doer to test the provider without a real Tarantool connection.
package tcs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarantool/go-iproto"
	"github.com/tarantool/go-tarantool/v2"

	"github.com/tarantool/go-txflow/instruction"
	txTesting "github.com/tarantool/go-txflow/internal/testing"
	"github.com/tarantool/go-txflow/provider"
	"github.com/tarantool/go-txflow/provider/tcs"
	"github.com/tarantool/go-txflow/substate"
	"github.com/tarantool/go-txflow/txn"
)

func testRequest() txn.Request {
	return txn.Build(
		[]instruction.Instruction{instruction.CallMethod("component_faucet", "take_free_coins")},
		[]instruction.Instruction{instruction.PayFee("component_account", 2000)},
		[]txn.Requirement{txn.Require("component_account")},
		txn.WithAccountID(1),
	)
}

func change(tag, address string, version uint32) []any {
	return []any{map[string]any{tag: address}, map[string]any{"version": version}}
}

func TestProvider_Submit(t *testing.T) {
	t.Parallel()

	doer := txTesting.NewMockDoer(t, txTesting.NewMockResponse(t, []any{"tx-1"}))
	p := tcs.New(doer)

	handle, err := p.Submit(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, txn.Handle("tx-1"), handle)

	require.Len(t, doer.Requests, 1)

	name, args := txTesting.CallBody(t, doer.Requests[0])
	assert.Equal(t, "txflow.submit_transaction", name)
	require.Len(t, args, 1)

	body, ok := args[0].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 1, body["account_id"])
	assert.Equal(t, false, body["is_dry_run"])
	assert.Nil(t, body["min_epoch"])
}

func TestProvider_Submit_CustomProcedure(t *testing.T) {
	t.Parallel()

	doer := txTesting.NewMockDoer(t, txTesting.NewMockResponse(t, []any{"tx-1"}))
	p := tcs.New(doer, tcs.WithProcedures(tcs.Procedures{Submit: "wallet.submit"})) //nolint:exhaustruct

	_, err := p.Submit(context.Background(), testRequest())
	require.NoError(t, err)

	name, _ := txTesting.CallBody(t, doer.Requests[0])
	assert.Equal(t, "wallet.submit", name)
}

func TestProvider_Submit_Errors(t *testing.T) {
	t.Parallel()

	serverErr := tarantool.Error{Code: iproto.ER_PROC_LUA, Msg: "insufficient permissions"} //nolint:exhaustruct
	transportErr := errors.New("connection closed")

	tests := []struct {
		name      string
		response  any
		isSubmit  bool
		target    error
		errorText string
	}{
		{
			name:      "procedure error is a refusal",
			response:  serverErr,
			isSubmit:  true,
			target:    nil,
			errorText: "insufficient permissions",
		},
		{
			name:      "transport error is not a refusal",
			response:  transportErr,
			isSubmit:  false,
			target:    transportErr,
			errorText: "failed to call txflow.submit_transaction",
		},
		{
			name:      "empty reply",
			response:  txTesting.NewMockResponse(t, []any{}),
			isSubmit:  false,
			target:    tcs.ErrEmptyReply,
			errorText: "failed to decode handle",
		},
		{
			name:      "empty handle",
			response:  txTesting.NewMockResponse(t, []any{""}),
			isSubmit:  false,
			target:    tcs.ErrEmptyHandle,
			errorText: "failed to decode handle",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p := tcs.New(txTesting.NewMockDoer(t, tc.response))

			handle, err := p.Submit(context.Background(), testRequest())
			require.Error(t, err)
			assert.True(t, handle.IsZero())
			assert.Equal(t, tc.isSubmit, errors.Is(err, txn.ErrSubmit))
			assert.Contains(t, err.Error(), tc.errorText)

			if tc.target != nil {
				require.ErrorIs(t, err, tc.target)
			}
		})
	}
}

func TestProvider_Submit_InvalidRequest(t *testing.T) {
	t.Parallel()

	doer := txTesting.NewMockDoer(t)
	p := tcs.New(doer)

	req := txn.Build(testRequest().Instructions(), nil, nil)

	_, err := p.Submit(context.Background(), req)
	require.ErrorIs(t, err, txn.ErrSubmit)
	require.ErrorIs(t, err, txn.ErrNoFeeInstructions)
	assert.Empty(t, doer.Requests)
}

func TestProvider_Status(t *testing.T) {
	t.Parallel()

	accepted := map[string]any{
		"status": "Accepted",
		"result": map[string]any{
			"Accept": map[string]any{
				"up_substates": []any{
					change("Component", "component_account", 3),
					change("Resource", "resource_a", 0),
				},
				"down_substates": []any{
					change("Component", "component_account", 2),
				},
			},
		},
	}

	doer := txTesting.NewMockDoer(t,
		txTesting.NewMockResponse(t, []any{map[string]any{"status": "Pending"}}),
		txTesting.NewMockResponse(t, []any{accepted}),
		txTesting.NewMockResponse(t, []any{map[string]any{
			"status": "Rejected",
			"result": map[string]any{"Reject": "out of fees"},
		}}),
	)
	p := tcs.New(doer)
	ctx := context.Background()

	resp, err := p.Status(ctx, "tx-1")
	require.NoError(t, err)
	assert.Equal(t, txn.StatusResponse{Status: txn.StatusPending, Result: nil}, resp)

	resp, err = p.Status(ctx, "tx-1")
	require.NoError(t, err)
	assert.Equal(t, txn.StatusAccepted, resp.Status)
	require.NotNil(t, resp.Result)
	require.NotNil(t, resp.Result.Accept)
	assert.Equal(t, []substate.Change{
		{ID: substate.Component("component_account"), Version: 3},
		{ID: substate.Resource("resource_a"), Version: 0},
	}, resp.Result.Accept.UpSubstates)
	assert.Len(t, resp.Result.Accept.DownSubstates, 1)

	resp, err = p.Status(ctx, "tx-1")
	require.NoError(t, err)
	assert.Equal(t, txn.StatusRejected, resp.Status)
	require.NotNil(t, resp.Result)
	assert.Nil(t, resp.Result.Accept)
	assert.Equal(t, "out of fees", resp.Result.Reject)

	name, args := txTesting.CallBody(t, doer.Requests[0])
	assert.Equal(t, "txflow.transaction_status", name)
	assert.Equal(t, []any{"tx-1"}, args)
}

func TestProvider_Status_DecodingErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body any
	}{
		{
			name: "unknown status",
			body: []any{map[string]any{"status": "Exploded"}},
		},
		{
			name: "malformed change",
			body: []any{map[string]any{
				"status": "Accepted",
				"result": map[string]any{
					"Accept": map[string]any{"up_substates": []any{[]any{"Component"}}},
				},
			}},
		},
		{
			name: "empty reply",
			body: []any{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p := tcs.New(txTesting.NewMockDoer(t, txTesting.NewMockResponse(t, tc.body)))

			_, err := p.Status(context.Background(), "tx-1")
			require.Error(t, err)

			var decodingErr tcs.DecodingError
			require.ErrorAs(t, err, &decodingErr)
		})
	}
}

func TestProvider_Account(t *testing.T) {
	t.Parallel()

	doer := txTesting.NewMockDoer(t,
		txTesting.NewMockResponse(t, []any{map[string]any{"address": "component_account", "id": 7}}),
	)
	p := tcs.New(doer)

	account, err := p.Account(context.Background())
	require.NoError(t, err)
	assert.Equal(t, provider.Account{Address: "component_account", ID: 7}, account)

	name, args := txTesting.CallBody(t, doer.Requests[0])
	assert.Equal(t, "txflow.account", name)
	assert.Empty(t, args)
}

func TestProvider_Balances(t *testing.T) {
	t.Parallel()

	doer := txTesting.NewMockDoer(t,
		txTesting.NewMockResponse(t, []any{[]any{
			map[string]any{"resource_address": "resource_a", "balance": 1000},
			map[string]any{"resource_address": "resource_b", "balance": 0},
		}}),
		errors.New("timeout"),
	)
	p := tcs.New(doer)
	ctx := context.Background()

	balances, err := p.Balances(ctx, "component_account")
	require.NoError(t, err)
	assert.Equal(t, []provider.Balance{
		{Resource: "resource_a", Amount: 1000},
		{Resource: "resource_b", Amount: 0},
	}, balances)

	_, err = p.Balances(ctx, "component_account")
	require.Error(t, err)

	var callErr tcs.CallError
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, "txflow.account_balances", callErr.Procedure)
}

func TestProvider_CloseWithoutConnect(t *testing.T) {
	t.Parallel()

	p := tcs.New(txTesting.NewMockDoer(t))
	require.NoError(t, p.Close())
}
