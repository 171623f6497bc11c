package tcs

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/tarantool/go-txflow/provider"
	"github.com/tarantool/go-txflow/substate"
	"github.com/tarantool/go-txflow/txn"
)

type acceptReply struct {
	UpSubstates   []substate.Change `msgpack:"up_substates"`
	DownSubstates []substate.Change `msgpack:"down_substates"`
}

type resultReply struct {
	Accept *acceptReply `msgpack:"Accept"`
	Reject string       `msgpack:"Reject"`
}

type statusReply struct {
	Status string       `msgpack:"status"`
	Result *resultReply `msgpack:"result"`
}

func (r *statusReply) DecodeMsgpack(decoder *msgpack.Decoder) error {
	type plain statusReply

	err := decoder.Decode((*plain)(r))
	if err != nil {
		return NewStatusDecodingError("", err)
	}

	return nil
}

func (r statusReply) asStatusResponse() (txn.StatusResponse, error) {
	status, err := txn.ParseStatus(r.Status)
	if err != nil {
		return txn.StatusResponse{}, NewStatusDecodingError("status name", err)
	}

	resp := txn.StatusResponse{Status: status, Result: nil}
	if r.Result == nil {
		return resp, nil
	}

	resp.Result = &txn.ResultPayload{Accept: nil, Reject: r.Result.Reject}
	if r.Result.Accept != nil {
		resp.Result.Accept = &txn.AcceptBranch{
			UpSubstates:   r.Result.Accept.UpSubstates,
			DownSubstates: r.Result.Accept.DownSubstates,
		}
	}

	return resp, nil
}

type accountReply struct {
	Address string `msgpack:"address"`
	ID      uint64 `msgpack:"id"`
}

func (r accountReply) asAccount() provider.Account {
	return provider.Account{Address: r.Address, ID: r.ID}
}

type balanceReply struct {
	Resource string `msgpack:"resource_address"`
	Amount   int64  `msgpack:"balance"`
}

func asBalances(replies []balanceReply) []provider.Balance {
	balances := make([]provider.Balance, 0, len(replies))
	for _, r := range replies {
		balances = append(balances, provider.Balance{Resource: r.Resource, Amount: r.Amount})
	}

	return balances
}
