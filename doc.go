// Package txflow submits ledger transactions through a wallet provider and
// waits for their finality.
//
// A Client pays the fee of every transaction from the provider account and
// delegates polling to a [github.com/tarantool/go-txflow/waiter.Waiter].
// See the [github.com/tarantool/go-txflow/faucet] package for the faucet
// deployment flows built on top of it.
package txflow
