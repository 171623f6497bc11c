// Package provider defines the interface of the wallet/ledger collaborator
// transactions are submitted through. Implementations live in subpackages.
package provider

import (
	"context"

	"github.com/tarantool/go-txflow/txn"
)

// Account is the wallet account transactions are paid from.
type Account struct {
	// Address is the account component address.
	Address string
	// ID is the wallet-local account id.
	ID uint64
}

// Balance is the amount of a resource held by an account.
type Balance struct {
	Resource string
	Amount   int64
}

// Provider is the interface that wallet/ledger providers must implement.
// Implementations must be safe for concurrent use.
type Provider interface {
	// Submit sends the request. An error means the provider refused it
	// synchronously (malformed request, missing permissions); nothing was submitted.
	Submit(ctx context.Context, req txn.Request) (txn.Handle, error)

	// Status reports the current status of a submitted transaction.
	Status(ctx context.Context, handle txn.Handle) (txn.StatusResponse, error)

	// Account returns the default wallet account.
	Account(ctx context.Context) (Account, error)

	// Balances returns the balances of the account with the given address.
	Balances(ctx context.Context, address string) ([]Balance, error)
}
