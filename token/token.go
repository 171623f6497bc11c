// Package token provides the fungible tokens produced by faucet transactions.
package token

import "strings"

// Token is a minted fungible resource together with the component holding it.
// Only the balance changes after creation, through WithBalance.
type Token struct {
	// Resource is the resource address of the token.
	Resource string `yaml:"resource"`
	// Component is the address of the faucet component owning the supply.
	Component string `yaml:"component"`
	// Symbol is the ticker the token was minted with.
	Symbol string `yaml:"symbol"`
	// Balance is the account balance of the token, 0 until refreshed.
	Balance int64 `yaml:"balance"`
}

// WithBalance returns a copy of the token with the given balance.
func (t Token) WithBalance(balance int64) Token {
	t.Balance = balance
	return t
}

// Matches reports whether the resource address refers to this token.
// Addresses are compared case-insensitively.
func (t Token) Matches(resource string) bool {
	return strings.EqualFold(t.Resource, resource)
}

// Pair is the two tokens minted by a single faucet deployment.
type Pair struct {
	First  Token `yaml:"first"`
	Second Token `yaml:"second"`
}
