package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tarantool/go-txflow/token"
)

func TestToken_WithBalance(t *testing.T) {
	t.Parallel()

	tok := token.Token{Resource: "resource_1", Component: "component_1", Symbol: "A", Balance: 0}
	updated := tok.WithBalance(1000)

	assert.Equal(t, int64(0), tok.Balance)
	assert.Equal(t, int64(1000), updated.Balance)
	assert.Equal(t, tok.Resource, updated.Resource)
	assert.Equal(t, tok.Component, updated.Component)
	assert.Equal(t, tok.Symbol, updated.Symbol)
}

func TestToken_Matches(t *testing.T) {
	t.Parallel()

	tok := token.Token{Resource: "resource_AbC", Component: "", Symbol: "", Balance: 0}

	assert.True(t, tok.Matches("resource_abc"))
	assert.True(t, tok.Matches("RESOURCE_ABC"))
	assert.False(t, tok.Matches("resource_abd"))
}
