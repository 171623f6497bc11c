package instruction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tarantool/go-txflow/instruction"
)

func TestCallFunction(t *testing.T) {
	t.Parallel()

	ins := instruction.CallFunction("template_1", "mint_with_symbol",
		instruction.Amount(100000), instruction.Literal("A"))

	assert.Equal(t, instruction.KindCallFunction, ins.Kind())
	assert.Equal(t, "template_1", ins.Template())
	assert.Equal(t, "mint_with_symbol", ins.Function())
	assert.Empty(t, ins.Component())
	assert.Empty(t, ins.Method())
	assert.Nil(t, ins.Key())
	assert.Equal(t, []instruction.Arg{instruction.Literal("100000"), instruction.Literal("A")}, ins.Args())
	assert.False(t, ins.IsFeePayment())
}

func TestCallMethod(t *testing.T) {
	t.Parallel()

	ins := instruction.CallMethod("component_1", "deposit", instruction.Workspace(0))

	assert.Equal(t, instruction.KindCallMethod, ins.Kind())
	assert.Equal(t, "component_1", ins.Component())
	assert.Equal(t, "deposit", ins.Method())
	assert.Empty(t, ins.Template())
	assert.Empty(t, ins.Function())
	assert.Len(t, ins.Args(), 1)
	assert.True(t, ins.Args()[0].IsWorkspace())
	assert.Equal(t, []byte{0}, ins.Args()[0].Key())
}

func TestPutLastOutputOnWorkspace(t *testing.T) {
	t.Parallel()

	ins := instruction.PutLastOutputOnWorkspace(0, 1)

	assert.Equal(t, instruction.KindPutLastOutputOnWorkspace, ins.Kind())
	assert.Equal(t, []byte{0, 1}, ins.Key())
	assert.Empty(t, ins.Args())
	assert.Equal(t, "PutLastInstructionOutputOnWorkspace([0,1])", ins.String())
}

func TestPayFee(t *testing.T) {
	t.Parallel()

	ins := instruction.PayFee("component_account", 2000)

	assert.True(t, ins.IsFeePayment())
	assert.Equal(t, "component_account", ins.Component())
	assert.Equal(t, instruction.PayFeeMethod, ins.Method())
	assert.Equal(t, "2000", ins.Args()[0].Value())
	assert.Equal(t, `CallMethod(component_account.pay_fee("2000"))`, ins.String())
}

func TestInstruction_Immutable(t *testing.T) {
	t.Parallel()

	args := []instruction.Arg{instruction.Literal("x")}
	ins := instruction.CallMethod("c", "m", args...)

	args[0] = instruction.Literal("changed")
	assert.Equal(t, "x", ins.Args()[0].Value())

	got := ins.Args()
	got[0] = instruction.Literal("changed")
	assert.Equal(t, "x", ins.Args()[0].Value())

	key := []byte{7}
	put := instruction.PutLastOutputOnWorkspace(key...)
	key[0] = 9
	assert.Equal(t, []byte{7}, put.Key())
}

func TestArg(t *testing.T) {
	t.Parallel()

	lit := instruction.Literal("A")
	assert.False(t, lit.IsWorkspace())
	assert.Equal(t, "A", lit.Value())
	assert.Nil(t, lit.Key())
	assert.Equal(t, `"A"`, lit.String())

	ref := instruction.Workspace(3)
	assert.True(t, ref.IsWorkspace())
	assert.Empty(t, ref.Value())
	assert.Equal(t, "Workspace[3]", ref.String())
}
