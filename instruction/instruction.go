// Package instruction provides the instruction values a transaction is built from.
// Instructions are immutable; their order inside a transaction is significant.
package instruction

import (
	"fmt"
	"slices"
	"strings"
)

// PayFeeMethod is the account method that pays transaction fees.
const PayFeeMethod = "pay_fee"

// Instruction represents a single step executed by the ledger.
type Instruction struct {
	kind Kind
	// target is a template address for function calls and a component address
	// for method calls.
	target string
	// call is the function or method name.
	call string
	args []Arg
	key  []byte
}

// CallFunction creates an instruction calling a template function.
func CallFunction(template, function string, args ...Arg) Instruction {
	return Instruction{
		kind:   KindCallFunction,
		target: template,
		call:   function,
		args:   slices.Clone(args),
		key:    nil,
	}
}

// CallMethod creates an instruction calling a component method.
func CallMethod(component, method string, args ...Arg) Instruction {
	return Instruction{
		kind:   KindCallMethod,
		target: component,
		call:   method,
		args:   slices.Clone(args),
		key:    nil,
	}
}

// PutLastOutputOnWorkspace creates an instruction storing the previous
// instruction's output in the workspace slot with the given key.
func PutLastOutputOnWorkspace(key ...byte) Instruction {
	return Instruction{
		kind:   KindPutLastOutputOnWorkspace,
		target: "",
		call:   "",
		args:   nil,
		key:    slices.Clone(key),
	}
}

// PayFee creates the fee instruction paying amount from the account component.
func PayFee(account string, amount int64) Instruction {
	return CallMethod(account, PayFeeMethod, Amount(amount))
}

// Kind returns the instruction variant.
func (i Instruction) Kind() Kind {
	return i.kind
}

// Template returns the template address of a function call.
func (i Instruction) Template() string {
	if i.kind != KindCallFunction {
		return ""
	}

	return i.target
}

// Component returns the component address of a method call.
func (i Instruction) Component() string {
	if i.kind != KindCallMethod {
		return ""
	}

	return i.target
}

// Function returns the called function name.
func (i Instruction) Function() string {
	if i.kind != KindCallFunction {
		return ""
	}

	return i.call
}

// Method returns the called method name.
func (i Instruction) Method() string {
	if i.kind != KindCallMethod {
		return ""
	}

	return i.call
}

// Args returns a copy of the call arguments.
func (i Instruction) Args() []Arg {
	return slices.Clone(i.args)
}

// Key returns a copy of the workspace key.
func (i Instruction) Key() []byte {
	return slices.Clone(i.key)
}

// IsFeePayment reports whether the instruction pays fees.
func (i Instruction) IsFeePayment() bool {
	return i.kind == KindCallMethod && i.call == PayFeeMethod
}

func (i Instruction) String() string {
	switch i.kind {
	case KindCallFunction, KindCallMethod:
		args := make([]string, 0, len(i.args))
		for _, a := range i.args {
			args = append(args, a.String())
		}

		return fmt.Sprintf("%s(%s.%s(%s))", i.kind, i.target, i.call, strings.Join(args, ", "))
	case KindPutLastOutputOnWorkspace:
		return fmt.Sprintf("%s(%s)", i.kind, formatKey(i.key))
	default:
		return i.kind.String()
	}
}
