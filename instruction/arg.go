package instruction

import (
	"slices"
	"strconv"
)

// Arg is a single argument of a function or method call.
// It is either a literal value or a reference to a workspace slot.
type Arg struct {
	literal   string
	workspace []byte
	isRef     bool
}

// Literal returns a literal argument.
func Literal(value string) Arg {
	return Arg{literal: value, workspace: nil, isRef: false}
}

// Amount returns a literal argument holding a decimal amount.
func Amount(value int64) Arg {
	return Literal(strconv.FormatInt(value, 10))
}

// Workspace returns an argument referring to the workspace slot with the given key.
func Workspace(key ...byte) Arg {
	return Arg{literal: "", workspace: slices.Clone(key), isRef: true}
}

// IsWorkspace reports whether the argument refers to a workspace slot.
func (a Arg) IsWorkspace() bool {
	return a.isRef
}

// Value returns the literal value. It is empty for workspace references.
func (a Arg) Value() string {
	return a.literal
}

// Key returns the workspace key. It is nil for literals.
func (a Arg) Key() []byte {
	return slices.Clone(a.workspace)
}

func (a Arg) String() string {
	if a.isRef {
		return "Workspace" + formatKey(a.workspace)
	}

	return strconv.Quote(a.literal)
}

func formatKey(key []byte) string {
	out := "["

	for i, b := range key {
		if i > 0 {
			out += ","
		}

		out += strconv.Itoa(int(b))
	}

	return out + "]"
}
