package instruction

// Kind represents the variant of an instruction.
type Kind int

const (
	// KindCallFunction calls a template function.
	KindCallFunction Kind = iota
	// KindCallMethod calls a method of a component.
	KindCallMethod
	// KindPutLastOutputOnWorkspace stores the output of the previous instruction
	// in a transaction-scoped workspace slot.
	KindPutLastOutputOnWorkspace
)

func (k Kind) String() string {
	switch k {
	case KindCallFunction:
		return "CallFunction"
	case KindCallMethod:
		return "CallMethod"
	case KindPutLastOutputOnWorkspace:
		return "PutLastInstructionOutputOnWorkspace"
	default:
		return "Unknown"
	}
}
