package decoder

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tarantool/go-txflow/marshaller"
	"github.com/tarantool/go-txflow/substate"
)

// Role is the part of a token a slot fills.
type Role int

const (
	// RoleResource fills the resource address of a token.
	RoleResource Role = iota + 1
	// RoleComponent fills the component address of a token.
	RoleComponent
)

// Tag returns the substate tag expected for the role.
func (r Role) Tag() substate.Tag {
	switch r {
	case RoleResource:
		return substate.TagResource
	case RoleComponent:
		return substate.TagComponent
	default:
		return substate.TagUnknown
	}
}

func (r Role) String() string {
	return r.Tag().String()
}

// ParseRole converts a tag name into a role.
func ParseRole(name string) (Role, error) {
	switch substate.ParseTag(name) { //nolint:exhaustive
	case substate.TagResource:
		return RoleResource, nil
	case substate.TagComponent:
		return RoleComponent, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownRole, name)
	}
}

const (
	// FirstToken selects the first token of a pair.
	FirstToken = 0
	// SecondToken selects the second token of a pair.
	SecondToken = 1

	tokensPerPair = 2
)

// Slot binds a position of the change list to a token field.
type Slot struct {
	Index int
	Role  Role
	Token int
}

// Layout is a validated, versioned set of slots. The zero Layout is invalid.
type Layout struct {
	version string
	slots   []Slot
}

// MintPairV1 is the layout of a transaction paying fees from the account and
// minting two faucets: account, fee vault, then resource, vault and component
// of every faucet.
var MintPairV1 = MustLayout("mint-pair/v1", //nolint:gochecknoglobals
	Slot{Index: 2, Role: RoleResource, Token: FirstToken},
	Slot{Index: 4, Role: RoleComponent, Token: FirstToken},
	Slot{Index: 5, Role: RoleResource, Token: SecondToken},
	Slot{Index: 7, Role: RoleComponent, Token: SecondToken},
)

// NewLayout validates the slots and returns a layout with slots ordered by index.
func NewLayout(version string, slots ...Slot) (Layout, error) {
	if strings.TrimSpace(version) == "" {
		return Layout{}, errLayout(version, ErrEmptyVersion)
	}

	seen := make(map[int]struct{}, len(slots))

	var filled [tokensPerPair]map[Role]int

	for _, slot := range slots {
		switch {
		case slot.Index < 0:
			return Layout{}, errLayout(version, fmt.Errorf("%w: %d", ErrNegativeIndex, slot.Index))
		case slot.Role.Tag() == substate.TagUnknown:
			return Layout{}, errLayout(version, fmt.Errorf("%w: index %d", ErrUnknownRole, slot.Index))
		case slot.Token < FirstToken || slot.Token > SecondToken:
			return Layout{}, errLayout(version, fmt.Errorf("%w: %d", ErrTokenOutOfRange, slot.Token))
		}

		if _, ok := seen[slot.Index]; ok {
			return Layout{}, errLayout(version, fmt.Errorf("%w: %d", ErrDuplicateIndex, slot.Index))
		}

		seen[slot.Index] = struct{}{}

		if filled[slot.Token] == nil {
			filled[slot.Token] = make(map[Role]int)
		}

		filled[slot.Token][slot.Role]++
	}

	for tok, roles := range filled {
		if roles[RoleResource] != 1 || roles[RoleComponent] != 1 {
			return Layout{}, errLayout(version, fmt.Errorf("%w: token %d", ErrIncompleteToken, tok))
		}
	}

	ordered := slices.Clone(slots)
	slices.SortFunc(ordered, func(a, b Slot) int {
		return a.Index - b.Index
	})

	return Layout{version: version, slots: ordered}, nil
}

// MustLayout is like NewLayout but panics on an invalid layout.
func MustLayout(version string, slots ...Slot) Layout {
	layout, err := NewLayout(version, slots...)
	if err != nil {
		panic(err)
	}

	return layout
}

// Version returns the layout version.
func (l Layout) Version() string {
	return l.version
}

// Slots returns a copy of the slots ordered by index.
func (l Layout) Slots() []Slot {
	return slices.Clone(l.slots)
}

// MinLen returns the minimal length of a change list the layout fits.
func (l Layout) MinLen() int {
	if len(l.slots) == 0 {
		return 0
	}

	return l.slots[len(l.slots)-1].Index + 1
}

// IsZero reports whether the layout was not built by NewLayout.
func (l Layout) IsZero() bool {
	return l.version == ""
}

type slotFile struct {
	Index int    `yaml:"index"`
	Tag   string `yaml:"tag"`
	Token int    `yaml:"token"`
}

type layoutFile struct {
	Version string     `yaml:"version"`
	Slots   []slotFile `yaml:"slots"`
}

// LoadLayout parses and validates a YAML layout:
//
//	version: mint-pair/v1
//	slots:
//	  - {index: 2, tag: Resource, token: 0}
//	  - {index: 4, tag: Component, token: 0}
func LoadLayout(data []byte) (Layout, error) {
	file, err := marshaller.NewTypedYamlMarshaller[layoutFile]().Unmarshal(data)
	if err != nil {
		return Layout{}, errLayout("", err)
	}

	slots := make([]Slot, 0, len(file.Slots))
	for _, s := range file.Slots {
		role, err := ParseRole(s.Tag)
		if err != nil {
			return Layout{}, errLayout(file.Version, err)
		}

		slots = append(slots, Slot{Index: s.Index, Role: role, Token: s.Token})
	}

	return NewLayout(file.Version, slots...)
}

// Marshal returns the YAML form accepted by LoadLayout.
func (l Layout) Marshal() ([]byte, error) {
	file := layoutFile{Version: l.version, Slots: make([]slotFile, 0, len(l.slots))}
	for _, s := range l.slots {
		file.Slots = append(file.Slots, slotFile{Index: s.Index, Tag: s.Role.String(), Token: s.Token})
	}

	data, err := marshaller.NewTypedYamlMarshaller[layoutFile]().Marshal(file)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal layout %q: %w", l.version, err)
	}

	return data, nil
}
