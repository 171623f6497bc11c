// Package substate provides the substate records a transaction reports.
// A transaction result lists created and updated substates as an ordered,
// append-only sequence of changes; the order is defined by the ledger.
package substate

import "fmt"

// ID identifies a substate on the ledger.
type ID struct {
	// Tag is the kind of the substate.
	Tag Tag
	// Address is the opaque ledger address, e.g. "resource_09b3...".
	Address string
}

// Component returns the id of a component substate.
func Component(address string) ID {
	return ID{Tag: TagComponent, Address: address}
}

// Resource returns the id of a resource substate.
func Resource(address string) ID {
	return ID{Tag: TagResource, Address: address}
}

func (id ID) String() string {
	return fmt.Sprintf("%s(%s)", id.Tag, id.Address)
}

// Change is a single entry of a transaction's substate change list.
type Change struct {
	ID ID
	// Version is the substate version after the transaction.
	Version uint32
}

// NewChange returns a change of the given substate at version 0.
func NewChange(id ID) Change {
	return Change{ID: id, Version: 0}
}

// Tag returns the tag of the changed substate.
func (c Change) Tag() Tag {
	return c.ID.Tag
}

// Address returns the address of the changed substate.
func (c Change) Address() string {
	return c.ID.Address
}
