package substate

// Tag represents the kind of a substate.
type Tag int

const (
	// TagNone marks an absent entry; it never appears in a ledger record.
	TagNone Tag = iota
	// TagComponent is an addressable stateful component.
	TagComponent
	// TagResource is a fungible or non-fungible resource type.
	TagResource
	// TagVault holds resources owned by a component.
	TagVault
	// TagNonFungible is a single non-fungible token.
	TagNonFungible
	// TagNonFungibleIndex indexes non-fungible tokens of a resource.
	TagNonFungibleIndex
	// TagUnclaimedConfidentialOutput is a burnt output awaiting a claim.
	TagUnclaimedConfidentialOutput
	// TagTransactionReceipt is the receipt of a finalized transaction.
	TagTransactionReceipt
	// TagFeeClaim is a validator fee claim.
	TagFeeClaim
	// TagTemplate is a published template.
	TagTemplate
	// TagUnknown is any tag this package does not recognize.
	TagUnknown
)

var tagNames = map[Tag]string{ //nolint:gochecknoglobals
	TagNone:                        "None",
	TagComponent:                   "Component",
	TagResource:                    "Resource",
	TagVault:                       "Vault",
	TagNonFungible:                 "NonFungible",
	TagNonFungibleIndex:            "NonFungibleIndex",
	TagUnclaimedConfidentialOutput: "UnclaimedConfidentialOutput",
	TagTransactionReceipt:          "TransactionReceipt",
	TagFeeClaim:                    "FeeClaim",
	TagTemplate:                    "Template",
}

func (t Tag) String() string {
	name, ok := tagNames[t]
	if !ok {
		return "Unknown"
	}

	return name
}

// ParseTag returns the tag with the given wire name, or TagUnknown.
func ParseTag(name string) Tag {
	for tag, tagName := range tagNames {
		if tag != TagNone && tagName == name {
			return tag
		}
	}

	return TagUnknown
}
