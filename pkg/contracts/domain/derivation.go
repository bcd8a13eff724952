package domain

// BlockClass is the derived three-way block classification of a category at
// a node.
type BlockClass int

const (
	// BlockIndeterminate covers everything the two specific classes do not,
	// including categories with capacity actually available.
	BlockIndeterminate BlockClass = iota
	// BlockTechnical means no capacity is visible, a binding criterion is
	// reported and no regulatory reason is given.
	BlockTechnical
	// BlockRegulatory means the non-grantable reason matches a known
	// regulatory template, regardless of the available value.
	BlockRegulatory
)

// String returns the string representation of the class
func (b BlockClass) String() string {
	switch b {
	case BlockTechnical:
		return "technically-blocked"
	case BlockRegulatory:
		return "regulatory-blocked"
	default:
		return "indeterminate"
	}
}

// Derivation holds the engine's recomputed cross-column diagnostics for a
// node. Recomputed quantities are Unknown whenever an input needed to
// compute them was not a present value.
type Derivation struct {
	// GrossMargin is min(applicable technical margins) minus granted and
	// pending amounts, per category.
	GrossMargin CategoryQuantities `json:"gross_margin"`
	// Available is reported gross margin minus reported non-grantable
	// amount, per category.
	Available CategoryQuantities `json:"available"`
	// Block is the three-way classification per category.
	Block [NumCategories]BlockClass `json:"block"`
}

// BlockOf returns the classification for the category.
func (d Derivation) BlockOf(c Category) BlockClass {
	return d.Block[c]
}
