package domain

// Category is one of the five demand/storage connection categories the
// publication evaluates independently at every node.
type Category int

const (
	// DemandCEPCH is power-electronics demand compliant with the CH
	// (continuity-of-supply hardware) requirement.
	DemandCEPCH Category = iota
	// DemandCEPSH is power-electronics demand without CH compliance.
	DemandCEPSH
	// DemandNoCEP is conventional demand.
	DemandNoCEP
	// StorageCEP is power-electronics storage.
	StorageCEP
	// StorageNoCEP is conventional storage.
	StorageNoCEP

	// NumCategories is the number of categories.
	NumCategories
)

// Categories returns all five categories in publication order.
func Categories() []Category {
	return []Category{DemandCEPCH, DemandCEPSH, DemandNoCEP, StorageCEP, StorageNoCEP}
}

// String returns the string representation of the category
func (c Category) String() string {
	switch c {
	case DemandCEPCH:
		return "CEP CH Demand"
	case DemandCEPSH:
		return "CEP SH Demand"
	case DemandNoCEP:
		return "NO CEP Demand"
	case StorageCEP:
		return "CEP Storage"
	case StorageNoCEP:
		return "NO CEP Storage"
	default:
		return "unknown"
	}
}

// IsCEP reports whether the category concerns power-electronics connections,
// which are the only ones constrained by the short-circuit (WSCR) criterion.
func (c Category) IsCEP() bool {
	return c == DemandCEPCH || c == DemandCEPSH || c == StorageCEP
}

// IsStorage reports whether the category concerns storage connections.
func (c Category) IsStorage() bool {
	return c == StorageCEP || c == StorageNoCEP
}

// CategoryQuantities holds one quantity per category.
type CategoryQuantities [NumCategories]Quantity

// Of returns the quantity for the category.
func (q CategoryQuantities) Of(c Category) Quantity {
	return q[c]
}

// Set assigns the quantity for the category.
func (q *CategoryQuantities) Set(c Category, v Quantity) {
	q[c] = v
}

// CategoryCriteria holds one binding-criterion list per category.
type CategoryCriteria [NumCategories]CriterionList

// Of returns the criterion list for the category.
func (b CategoryCriteria) Of(c Category) CriterionList {
	return b[c]
}

// Set assigns the criterion list for the category.
func (b *CategoryCriteria) Set(c Category, l CriterionList) {
	b[c] = l
}
