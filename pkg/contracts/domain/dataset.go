package domain

import "github.com/google/uuid"

// Summary is the dataset-level outcome of one parse invocation.
type Summary struct {
	// RowsRead is the number of data rows encountered (header excluded).
	RowsRead int `json:"rows_read"`
	// RowsRejected is the number of rows excluded for structural errors.
	RowsRejected int `json:"rows_rejected"`
	// Nodes is the number of records in the dataset.
	Nodes int `json:"nodes"`
	// Warnings is the total number of warnings recorded.
	Warnings int `json:"warnings"`
}

// Dataset is the long-lived artifact of one parse: the ordered node records
// plus every warning accumulated along the way. It is immutable once
// constructed; export, reporting and dashboard collaborators read it and
// must never re-parse raw cell text themselves.
type Dataset struct {
	// ParseID identifies the parse invocation for audit trails.
	ParseID uuid.UUID `json:"parse_id"`
	// Source labels the input (usually the file name).
	Source string `json:"source,omitempty"`

	Nodes    []Node        `json:"nodes"`
	Warnings []Warning     `json:"warnings,omitempty"`
	Rejected []RejectedRow `json:"rejected,omitempty"`
	Summary  Summary       `json:"summary"`
}

// TotalAvailable sums the present available-capacity values for a category
// across all nodes. Unknown and not-applicable values contribute nothing.
func (d *Dataset) TotalAvailable(c Category) int64 {
	var total int64
	for i := range d.Nodes {
		if v, ok := d.Nodes[i].Available.Of(c).Value(); ok {
			total += v
		}
	}
	return total
}

// FindNode returns the node with the given substation code and voltage, or
// nil. The pair is the only dataset-unique identity.
func (d *Dataset) FindNode(substationCode string, voltageKV int) *Node {
	for i := range d.Nodes {
		n := &d.Nodes[i]
		if n.SubstationCode == substationCode && n.VoltageKV == voltageKV {
			return n
		}
	}
	return nil
}

// FindByName returns the first node whose name equals the given name
// (case-sensitive), or nil.
func (d *Dataset) FindByName(name string) *Node {
	for i := range d.Nodes {
		if d.Nodes[i].Name == name {
			return &d.Nodes[i]
		}
	}
	return nil
}

// CountByRegion counts nodes per autonomous community.
func (d *Dataset) CountByRegion() map[string]int {
	counts := make(map[string]int)
	for i := range d.Nodes {
		counts[d.Nodes[i].Region]++
	}
	return counts
}
