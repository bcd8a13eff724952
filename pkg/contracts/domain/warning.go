package domain

// WarningKind categorizes warnings by the stage that produced them.
type WarningKind string

const (
	// WarnFieldCoercion: a cell did not cleanly satisfy its value kind's
	// rule; the field was set to unknown and the row continued.
	WarnFieldCoercion WarningKind = "field_coercion"
	// WarnDerivation: a recomputed cross-column relationship disagrees
	// with the reported value. Informational; reported values stand.
	WarnDerivation WarningKind = "derivation"
	// WarnDataset: a dataset-level expectation (row count, identity
	// uniqueness) did not hold.
	WarnDataset WarningKind = "dataset"
)

// Warning is a non-fatal issue recorded during parsing or derivation,
// surfaced to callers for audit and never thrown away.
type Warning struct {
	// Row is the 1-based source row; 0 for dataset-level warnings.
	Row int `json:"row"`
	// Field is the affected column, when one applies.
	Field   FieldID     `json:"field,omitempty"`
	Kind    WarningKind `json:"kind"`
	Message string      `json:"message"`
}

// RejectedRow records a data row excluded from the dataset because its
// structure did not match the expected schema.
type RejectedRow struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}
