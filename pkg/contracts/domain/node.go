package domain

import "fmt"

// AgreementState is the reference-value agreement status of a node.
type AgreementState int

const (
	AgreementUnknown AgreementState = iota
	AgreementResolved
	AgreementUnresolved
	AgreementNotApplicable
	AgreementUnrecognized
)

// String returns the string representation of the state
func (s AgreementState) String() string {
	switch s {
	case AgreementResolved:
		return "SI"
	case AgreementUnresolved:
		return "NO"
	case AgreementNotApplicable:
		return "N/A"
	case AgreementUnrecognized:
		return "unrecognized"
	default:
		return "unknown"
	}
}

// Agreement is the reference-value agreement status. Raw carries the source
// text when the value did not match the closed set.
type Agreement struct {
	State AgreementState `json:"state"`
	Raw   string         `json:"raw,omitempty"`
}

// TenderState is the competitive-tender flag of a node.
type TenderState int

const (
	TenderUnknown TenderState = iota
	TenderYes
	TenderNo
	TenderUnrecognized
)

// String returns the string representation of the state
func (s TenderState) String() string {
	switch s {
	case TenderYes:
		return "SI"
	case TenderNo:
		return "NO"
	case TenderUnrecognized:
		return "unrecognized"
	default:
		return "unknown"
	}
}

// Tender is the competitive-tender status of a node.
type Tender struct {
	State TenderState `json:"state"`
	Raw   string      `json:"raw,omitempty"`
}

// ReasonClass classifies a non-grantable reason against the known
// regulatory templates.
type ReasonClass int

const (
	// ReasonNone means no reason was reported.
	ReasonNone ReasonClass = iota
	// ReasonAgreementPending means the reference-value agreement with the
	// distribution operator is unresolved.
	ReasonAgreementPending
	// ReasonTenderReserved means the capacity is reserved for a
	// competitive tender.
	ReasonTenderReserved
	// ReasonUnclassified means text was reported but matched no known
	// template. New phrasing in future publications must not break parsing.
	ReasonUnclassified
)

// String returns the string representation of the class
func (c ReasonClass) String() string {
	switch c {
	case ReasonAgreementPending:
		return "agreement-pending"
	case ReasonTenderReserved:
		return "tender-reserved"
	case ReasonUnclassified:
		return "unclassified"
	default:
		return "none"
	}
}

// NonGrantableReason is the free-text reason a node's capacity is not
// grantable, kept verbatim, with its template classification alongside.
type NonGrantableReason struct {
	Text  string      `json:"text,omitempty"`
	Class ReasonClass `json:"class"`
}

// Empty reports whether no reason was reported.
func (r NonGrantableReason) Empty() bool {
	return r.Text == ""
}

// Regulatory reports whether the reason matches a known regulatory template.
func (r NonGrantableReason) Regulatory() bool {
	return r.Class == ReasonAgreementPending || r.Class == ReasonTenderReserved
}

// BayFlags are the six physical bay/position presence flags of a node.
type BayFlags struct {
	GenerationExisting   bool `json:"generation_existing"`
	GenerationPlanned    bool `json:"generation_planned"`
	DemandExisting       bool `json:"demand_existing"`
	DemandPlanned        bool `json:"demand_planned"`
	DistributionExisting bool `json:"distribution_existing"`
	DistributionPlanned  bool `json:"distribution_planned"`
}

// WSCRBlock groups the short-circuit-ratio criterion fields.
type WSCRBlock struct {
	NodalCapacity Quantity `json:"nodal_capacity"`
	SharedNodes   string   `json:"shared_nodes,omitempty"`
	Alerts        string   `json:"alerts,omitempty"`
	Margin        Quantity `json:"margin"`
}

// StaticBlock groups a steady-state thermal criterion (demand or storage).
type StaticBlock struct {
	NodalCapacity Quantity `json:"nodal_capacity"`
	Zone          string   `json:"zone,omitempty"`
	Margin        Quantity `json:"margin"`
	// TopologyLimit is the substation-configuration limitation note; only
	// the demand block carries it in the publication.
	TopologyLimit string `json:"topology_limit,omitempty"`
}

// DynamicBlock groups the two dynamic-stability margins.
type DynamicBlock struct {
	Din1Margin Quantity `json:"din1_margin"`
	Din2Margin Quantity `json:"din2_margin"`
}

// GrantedAmounts are the already-granted capacity amounts of a node.
type GrantedAmounts struct {
	DemandBeyondReference    Quantity `json:"demand_beyond_reference"`
	DemandCEPWSCR            Quantity `json:"demand_cep_wscr"`
	DemandTotal              Quantity `json:"demand_total"`
	DemandDistribution       Quantity `json:"demand_distribution"`
	DemandDistributionNoRef  Quantity `json:"demand_distribution_no_ref"`
	StorageBeyondReference   Quantity `json:"storage_beyond_reference"`
	StorageTotal             Quantity `json:"storage_total"`
	StorageDistribution      Quantity `json:"storage_distribution"`
	StorageDistributionNoRef Quantity `json:"storage_distribution_no_ref"`
	DemandCHTotal            Quantity `json:"demand_ch_total"`
	DemandSHTotal            Quantity `json:"demand_sh_total"`
	CHDistribution           Quantity `json:"ch_distribution"`
	SHDistribution           Quantity `json:"sh_distribution"`
}

// PendingAmounts are the pending connection applications of a node.
type PendingAmounts struct {
	Demand  Quantity `json:"demand"`
	Storage Quantity `json:"storage"`
}

// Node is one substation-voltage record of the publication. Reported
// values are authoritative; everything the engine recomputes lives in
// Derived and is joined to the reported values only through warnings.
type Node struct {
	// Row is the 1-based row of the source file, kept for audit.
	Row int `json:"row"`

	Name           string `json:"name"`
	SubstationCode string `json:"substation_code"`
	Region         string `json:"region"`
	// VoltageKV is extracted from the trailing digits of Name; 0 when the
	// name carries no voltage (flagged as a coercion warning).
	VoltageKV int `json:"voltage_kv"`

	Bays          BayFlags     `json:"bays"`
	WSCR          WSCRBlock    `json:"wscr"`
	StaticDemand  StaticBlock  `json:"static_demand"`
	StaticStorage StaticBlock  `json:"static_storage"`
	Dynamic       DynamicBlock `json:"dynamic"`

	ReferenceValue Quantity  `json:"reference_value"`
	Agreement      Agreement `json:"agreement"`

	Granted GrantedAmounts `json:"granted"`
	Pending PendingAmounts `json:"pending"`

	GrossMargin  CategoryQuantities `json:"gross_margin"`
	Binding      CategoryCriteria   `json:"binding"`
	NonGrantable CategoryQuantities `json:"non_grantable"`
	Reason       NonGrantableReason `json:"reason"`
	Available    CategoryQuantities `json:"available"`

	Tender Tender `json:"tender"`

	// Derived holds the engine's recomputed diagnostics; it never
	// overrides the reported fields above.
	Derived Derivation `json:"derived"`

	// Warnings are the field- and record-scoped anomalies attached while
	// assembling and deriving this node.
	Warnings []Warning `json:"warnings,omitempty"`
}

// Identity returns the dataset-unique key of the node. The substation code
// alone is not unique: multi-voltage substations repeat it.
func (n *Node) Identity() string {
	return fmt.Sprintf("%s@%d", n.SubstationCode, n.VoltageKV)
}

// HasDemandBay reports whether the node has an existing or planned demand bay.
func (n *Node) HasDemandBay() bool {
	return n.Bays.DemandExisting || n.Bays.DemandPlanned
}

// HasWSCRAlert reports whether a WSCR security alert is reported.
func (n *Node) HasWSCRAlert() bool {
	return n.WSCR.Alerts != ""
}

// IsTender reports whether the node is subject to competitive tender.
func (n *Node) IsTender() bool {
	return n.Tender.State == TenderYes
}

// AgreementResolved reports whether the reference-value agreement is in place.
func (n *Node) AgreementResolved() bool {
	return n.Agreement.State == AgreementResolved
}
