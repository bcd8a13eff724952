package domain

import "strings"

// CriterionCode identifies one of the eight technical criteria the
// regulator evaluates at each node.
type CriterionCode string

const (
	CritWSCRNudo   CriterionCode = "WSCR_Nudo"
	CritWSCRZona   CriterionCode = "WSCR_Zona"
	CritEstDemNudo CriterionCode = "Est_Dem_Nudo"
	CritEstDemZona CriterionCode = "Est_Dem_Zona"
	CritEstAlmNudo CriterionCode = "Est_Alm_Nudo"
	CritEstAlmZona CriterionCode = "Est_Alm_Zona"
	CritDin1Zona   CriterionCode = "Din1_Zona"
	CritDin2Zona   CriterionCode = "Din2_Zona"
)

// KnownCriteria returns the closed set of criterion codes.
func KnownCriteria() []CriterionCode {
	return []CriterionCode{
		CritWSCRNudo, CritWSCRZona,
		CritEstDemNudo, CritEstDemZona,
		CritEstAlmNudo, CritEstAlmZona,
		CritDin1Zona, CritDin2Zona,
	}
}

// Known reports whether the code belongs to the closed set.
func (c CriterionCode) Known() bool {
	switch c {
	case CritWSCRNudo, CritWSCRZona,
		CritEstDemNudo, CritEstDemZona,
		CritEstAlmNudo, CritEstAlmZona,
		CritDin1Zona, CritDin2Zona:
		return true
	}
	return false
}

// Criterion is one entry of a binding-criterion code list. Unmatched parts
// of the source list are retained with Recognized false and the raw text,
// never dropped.
type Criterion struct {
	Code       CriterionCode `json:"code,omitempty"`
	Raw        string        `json:"raw,omitempty"`
	Recognized bool          `json:"recognized"`
}

// Label returns the criterion code, or the raw source text when the entry
// was not recognized.
func (c Criterion) Label() string {
	if c.Recognized {
		return string(c.Code)
	}
	return c.Raw
}

// CriterionList is a reported binding-criterion code list, order preserved.
// A nil list means the cell was empty (criterion not reported).
type CriterionList []Criterion

// Contains reports whether a recognized entry carries the given code.
func (l CriterionList) Contains(code CriterionCode) bool {
	for _, c := range l {
		if c.Recognized && c.Code == code {
			return true
		}
	}
	return false
}

// ContainsAny reports whether any of the given codes appears in the list.
func (l CriterionList) ContainsAny(codes ...CriterionCode) bool {
	for _, code := range codes {
		if l.Contains(code) {
			return true
		}
	}
	return false
}

// String joins the entries with the source's separator.
func (l CriterionList) String() string {
	if len(l) == 0 {
		return ""
	}
	parts := make([]string, 0, len(l))
	for _, c := range l {
		parts = append(parts, c.Label())
	}
	return strings.Join(parts, "/")
}
