// Package derive recomputes the cross-column relationships of an assembled
// node and compares them against the source-reported values. The source's
// own calculation engine is not disclosed, so every check here is a
// best-effort reconstruction: disagreement is recorded as a warning and the
// reported values always stand.
package derive

import (
	"fmt"

	"capacidad/pkg/contracts/domain"
)

// Engine runs the consistency checks and block classification over an
// already-assembled node. It is pure computation with no shared state, so
// one Engine can serve any number of rows concurrently.
type Engine struct {
	// ToleranceMW is the absolute tolerance of every numeric comparison.
	ToleranceMW int64
}

// New returns an engine with the given comparison tolerance.
func New(toleranceMW int64) Engine {
	return Engine{ToleranceMW: toleranceMW}
}

// marginTerm is one technical-criterion margin applicable to a category,
// with the codes that criterion may appear under in a binding list.
type marginTerm struct {
	name  string
	codes []domain.CriterionCode
	value domain.Quantity
}

// applicableMargins returns the criterion margins constraining a category:
// the short-circuit (WSCR) margin for CEP categories only, the thermal
// demand or storage margin as applicable, and both dynamic margins always.
func applicableMargins(n *domain.Node, cat domain.Category) []marginTerm {
	var terms []marginTerm
	if cat.IsCEP() {
		terms = append(terms, marginTerm{
			name:  "WSCR",
			codes: []domain.CriterionCode{domain.CritWSCRNudo, domain.CritWSCRZona},
			value: n.WSCR.Margin,
		})
	}
	if cat.IsStorage() {
		terms = append(terms, marginTerm{
			name:  "static storage",
			codes: []domain.CriterionCode{domain.CritEstAlmNudo, domain.CritEstAlmZona},
			value: n.StaticStorage.Margin,
		})
	} else {
		terms = append(terms, marginTerm{
			name:  "static demand",
			codes: []domain.CriterionCode{domain.CritEstDemNudo, domain.CritEstDemZona},
			value: n.StaticDemand.Margin,
		})
	}
	terms = append(terms,
		marginTerm{name: "Din1", codes: []domain.CriterionCode{domain.CritDin1Zona}, value: n.Dynamic.Din1Margin},
		marginTerm{name: "Din2", codes: []domain.CriterionCode{domain.CritDin2Zona}, value: n.Dynamic.Din2Margin},
	)
	return terms
}

func grantedPending(n *domain.Node, cat domain.Category) (domain.Quantity, domain.Quantity) {
	if cat.IsStorage() {
		return n.Granted.StorageTotal, n.Pending.Storage
	}
	return n.Granted.DemandTotal, n.Pending.Demand
}

// Derive fills n.Derived and returns the inconsistency warnings. It never
// mutates the reported fields of the node.
func (e Engine) Derive(n *domain.Node) []domain.Warning {
	var warnings []domain.Warning
	warn := func(field domain.FieldID, format string, args ...any) {
		warnings = append(warnings, domain.Warning{
			Row:     n.Row,
			Field:   field,
			Kind:    domain.WarnDerivation,
			Message: fmt.Sprintf(format, args...),
		})
	}

	for _, cat := range domain.Categories() {
		terms := applicableMargins(n, cat)

		// Recomputed gross margin: min of the applicable margins minus
		// granted and pending amounts, when every input is present.
		if computed, ok := recomputeGross(n, cat, terms); ok {
			n.Derived.GrossMargin.Set(cat, computed)
			if reported, has := n.GrossMargin.Of(cat).Value(); has {
				if c, _ := computed.Value(); absDiff(c, reported) > e.ToleranceMW {
					warn(marginField(cat), "%s: recomputed gross margin %d MW, reported %d MW", cat, c, reported)
				}
			}
		} else {
			n.Derived.GrossMargin.Set(cat, domain.Unknown())
		}

		// Recomputed available: reported gross margin minus reported
		// non-grantable amount.
		margin, hasMargin := n.GrossMargin.Of(cat).Value()
		nonGrant, hasNonGrant := n.NonGrantable.Of(cat).Value()
		if hasMargin && hasNonGrant {
			computed := margin - nonGrant
			n.Derived.Available.Set(cat, domain.MW(computed))
			if avail, has := n.Available.Of(cat).Value(); has && absDiff(computed, avail) > e.ToleranceMW {
				warn(availableField(cat), "%s: gross margin %d MW minus non-grantable %d MW is %d MW, reported available %d MW",
					cat, margin, nonGrant, computed, avail)
			}
		} else {
			n.Derived.Available.Set(cat, domain.Unknown())
		}

		// Data quality: available capacity can never exceed gross margin.
		if avail, has := n.Available.Of(cat).Value(); has && hasMargin && avail > margin+e.ToleranceMW {
			warn(availableField(cat), "%s: available %d MW exceeds gross margin %d MW", cat, avail, margin)
		}

		e.checkBinding(n, cat, terms, warn)
		n.Derived.Block[cat] = classify(n, cat)
	}

	// CEP SH availability is expected to be zero or unknown everywhere.
	if v, ok := n.Available.Of(domain.DemandCEPSH).Value(); ok && v != 0 {
		warn(availableField(domain.DemandCEPSH), "CEP SH available capacity is %d MW, expected zero", v)
	}

	return warnings
}

func recomputeGross(n *domain.Node, cat domain.Category, terms []marginTerm) (domain.Quantity, bool) {
	min := int64(0)
	first := true
	for _, t := range terms {
		v, ok := t.value.Value()
		if !ok {
			return domain.Quantity{}, false
		}
		if first || v < min {
			min = v
			first = false
		}
	}
	granted, pending := grantedPending(n, cat)
	g, ok := granted.Value()
	if !ok {
		return domain.Quantity{}, false
	}
	p, ok := pending.Value()
	if !ok {
		return domain.Quantity{}, false
	}
	return domain.MW(min - g - p), true
}

// checkBinding verifies that a criterion attaining the minimum applicable
// margin appears in the reported binding list. The reported list is never
// rewritten; absence is only ever a warning.
func (e Engine) checkBinding(n *domain.Node, cat domain.Category, terms []marginTerm, warn func(domain.FieldID, string, ...any)) {
	reported := n.Binding.Of(cat)
	if len(reported) == 0 {
		return
	}

	min := int64(0)
	found := false
	for _, t := range terms {
		if v, ok := t.value.Value(); ok && (!found || v < min) {
			min = v
			found = true
		}
	}
	if !found {
		return
	}

	var minimal []marginTerm
	for _, t := range terms {
		if v, ok := t.value.Value(); ok && v-min <= e.ToleranceMW {
			minimal = append(minimal, t)
		}
	}
	for _, t := range minimal {
		if reported.ContainsAny(t.codes...) {
			return
		}
	}
	names := make([]string, 0, len(minimal))
	for _, t := range minimal {
		names = append(names, t.name)
	}
	warn(bindingField(cat), "%s: minimum margin criterion %v not among reported binding criteria %q",
		cat, names, reported.String())
}

// classify applies the three-way block classification. The regulatory
// check wins regardless of the available value; the technical check needs
// no visible capacity, a reported binding criterion and no reason text.
func classify(n *domain.Node, cat domain.Category) domain.BlockClass {
	if n.Reason.Regulatory() {
		return domain.BlockRegulatory
	}
	if n.Available.Of(cat).ZeroOrUnknown() && len(n.Binding.Of(cat)) > 0 && n.Reason.Empty() {
		return domain.BlockTechnical
	}
	return domain.BlockIndeterminate
}

func absDiff(a, b int64) int64 {
	if a > b {
		return a - b
	}
	return b - a
}

func marginField(cat domain.Category) domain.FieldID {
	switch cat {
	case domain.DemandCEPCH:
		return domain.FieldMarginDemCEPCH
	case domain.DemandCEPSH:
		return domain.FieldMarginDemCEPSH
	case domain.DemandNoCEP:
		return domain.FieldMarginDemNoCEP
	case domain.StorageCEP:
		return domain.FieldMarginStoCEP
	default:
		return domain.FieldMarginStoNoCEP
	}
}

func availableField(cat domain.Category) domain.FieldID {
	switch cat {
	case domain.DemandCEPCH:
		return domain.FieldAvailableDemCEPCH
	case domain.DemandCEPSH:
		return domain.FieldAvailableDemCEPSH
	case domain.DemandNoCEP:
		return domain.FieldAvailableDemNoCEP
	case domain.StorageCEP:
		return domain.FieldAvailableStoCEP
	default:
		return domain.FieldAvailableStoNoCEP
	}
}

func bindingField(cat domain.Category) domain.FieldID {
	switch cat {
	case domain.DemandCEPCH:
		return domain.FieldBindingDemCEPCH
	case domain.DemandCEPSH:
		return domain.FieldBindingDemCEPSH
	case domain.DemandNoCEP:
		return domain.FieldBindingDemNoCEP
	case domain.StorageCEP:
		return domain.FieldBindingStoCEP
	default:
		return domain.FieldBindingStoNoCEP
	}
}
