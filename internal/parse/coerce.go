package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"capacidad/internal/schema"
	"capacidad/pkg/contracts/domain"
)

// Field coercion: one raw cell string in, one typed tri-state value out.
// All functions here are pure; recoverable anomalies come back as a warning
// message (empty when clean) instead of an error, so a dirty cell can never
// abort its row.

// coerceInteger handles the integer-with-thousands-dots kind. The source
// never uses a decimal point inside numeric fields, so every dot is a
// grouping separator.
func coerceInteger(raw string) (domain.Quantity, string) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return domain.Unknown(), ""
	}
	if strings.EqualFold(s, schema.NotApplicableToken) {
		return domain.NotApplicable(), ""
	}
	digits := strings.ReplaceAll(s, ".", "")
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || v < 0 {
		return domain.Unknown(), fmt.Sprintf("cannot parse %q as a non-negative integer", raw)
	}
	return domain.MW(v), ""
}

// coerceFlag handles the presence-flag kind: the mark glyph means true,
// empty means false, anything else is an anomaly coerced to false.
func coerceFlag(raw string) (bool, string) {
	s := strings.TrimSpace(raw)
	switch s {
	case "":
		return false, ""
	case schema.CheckMark:
		return true, ""
	default:
		return false, fmt.Sprintf("unexpected flag content %q", raw)
	}
}

// coerceAgreement matches the agreement status against its closed,
// case-insensitive value set. Unmatched text is retained, not discarded.
func coerceAgreement(raw string) domain.Agreement {
	s := strings.ToUpper(strings.TrimSpace(raw))
	switch s {
	case "":
		return domain.Agreement{State: domain.AgreementUnknown}
	case "SI":
		return domain.Agreement{State: domain.AgreementResolved}
	case "NO":
		return domain.Agreement{State: domain.AgreementUnresolved}
	case schema.NotApplicableToken:
		return domain.Agreement{State: domain.AgreementNotApplicable}
	default:
		return domain.Agreement{State: domain.AgreementUnrecognized, Raw: strings.TrimSpace(raw)}
	}
}

// coerceTender matches the competitive-tender flag against SI/NO.
func coerceTender(raw string) domain.Tender {
	s := strings.ToUpper(strings.TrimSpace(raw))
	switch s {
	case "":
		return domain.Tender{State: domain.TenderUnknown}
	case "SI":
		return domain.Tender{State: domain.TenderYes}
	case "NO":
		return domain.Tender{State: domain.TenderNo}
	default:
		return domain.Tender{State: domain.TenderUnrecognized, Raw: strings.TrimSpace(raw)}
	}
}

// coerceRegion keeps the region text verbatim and reports drift from the
// closed set of autonomous communities.
func coerceRegion(raw string) (string, string) {
	s := normalizeText(raw)
	if s == "" {
		return "", ""
	}
	for _, r := range schema.Regions() {
		if s == r {
			return s, ""
		}
	}
	return s, fmt.Sprintf("region %q not in the known set", s)
}

// coerceCriteria splits a binding-criterion code list on its separator.
// Unmatched parts are retained as unrecognized entries alongside recognized
// ones; a list may be a mix. An empty cell means the criterion was not
// reported.
func coerceCriteria(raw string) domain.CriterionList {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	var list domain.CriterionList
	for _, part := range strings.Split(s, schema.ListSeparator) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if code, ok := matchCriterion(part); ok {
			list = append(list, domain.Criterion{Code: code, Recognized: true})
		} else {
			list = append(list, domain.Criterion{Raw: part, Recognized: false})
		}
	}
	return list
}

func matchCriterion(s string) (domain.CriterionCode, bool) {
	for _, code := range domain.KnownCriteria() {
		if strings.EqualFold(s, string(code)) {
			return code, true
		}
	}
	return "", false
}

// classifyReason normalizes a non-grantable reason and classifies it
// against the known regulatory templates. Unmatched non-empty text is kept
// verbatim with an unclassified marker; the warning belongs to the caller.
func classifyReason(raw string) (domain.NonGrantableReason, string) {
	text := normalizeText(raw)
	if text == "" {
		return domain.NonGrantableReason{Class: domain.ReasonNone}, ""
	}
	lower := strings.ToLower(text)
	for _, tpl := range schema.ReasonTemplates() {
		for _, sub := range tpl.Substrings {
			if strings.Contains(lower, sub) {
				return domain.NonGrantableReason{Text: text, Class: tpl.Class}, ""
			}
		}
	}
	return domain.NonGrantableReason{Text: text, Class: domain.ReasonUnclassified},
		fmt.Sprintf("reason %q matches no known template", text)
}

// normalizeText trims and collapses internal whitespace runs to one space.
func normalizeText(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}

var voltageRe = regexp.MustCompile(`(\d+)\s*$`)

// extractVoltage pulls the voltage level (kV) from the trailing digits of a
// node name, e.g. "ABANILLAS 400" -> 400. Returns 0 when absent.
func extractVoltage(name string) int {
	m := voltageRe.FindStringSubmatch(strings.TrimSpace(name))
	if m == nil {
		return 0
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return v
}
