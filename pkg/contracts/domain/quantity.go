package domain

import (
	"encoding/json"
	"fmt"
)

// QuantityState distinguishes the three states every numeric field of the
// source publication can be in. Collapsing NotApplicable or Unknown into
// zero is a correctness bug: downstream consumers count "blocked" and
// "evaluated-to-zero" nodes separately.
type QuantityState int

const (
	// QuantityUnknown means no value was reported, cause unspecified.
	QuantityUnknown QuantityState = iota
	// QuantityNotApplicable means the criterion or classification does not
	// apply to this node (the N/A sentinel in the source).
	QuantityNotApplicable
	// QuantityPresent means a number was reported, including a legitimate zero.
	QuantityPresent
)

// String returns the string representation of the state
func (s QuantityState) String() string {
	switch s {
	case QuantityPresent:
		return "present"
	case QuantityNotApplicable:
		return "n/a"
	default:
		return "unknown"
	}
}

// Quantity is a tri-state whole-MW amount. The zero value is Unknown.
type Quantity struct {
	State QuantityState `json:"state"`
	MW    int64         `json:"mw"`
}

// MW returns a present-value quantity.
func MW(v int64) Quantity {
	return Quantity{State: QuantityPresent, MW: v}
}

// NotApplicable returns a not-applicable quantity.
func NotApplicable() Quantity {
	return Quantity{State: QuantityNotApplicable}
}

// Unknown returns an unknown quantity.
func Unknown() Quantity {
	return Quantity{State: QuantityUnknown}
}

// IsPresent reports whether a number was reported for this quantity.
func (q Quantity) IsPresent() bool {
	return q.State == QuantityPresent
}

// Value returns the reported amount and whether one is present.
func (q Quantity) Value() (int64, bool) {
	return q.MW, q.State == QuantityPresent
}

// ZeroOrUnknown reports whether the quantity is a present zero or unknown.
// This is the "no capacity visible" condition used by block classification.
func (q Quantity) ZeroOrUnknown() bool {
	return q.State == QuantityUnknown || (q.State == QuantityPresent && q.MW == 0)
}

// String returns the string representation of the quantity
func (q Quantity) String() string {
	switch q.State {
	case QuantityPresent:
		return fmt.Sprintf("%d MW", q.MW)
	case QuantityNotApplicable:
		return "N/A"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes present values as numbers, not-applicable as "N/A"
// and unknown as null, so consumers never mistake a sentinel for a zero.
func (q Quantity) MarshalJSON() ([]byte, error) {
	switch q.State {
	case QuantityPresent:
		return json.Marshal(q.MW)
	case QuantityNotApplicable:
		return json.Marshal("N/A")
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*q = Unknown()
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		if text == "N/A" {
			*q = NotApplicable()
			return nil
		}
		return fmt.Errorf("quantity: unexpected string %q", text)
	}
	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("quantity: %w", err)
	}
	*q = MW(v)
	return nil
}
