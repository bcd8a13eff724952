package domain

import (
	"errors"
	"fmt"
)

// StructuralMismatchError is fatal to a parse as a whole: the header shape
// or column count disagrees with the expected schema beyond tolerance. No
// partial dataset is returned alongside it.
type StructuralMismatchError struct {
	Detail          string
	ExpectedColumns int
	ActualColumns   int
}

// Error implements the error interface
func (e *StructuralMismatchError) Error() string {
	if e.ExpectedColumns != 0 || e.ActualColumns != 0 {
		return fmt.Sprintf("structural mismatch: %s (expected %d columns, got %d)",
			e.Detail, e.ExpectedColumns, e.ActualColumns)
	}
	return fmt.Sprintf("structural mismatch: %s", e.Detail)
}

// IsStructuralMismatch reports whether err is a StructuralMismatchError.
func IsStructuralMismatch(err error) bool {
	var sm *StructuralMismatchError
	return errors.As(err, &sm)
}
