package parse

import (
	"fmt"
	"strings"

	"capacidad/internal/schema"
	"capacidad/pkg/contracts/domain"
)

// headerInfo is the result of resolving the 4-row hierarchical header. The
// full labels exist for diagnostics and drift detection only; field
// identity always comes from the ColumnSpec table indexed by position.
type headerInfo struct {
	// fullLabels joins the four per-row labels of each column.
	fullLabels []string
}

// resolveHeader reconciles the 4 header rows against the column table. The
// source encodes label spans by adjacency: an upper-row label is written
// once in the first column of its group and left empty in the rest, with no
// structural merge marker. Each row is therefore forward-filled
// independently before the group-start labels are checked.
func resolveHeader(rows [][]string, cols []schema.ColumnSpec) (*headerInfo, error) {
	if len(rows) < schema.HeaderRows {
		return nil, &domain.StructuralMismatchError{
			Detail: fmt.Sprintf("source has %d header rows, need %d", len(rows), schema.HeaderRows),
		}
	}

	width := 0
	trimmed := make([][]string, schema.HeaderRows)
	for i := 0; i < schema.HeaderRows; i++ {
		trimmed[i] = trimTrailingEmpty(rows[i], len(cols))
		if len(trimmed[i]) > width {
			width = len(trimmed[i])
		}
	}
	if width != len(cols) {
		return nil, &domain.StructuralMismatchError{
			Detail:          "header column count",
			ExpectedColumns: len(cols),
			ActualColumns:   width,
		}
	}

	filled := make([][]string, schema.HeaderRows)
	for i, row := range trimmed {
		filled[i] = forwardFill(row, width)
	}

	// The first header row carries the group labels; a materially different
	// label at a recorded group start means the schema drifted.
	for _, spec := range cols {
		if spec.Group == "" {
			continue
		}
		got := filled[0][spec.Position-1]
		if !labelsMatch(got, spec.Group) {
			return nil, &domain.StructuralMismatchError{
				Detail: fmt.Sprintf("group label at column %d: got %q, want %q",
					spec.Position, got, spec.Group),
			}
		}
	}

	labels := make([]string, width)
	for c := 0; c < width; c++ {
		var parts []string
		for r := 0; r < schema.HeaderRows; r++ {
			if l := filled[r][c]; l != "" {
				parts = append(parts, l)
			}
		}
		labels[c] = strings.Join(parts, " / ")
	}
	return &headerInfo{fullLabels: labels}, nil
}

// forwardFill carries the last non-empty label left-to-right and pads the
// row to width.
func forwardFill(row []string, width int) []string {
	out := make([]string, width)
	last := ""
	for i := 0; i < width; i++ {
		cell := ""
		if i < len(row) {
			cell = normalizeText(row[i])
		}
		if cell != "" {
			last = cell
		}
		out[i] = last
	}
	return out
}

func labelsMatch(a, b string) bool {
	return strings.EqualFold(normalizeText(a), normalizeText(b))
}
