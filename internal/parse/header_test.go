package parse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capacidad/internal/schema"
	"capacidad/pkg/contracts/domain"
)

func headerRowsFromLines(t *testing.T, lines []string) [][]string {
	t.Helper()
	rows := make([][]string, len(lines))
	for i, l := range lines {
		rows[i] = strings.Split(l, schema.Delimiter)
	}
	return rows
}

func TestResolveHeader(t *testing.T) {
	table := schemaTable(t)
	rows := headerRowsFromLines(t, headerLines(t))

	hdr, err := resolveHeader(rows, table)
	require.NoError(t, err)
	require.Len(t, hdr.fullLabels, schema.ExpectedColumns)

	// Forward fill carries the group label into continuation columns.
	assert.Equal(t, "Posiciones / Consumo E", hdr.fullLabels[5])
	assert.Equal(t, "Capacidad disponible / Demanda CEP CH", hdr.fullLabels[55])
}

func TestResolveHeaderColumnCountMismatch(t *testing.T) {
	table := schemaTable(t)
	rows := headerRowsFromLines(t, headerLines(t))
	for i := range rows {
		rows[i] = rows[i][:40]
	}

	_, err := resolveHeader(rows, table)
	require.Error(t, err)
	assert.True(t, domain.IsStructuralMismatch(err))

	var sm *domain.StructuralMismatchError
	require.ErrorAs(t, err, &sm)
	assert.Equal(t, schema.ExpectedColumns, sm.ExpectedColumns)
	assert.Equal(t, 40, sm.ActualColumns)
}

func TestResolveHeaderToleratesTrailingEmptyColumns(t *testing.T) {
	table := schemaTable(t)
	rows := headerRowsFromLines(t, headerLines(t))
	for i := range rows {
		// The extra empty field a terminating semicolon produces.
		rows[i] = append(rows[i], "")
	}

	_, err := resolveHeader(rows, table)
	assert.NoError(t, err)
}

func TestResolveHeaderGroupDrift(t *testing.T) {
	table := schemaTable(t)
	rows := headerRowsFromLines(t, headerLines(t))
	rows[0][9] = "Criterio renombrado"

	_, err := resolveHeader(rows, table)
	require.Error(t, err)
	assert.True(t, domain.IsStructuralMismatch(err))
	assert.Contains(t, err.Error(), "group label")
}

func TestResolveHeaderGroupLabelCaseInsensitive(t *testing.T) {
	table := schemaTable(t)
	rows := headerRowsFromLines(t, headerLines(t))
	rows[0][9] = "  criterio  wscr "

	_, err := resolveHeader(rows, table)
	assert.NoError(t, err)
}

func TestForwardFill(t *testing.T) {
	got := forwardFill([]string{"A", "", "B", ""}, 5)
	assert.Equal(t, []string{"A", "A", "B", "B", "B"}, got)

	got = forwardFill([]string{"", "X"}, 3)
	assert.Equal(t, []string{"", "X", "X"}, got)
}
