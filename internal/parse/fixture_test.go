package parse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"capacidad/internal/schema"
	"capacidad/pkg/contracts/domain"
)

// Fixtures are built from the column table itself so a schema change keeps
// the tests honest: headers carry the group labels at group starts (merged
// cells appear as empties, exactly like the source) and the leaf labels on
// the fourth row.

func schemaTable(t *testing.T) []schema.ColumnSpec {
	t.Helper()
	table, err := schema.Table()
	require.NoError(t, err)
	return table
}

func headerLines(t *testing.T) []string {
	t.Helper()
	table := schemaTable(t)
	row1 := make([]string, len(table))
	leaf := make([]string, len(table))
	for i, spec := range table {
		row1[i] = spec.Group
		leaf[i] = spec.Label
	}
	empty := make([]string, len(table))
	return []string{
		strings.Join(row1, schema.Delimiter),
		strings.Join(empty, schema.Delimiter),
		strings.Join(empty, schema.Delimiter),
		strings.Join(leaf, schema.Delimiter),
	}
}

func dataCells(t *testing.T, overrides map[domain.FieldID]string) []string {
	t.Helper()
	table := schemaTable(t)
	cells := make([]string, len(table))
	for i, spec := range table {
		if v, ok := overrides[spec.Field]; ok {
			cells[i] = v
		}
	}
	return cells
}

func buildSource(t *testing.T, dataRows ...[]string) string {
	t.Helper()
	lines := headerLines(t)
	for _, cells := range dataRows {
		lines = append(lines, strings.Join(cells, schema.Delimiter))
	}
	return "\uFEFF" + strings.Join(lines, "\r\n") + "\r\n"
}

// escatronCells mirrors the documented ESCATRON 400 example: a node with an
// existing demand bay, zero margins on the binding criteria and no capacity
// available for CEP CH demand.
func escatronCells(t *testing.T) []string {
	return dataCells(t, map[domain.FieldID]string{
		domain.FieldNodeName:          "ESCATRON 400",
		domain.FieldSubstationCode:    "ESCA4",
		domain.FieldRegion:            "Aragón",
		domain.FieldBayDemExisting:    "✓",
		domain.FieldWSCRNodalCapacity: "402",
		domain.FieldWSCRMargin:        "402",
		domain.FieldStaticDemCapacity: "402",
		domain.FieldStaticDemMargin:   "0",
		domain.FieldDin1Margin:        "0",
		domain.FieldDin2Margin:        "0",
		domain.FieldGrantedDemTotal:   "0",
		domain.FieldPendingDemand:     "0",
		domain.FieldMarginDemCEPCH:    "0",
		domain.FieldBindingDemCEPCH:   "Est_Dem_Nudo/Din1_Zona",
		domain.FieldNonGrantDemCEPCH:  "0",
		domain.FieldAvailableDemCEPCH: "0",
		domain.FieldTender:            "NO",
	})
}

// abanillasCells mirrors the documented ABANILLAS 400 example: WSCR binds
// CEP demand at 753 MW while conventional demand reaches 847 MW.
func abanillasCells(t *testing.T) []string {
	return dataCells(t, map[domain.FieldID]string{
		domain.FieldNodeName:          "ABANILLAS 400",
		domain.FieldSubstationCode:    "ABAN4",
		domain.FieldRegion:            "Región de Murcia",
		domain.FieldBayDemExisting:    "✓",
		domain.FieldWSCRNodalCapacity: "753",
		domain.FieldWSCRMargin:        "753",
		domain.FieldStaticDemCapacity: "1.310",
		domain.FieldStaticDemMargin:   "1.310",
		domain.FieldDin1Margin:        "847",
		domain.FieldDin2Margin:        "0",
		domain.FieldGrantedDemTotal:   "0",
		domain.FieldPendingDemand:     "0",
		domain.FieldMarginDemCEPCH:    "753",
		domain.FieldMarginDemNoCEP:    "847",
		domain.FieldBindingDemCEPCH:   "WSCR_Nudo",
		domain.FieldBindingDemNoCEP:   "Din1_Zona",
		domain.FieldNonGrantDemCEPCH:  "0",
		domain.FieldNonGrantDemNoCEP:  "0",
		domain.FieldAvailableDemCEPCH: "753",
		domain.FieldAvailableDemNoCEP: "847",
		domain.FieldTender:            "NO",
	})
}
