package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capacidad/pkg/contracts/domain"
)

func TestAssembleRow(t *testing.T) {
	table := schemaTable(t)
	node, err := assembleRow(5, abanillasCells(t), table)
	require.NoError(t, err)

	assert.Equal(t, 5, node.Row)
	assert.Equal(t, "ABANILLAS 400", node.Name)
	assert.Equal(t, "ABAN4", node.SubstationCode)
	assert.Equal(t, "Región de Murcia", node.Region)
	assert.Equal(t, 400, node.VoltageKV)
	assert.True(t, node.HasDemandBay())
	assert.False(t, node.Bays.GenerationExisting)

	assert.Equal(t, domain.MW(753), node.WSCR.NodalCapacity)
	assert.Equal(t, domain.MW(1310), node.StaticDemand.NodalCapacity)
	assert.Equal(t, domain.MW(847), node.Dynamic.Din1Margin)
	assert.Equal(t, domain.MW(0), node.Dynamic.Din2Margin)

	// Cells left empty must stay unknown, not become zero.
	assert.Equal(t, domain.Unknown(), node.ReferenceValue)
	assert.Equal(t, domain.Unknown(), node.StaticStorage.Margin)

	assert.Equal(t, domain.MW(753), node.Available.Of(domain.DemandCEPCH))
	assert.Equal(t, domain.MW(847), node.Available.Of(domain.DemandNoCEP))
	require.Len(t, node.Binding.Of(domain.DemandCEPCH), 1)
	assert.Equal(t, domain.CritWSCRNudo, node.Binding.Of(domain.DemandCEPCH)[0].Code)
	assert.Nil(t, node.Binding.Of(domain.StorageCEP))

	assert.Equal(t, domain.TenderNo, node.Tender.State)
	assert.True(t, node.Reason.Empty())
}

func TestAssembleRowFieldCountMismatch(t *testing.T) {
	table := schemaTable(t)

	_, err := assembleRow(5, []string{"ESCATRON 400", "ESCA4", "Aragón"}, table)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3 fields")

	// A non-empty overflow cell is a width mismatch, not tolerated.
	cells := append(abanillasCells(t), "extra")
	_, err = assembleRow(5, cells, table)
	require.Error(t, err)
}

func TestAssembleRowToleratesTrailingEmptyField(t *testing.T) {
	table := schemaTable(t)
	cells := append(abanillasCells(t), "")
	node, err := assembleRow(5, cells, table)
	require.NoError(t, err)
	assert.Equal(t, "ABANILLAS 400", node.Name)
}

func TestAssembleRowCoercionAnomaliesDegradeToWarnings(t *testing.T) {
	table := schemaTable(t)
	cells := dataCells(t, map[domain.FieldID]string{
		domain.FieldNodeName:          "MUDARRA 220",
		domain.FieldSubstationCode:    "MUD2",
		domain.FieldRegion:            "Castilla y León",
		domain.FieldWSCRMargin:        "sin dato",
		domain.FieldBayGenExisting:    "?",
		domain.FieldAvailableDemCEPCH: "120",
	})

	node, err := assembleRow(7, cells, table)
	require.NoError(t, err)

	// The dirty numeric cell coerces to unknown, never to zero.
	assert.Equal(t, domain.Unknown(), node.WSCR.Margin)
	assert.False(t, node.Bays.GenerationExisting)
	assert.Equal(t, domain.MW(120), node.Available.Of(domain.DemandCEPCH))

	fields := make([]domain.FieldID, 0, len(node.Warnings))
	for _, w := range node.Warnings {
		assert.Equal(t, domain.WarnFieldCoercion, w.Kind)
		assert.Equal(t, 7, w.Row)
		fields = append(fields, w.Field)
	}
	assert.Contains(t, fields, domain.FieldWSCRMargin)
	assert.Contains(t, fields, domain.FieldBayGenExisting)
}

func TestAssembleRowMissingVoltageWarns(t *testing.T) {
	table := schemaTable(t)
	cells := dataCells(t, map[domain.FieldID]string{
		domain.FieldNodeName:       "NUDO SIN TENSION",
		domain.FieldSubstationCode: "NST",
	})

	node, err := assembleRow(9, cells, table)
	require.NoError(t, err)
	assert.Equal(t, 0, node.VoltageKV)

	found := false
	for _, w := range node.Warnings {
		if w.Field == domain.FieldNodeName {
			found = true
		}
	}
	assert.True(t, found, "expected a warning about the missing voltage level")
}
