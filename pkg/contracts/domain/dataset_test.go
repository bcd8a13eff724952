package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDataset() *Dataset {
	aba := Node{Name: "ABANILLAS 400", SubstationCode: "ABAN4", VoltageKV: 400, Region: "Región de Murcia"}
	aba.Available.Set(DemandCEPCH, MW(753))

	esc := Node{Name: "ESCATRON 400", SubstationCode: "ESCA4", VoltageKV: 400, Region: "Aragón"}
	esc.Available.Set(DemandCEPCH, MW(0))

	esc2 := Node{Name: "ESCATRON 220", SubstationCode: "ESCA2", VoltageKV: 220, Region: "Aragón"}
	esc2.Available.Set(DemandCEPCH, Unknown())

	return &Dataset{Nodes: []Node{aba, esc, esc2}}
}

func TestDatasetTotalAvailable(t *testing.T) {
	ds := testDataset()
	// Present zeros count as zero; unknown contributes nothing.
	assert.Equal(t, int64(753), ds.TotalAvailable(DemandCEPCH))
	assert.Equal(t, int64(0), ds.TotalAvailable(StorageCEP))
}

func TestDatasetFindNode(t *testing.T) {
	ds := testDataset()

	n := ds.FindNode("ABAN4", 400)
	require.NotNil(t, n)
	assert.Equal(t, "ABANILLAS 400", n.Name)

	// The code alone is not an identity; the voltage must match too.
	assert.Nil(t, ds.FindNode("ABAN4", 220))
	assert.Nil(t, ds.FindNode("NOPE", 400))
}

func TestDatasetFindByName(t *testing.T) {
	ds := testDataset()
	require.NotNil(t, ds.FindByName("ESCATRON 220"))
	assert.Nil(t, ds.FindByName("escatron 220"))
}

func TestDatasetCountByRegion(t *testing.T) {
	counts := testDataset().CountByRegion()
	assert.Equal(t, map[string]int{"Aragón": 2, "Región de Murcia": 1}, counts)
}

func TestNodeIdentity(t *testing.T) {
	n := Node{SubstationCode: "ESCA4", VoltageKV: 400}
	assert.Equal(t, "ESCA4@400", n.Identity())
}

func TestCriterionList(t *testing.T) {
	list := CriterionList{
		{Code: CritEstDemNudo, Recognized: true},
		{Raw: "Nuevo_Criterio"},
		{Code: CritDin1Zona, Recognized: true},
	}

	assert.True(t, list.Contains(CritDin1Zona))
	assert.False(t, list.Contains(CritWSCRNudo))
	assert.True(t, list.ContainsAny(CritWSCRNudo, CritEstDemNudo))
	assert.Equal(t, "Est_Dem_Nudo/Nuevo_Criterio/Din1_Zona", list.String())

	var empty CriterionList
	assert.False(t, empty.Contains(CritDin1Zona))
	assert.Equal(t, "", empty.String())
}
