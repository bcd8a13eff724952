package parse

import (
	"fmt"
	"strings"

	"capacidad/internal/schema"
	"capacidad/pkg/contracts/domain"
)

// assembleRow turns one 61-cell data row into a Node using the column
// table. Coercion anomalies degrade to warnings attached to the node; only
// a cell-count mismatch fails the row.
func assembleRow(rowNum int, cells []string, cols []schema.ColumnSpec) (domain.Node, error) {
	cells = trimTrailingEmpty(cells, len(cols))
	if len(cells) != len(cols) {
		return domain.Node{}, fmt.Errorf("row has %d fields, want %d", len(cells), len(cols))
	}

	node := domain.Node{Row: rowNum}
	warn := func(field domain.FieldID, msg string) {
		if msg == "" {
			return
		}
		node.Warnings = append(node.Warnings, domain.Warning{
			Row:     rowNum,
			Field:   field,
			Kind:    domain.WarnFieldCoercion,
			Message: msg,
		})
	}

	for i, spec := range cols {
		raw := cells[i]
		switch spec.Kind {
		case schema.KindInteger:
			q, msg := coerceInteger(raw)
			warn(spec.Field, msg)
			assignQuantity(&node, spec.Field, q)
		case schema.KindFlag:
			v, msg := coerceFlag(raw)
			warn(spec.Field, msg)
			assignFlag(&node, spec.Field, v)
		case schema.KindCodeList:
			assignCriteria(&node, spec.Field, coerceCriteria(raw))
		case schema.KindEnum:
			switch spec.Set {
			case schema.SetAgreement:
				node.Agreement = coerceAgreement(raw)
			case schema.SetTender:
				node.Tender = coerceTender(raw)
			case schema.SetRegion:
				region, msg := coerceRegion(raw)
				warn(spec.Field, msg)
				node.Region = region
			}
		case schema.KindFreeText:
			if spec.Field == domain.FieldNonGrantReason {
				reason, msg := classifyReason(raw)
				warn(spec.Field, msg)
				node.Reason = reason
			} else {
				assignText(&node, spec.Field, normalizeText(raw))
			}
		case schema.KindRaw:
			// Raw-string kind: trim only, never classified or collapsed.
			assignText(&node, spec.Field, strings.TrimSpace(raw))
		}
	}

	node.VoltageKV = extractVoltage(node.Name)
	if node.VoltageKV == 0 {
		warn(domain.FieldNodeName, fmt.Sprintf("node name %q carries no voltage level", node.Name))
	}
	return node, nil
}

func assignQuantity(n *domain.Node, f domain.FieldID, q domain.Quantity) {
	switch f {
	case domain.FieldWSCRNodalCapacity:
		n.WSCR.NodalCapacity = q
	case domain.FieldWSCRMargin:
		n.WSCR.Margin = q
	case domain.FieldStaticDemCapacity:
		n.StaticDemand.NodalCapacity = q
	case domain.FieldStaticDemMargin:
		n.StaticDemand.Margin = q
	case domain.FieldStaticStoCapacity:
		n.StaticStorage.NodalCapacity = q
	case domain.FieldStaticStoMargin:
		n.StaticStorage.Margin = q
	case domain.FieldDin1Margin:
		n.Dynamic.Din1Margin = q
	case domain.FieldDin2Margin:
		n.Dynamic.Din2Margin = q
	case domain.FieldReferenceValue:
		n.ReferenceValue = q
	case domain.FieldGrantedDemBeyondRef:
		n.Granted.DemandBeyondReference = q
	case domain.FieldGrantedDemCEPWSCR:
		n.Granted.DemandCEPWSCR = q
	case domain.FieldGrantedDemTotal:
		n.Granted.DemandTotal = q
	case domain.FieldGrantedDemDist:
		n.Granted.DemandDistribution = q
	case domain.FieldGrantedDemDistNoRef:
		n.Granted.DemandDistributionNoRef = q
	case domain.FieldGrantedStoBeyondRef:
		n.Granted.StorageBeyondReference = q
	case domain.FieldGrantedStoTotal:
		n.Granted.StorageTotal = q
	case domain.FieldGrantedStoDist:
		n.Granted.StorageDistribution = q
	case domain.FieldGrantedStoDistNoRef:
		n.Granted.StorageDistributionNoRef = q
	case domain.FieldGrantedDemCHTotal:
		n.Granted.DemandCHTotal = q
	case domain.FieldGrantedDemSHTotal:
		n.Granted.DemandSHTotal = q
	case domain.FieldGrantedCHDist:
		n.Granted.CHDistribution = q
	case domain.FieldGrantedSHDist:
		n.Granted.SHDistribution = q
	case domain.FieldPendingDemand:
		n.Pending.Demand = q
	case domain.FieldPendingStorage:
		n.Pending.Storage = q
	case domain.FieldMarginDemCEPCH:
		n.GrossMargin.Set(domain.DemandCEPCH, q)
	case domain.FieldMarginDemCEPSH:
		n.GrossMargin.Set(domain.DemandCEPSH, q)
	case domain.FieldMarginDemNoCEP:
		n.GrossMargin.Set(domain.DemandNoCEP, q)
	case domain.FieldMarginStoCEP:
		n.GrossMargin.Set(domain.StorageCEP, q)
	case domain.FieldMarginStoNoCEP:
		n.GrossMargin.Set(domain.StorageNoCEP, q)
	case domain.FieldNonGrantDemCEPCH:
		n.NonGrantable.Set(domain.DemandCEPCH, q)
	case domain.FieldNonGrantDemCEPSH:
		n.NonGrantable.Set(domain.DemandCEPSH, q)
	case domain.FieldNonGrantDemNoCEP:
		n.NonGrantable.Set(domain.DemandNoCEP, q)
	case domain.FieldNonGrantStoCEP:
		n.NonGrantable.Set(domain.StorageCEP, q)
	case domain.FieldNonGrantStoNoCEP:
		n.NonGrantable.Set(domain.StorageNoCEP, q)
	case domain.FieldAvailableDemCEPCH:
		n.Available.Set(domain.DemandCEPCH, q)
	case domain.FieldAvailableDemCEPSH:
		n.Available.Set(domain.DemandCEPSH, q)
	case domain.FieldAvailableDemNoCEP:
		n.Available.Set(domain.DemandNoCEP, q)
	case domain.FieldAvailableStoCEP:
		n.Available.Set(domain.StorageCEP, q)
	case domain.FieldAvailableStoNoCEP:
		n.Available.Set(domain.StorageNoCEP, q)
	}
}

func assignFlag(n *domain.Node, f domain.FieldID, v bool) {
	switch f {
	case domain.FieldBayGenExisting:
		n.Bays.GenerationExisting = v
	case domain.FieldBayGenPlanned:
		n.Bays.GenerationPlanned = v
	case domain.FieldBayDemExisting:
		n.Bays.DemandExisting = v
	case domain.FieldBayDemPlanned:
		n.Bays.DemandPlanned = v
	case domain.FieldBayDistExisting:
		n.Bays.DistributionExisting = v
	case domain.FieldBayDistPlanned:
		n.Bays.DistributionPlanned = v
	}
}

func assignCriteria(n *domain.Node, f domain.FieldID, l domain.CriterionList) {
	switch f {
	case domain.FieldBindingDemCEPCH:
		n.Binding.Set(domain.DemandCEPCH, l)
	case domain.FieldBindingDemCEPSH:
		n.Binding.Set(domain.DemandCEPSH, l)
	case domain.FieldBindingDemNoCEP:
		n.Binding.Set(domain.DemandNoCEP, l)
	case domain.FieldBindingStoCEP:
		n.Binding.Set(domain.StorageCEP, l)
	case domain.FieldBindingStoNoCEP:
		n.Binding.Set(domain.StorageNoCEP, l)
	}
}

func assignText(n *domain.Node, f domain.FieldID, s string) {
	switch f {
	case domain.FieldNodeName:
		n.Name = s
	case domain.FieldSubstationCode:
		n.SubstationCode = s
	case domain.FieldWSCRSharedNodes:
		n.WSCR.SharedNodes = s
	case domain.FieldWSCRAlerts:
		n.WSCR.Alerts = s
	case domain.FieldStaticDemZone:
		n.StaticDemand.Zone = s
	case domain.FieldStaticDemTopologyLimit:
		n.StaticDemand.TopologyLimit = s
	case domain.FieldStaticStoZone:
		n.StaticStorage.Zone = s
	}
}
