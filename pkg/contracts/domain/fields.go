package domain

// FieldID is the stable identifier of one of the 61 columns of the
// publication. Values follow the regulator's field naming so warnings can
// be cross-referenced against the published logic map.
type FieldID string

const (
	FieldNodeName       FieldID = "nudo"
	FieldSubstationCode FieldID = "cod_subestacion"
	FieldRegion         FieldID = "ccaa"

	FieldBayGenExisting  FieldID = "pos_gen_E"
	FieldBayGenPlanned   FieldID = "pos_gen_P"
	FieldBayDemExisting  FieldID = "pos_con_E"
	FieldBayDemPlanned   FieldID = "pos_con_P"
	FieldBayDistExisting FieldID = "pos_dist_E"
	FieldBayDistPlanned  FieldID = "pos_dist_P"

	FieldWSCRNodalCapacity FieldID = "wscr_cap_nodal"
	FieldWSCRSharedNodes   FieldID = "wscr_binudos"
	FieldWSCRAlerts        FieldID = "wscr_alertas"
	FieldWSCRMargin        FieldID = "wscr_margen"

	FieldStaticDemCapacity      FieldID = "est_dem_cap_nodal"
	FieldStaticDemZone          FieldID = "est_dem_zona"
	FieldStaticDemMargin        FieldID = "est_dem_margen"
	FieldStaticDemTopologyLimit FieldID = "est_dem_limit_temp"

	FieldStaticStoCapacity FieldID = "est_alm_cap_nodal"
	FieldStaticStoZone     FieldID = "est_alm_zona"
	FieldStaticStoMargin   FieldID = "est_alm_margen"

	FieldDin1Margin FieldID = "din1_margen"
	FieldDin2Margin FieldID = "din2_margen"

	FieldReferenceValue  FieldID = "valor_referencia"
	FieldAgreementStatus FieldID = "estado_acuerdo"

	FieldGrantedDemBeyondRef FieldID = "otorgada_dem_adicional"
	FieldGrantedDemCEPWSCR   FieldID = "otorgada_dem_cep_wscr"
	FieldGrantedDemTotal     FieldID = "otorgada_dem_rdt"
	FieldGrantedDemDist      FieldID = "otorgada_dem_rdd"
	FieldGrantedDemDistNoRef FieldID = "otorgada_dem_rdd_no_ref"
	FieldGrantedStoBeyondRef FieldID = "otorgada_alm_adicional"
	FieldGrantedStoTotal     FieldID = "otorgada_alm_rdt"
	FieldGrantedStoDist      FieldID = "otorgada_alm_rdd"
	FieldGrantedStoDistNoRef FieldID = "otorgada_alm_rdd_no_ref"
	FieldGrantedDemCHTotal   FieldID = "otorgada_dem_ch_rdt"
	FieldGrantedDemSHTotal   FieldID = "otorgada_dem_sh_rdt"
	FieldGrantedCHDist       FieldID = "otorgada_ch_rdd"
	FieldGrantedSHDist       FieldID = "otorgada_sh_rdd"

	FieldPendingDemand  FieldID = "pendiente_dem_rdt"
	FieldPendingStorage FieldID = "pendiente_alm_rdt"

	FieldMarginDemCEPCH FieldID = "margen_dem_cep_ch"
	FieldMarginDemCEPSH FieldID = "margen_dem_cep_sh"
	FieldMarginDemNoCEP FieldID = "margen_dem_no_cep"
	FieldMarginStoCEP   FieldID = "margen_alm_cep"
	FieldMarginStoNoCEP FieldID = "margen_alm_no_cep"

	FieldBindingDemCEPCH FieldID = "limitante_dem_cep_ch"
	FieldBindingDemCEPSH FieldID = "limitante_dem_cep_sh"
	FieldBindingDemNoCEP FieldID = "limitante_dem_no_cep"
	FieldBindingStoCEP   FieldID = "limitante_alm_cep"
	FieldBindingStoNoCEP FieldID = "limitante_alm_no_cep"

	FieldNonGrantDemCEPCH FieldID = "no_otorg_dem_cep_ch"
	FieldNonGrantDemCEPSH FieldID = "no_otorg_dem_cep_sh"
	FieldNonGrantDemNoCEP FieldID = "no_otorg_dem_no_cep"
	FieldNonGrantStoCEP   FieldID = "no_otorg_alm_cep"
	FieldNonGrantStoNoCEP FieldID = "no_otorg_alm_no_cep"

	FieldNonGrantReason FieldID = "motivo_no_otorgable"

	FieldAvailableDemCEPCH FieldID = "disp_dem_cep_ch"
	FieldAvailableDemCEPSH FieldID = "disp_dem_cep_sh"
	FieldAvailableDemNoCEP FieldID = "disp_dem_no_cep"
	FieldAvailableStoCEP   FieldID = "disp_alm_cep"
	FieldAvailableStoNoCEP FieldID = "disp_alm_no_cep"

	FieldTender FieldID = "concurso"
)
