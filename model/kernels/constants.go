package kernels

import (
	"fmt"

	wastecarbonsim "github.com/loopvinyl/waste-carbon-simulator"
)

// Stoichiometric and process constants. All literature values: IPCC waste
// model defaults for the landfill pathway, Yang et al. (2017) for the
// composting pathways, Wang et al. (2017) and Feng et al. (2020) for the
// N₂O profiles and pre-disposal fluxes.
const (
	// MolarMassRatioCH4 converts carbon mass to methane mass (16/12).
	MolarMassRatioCH4 = 16.0 / 12.0
	// MolarMassRatioN2O converts nitrogen mass to nitrous oxide mass (44/28).
	MolarMassRatioN2O = 44.0 / 28.0

	// MethaneCorrectionFactor for a managed sanitary landfill.
	MethaneCorrectionFactor = 1.0
	// MethaneFractionInGas is the CH₄ share of generated landfill gas.
	MethaneFractionInGas = 0.5
	// OxidationFactor is the CH₄ share oxidized in the landfill cover.
	OxidationFactor = 0.1
	// RecoveredFraction is the CH₄ share captured by gas recovery.
	RecoveredFraction = 0.0

	// TotalOrganicCarbon and TotalNitrogen fractions of the dry waste.
	TotalOrganicCarbon = 0.436
	TotalNitrogen      = 0.0142

	// Carbon and nitrogen shares emitted as CH₄/N₂O per composting pathway.
	VermicompostCH4CarbonFraction   = 0.0013
	VermicompostN2ONitrogenFraction = 0.0092
	CompostCH4CarbonFraction        = 0.006
	CompostN2ONitrogenFraction      = 0.0196

	// Landfill N₂O emission factors in g N₂O-N per ton of waste for an
	// open and a covered working front, and the moisture level the
	// factors were measured at.
	EmissionFactorOpen  = 1.91
	EmissionFactorClose = 2.15
	ReferenceMoisture   = 0.55

	// Pre-disposal fluxes: CH₄ in µg C per kg of waste per hour, N₂O in
	// mg N per kg of waste released over three days.
	PreDisposalCH4MicrogramCPerKgHour = 2.78
	PreDisposalN2OMilligramNPerKg     = 20.26
	PreDisposalN2ODays                = 3
)

// Constants exposes every stoichiometric, process and GWP constant by
// name for configuration and reporting surfaces.
var Constants = map[string]float64{
	"molar_mass_ratio_ch4":      MolarMassRatioCH4,
	"molar_mass_ratio_n2o":      MolarMassRatioN2O,
	"methane_correction_factor": MethaneCorrectionFactor,
	"methane_fraction_in_gas":   MethaneFractionInGas,
	"oxidation_factor":          OxidationFactor,
	"recovered_fraction":        RecoveredFraction,
	"total_organic_carbon":      TotalOrganicCarbon,
	"total_nitrogen":            TotalNitrogen,
	"vermicompost_ch4_fraction": VermicompostCH4CarbonFraction,
	"vermicompost_n2o_fraction": VermicompostN2ONitrogenFraction,
	"compost_ch4_fraction":      CompostCH4CarbonFraction,
	"compost_n2o_fraction":      CompostN2ONitrogenFraction,
	"emission_factor_open":      EmissionFactorOpen,
	"emission_factor_close":     EmissionFactorClose,
	"reference_moisture":        ReferenceMoisture,
	"predisposal_ch4_ugc_kg_h":  PreDisposalCH4MicrogramCPerKgHour,
	"predisposal_n2o_mgn_kg":    PreDisposalN2OMilligramNPerKg,
	"gwp20_ch4":                 wastecarbonsim.GWP20.CH4,
	"gwp20_n2o":                 wastecarbonsim.GWP20.N2O,
	"gwp100_ch4":                wastecarbonsim.GWP100.CH4,
	"gwp100_n2o":                wastecarbonsim.GWP100.N2O,
	"reference_avoided_tco2eq":  wastecarbonsim.ReferenceAvoidedTCO2eq,
	"reference_daily_waste_kg":  wastecarbonsim.ReferenceDailyWasteKg,
	"reference_horizon_years":   wastecarbonsim.ReferenceHorizonYears,
}

// Constant returns a named constant or a ConfigurationError when the name
// is unknown.
func Constant(name string) (float64, error) {
	v, found := Constants[name]
	if !found {
		return 0, &wastecarbonsim.ConfigurationError{
			Key: name,
			Err: fmt.Errorf("constant is not defined"),
		}
	}
	return v, nil
}
