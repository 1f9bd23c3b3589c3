package model

import (
	"fmt"

	wastecarbonsim "github.com/loopvinyl/waste-carbon-simulator"
	"github.com/loopvinyl/waste-carbon-simulator/model/kernels"
)

// Landfill models the sanitary landfill baseline: first order CH₄ decay
// per the IPCC waste model, a moisture and exposure adjusted N₂O flux,
// plus the small pre-disposal fluxes of both gases emitted while the
// waste is stored before collection.
type Landfill struct{}

func NewLandfill() *Landfill {
	return &Landfill{}
}

func (l *Landfill) Scenario() wastecarbonsim.Scenario {
	return wastecarbonsim.Landfill
}

func (l *Landfill) Terms(gas wastecarbonsim.Gas, params wastecarbonsim.Parameters, horizonDays int) ([]wastecarbonsim.ReleaseTerm, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	switch gas {
	case wastecarbonsim.CH4:
		return l.methaneTerms(params, horizonDays)
	case wastecarbonsim.N2O:
		return l.nitrousOxideTerms(params)
	}

	return nil, &wastecarbonsim.ConfigurationError{
		Key: fmt.Sprintf("%s/%s", l.Scenario(), gas),
		Err: fmt.Errorf("gas is not modeled"),
	}
}

// methaneTerms returns the first order decay release plus the flat
// same-day pre-disposal flux.
func (l *Landfill) methaneTerms(params wastecarbonsim.Parameters, horizonDays int) ([]wastecarbonsim.ReleaseTerm, error) {
	// Temperature dependent share of the degradable carbon that actually
	// decomposes.
	docf := 0.0147*params.TemperatureC + 0.28

	potentialPerKg := params.DegradableCarbonFraction * docf *
		kernels.MethaneCorrectionFactor *
		kernels.MethaneFractionInGas *
		kernels.MolarMassRatioCH4 *
		(1 - kernels.RecoveredFraction) *
		(1 - kernels.OxidationFactor)

	preDisposalKernel, err := kernels.PreDisposalProfile(wastecarbonsim.CH4)
	if err != nil {
		return nil, err
	}

	// µg C per kg per hour over a full day, converted to kg CH₄ per kg.
	preDisposalPerKg := kernels.PreDisposalCH4MicrogramCPerKgHour *
		kernels.MolarMassRatioCH4 * 24 * 1e-9

	return []wastecarbonsim.ReleaseTerm{
		{
			PotentialPerKg: potentialPerKg,
			Kernel:         kernels.Decay(params.DecayRatePerYear, horizonDays),
		},
		{
			PotentialPerKg: preDisposalPerKg,
			Kernel:         preDisposalKernel,
		},
	}, nil
}

// nitrousOxideTerms returns the primary five day release plus the three
// day pre-disposal release. The two profiles stay additive and are never
// blended.
func (l *Landfill) nitrousOxideTerms(params wastecarbonsim.Parameters) ([]wastecarbonsim.ReleaseTerm, error) {
	moistureFactor := (1 - params.MoistureFraction) / (1 - kernels.ReferenceMoisture)

	// Share of the working front left uncovered, blending the open and
	// covered emission factors.
	openFraction := (params.ExposedMassKg / params.DailyWasteKg) * (params.ExposedHoursPerDay / 24)
	openFraction = min(max(openFraction, 0), 1)

	factor := openFraction*kernels.EmissionFactorOpen + (1-openFraction)*kernels.EmissionFactorClose
	factor *= moistureFactor

	primaryKernel, err := kernels.Profile(wastecarbonsim.Landfill, wastecarbonsim.N2O)
	if err != nil {
		return nil, err
	}
	preDisposalKernel, err := kernels.PreDisposalProfile(wastecarbonsim.N2O)
	if err != nil {
		return nil, err
	}

	// g N₂O-N per ton scaled to kg N₂O per kg.
	primaryPerKg := factor * kernels.MolarMassRatioN2O * 1e-6

	// mg N per kg stored, released at a daily rate over the storage days.
	preDisposalPerKg := kernels.PreDisposalN2OMilligramNPerKg /
		kernels.PreDisposalN2ODays * kernels.MolarMassRatioN2O * 1e-6

	return []wastecarbonsim.ReleaseTerm{
		{PotentialPerKg: primaryPerKg, Kernel: primaryKernel},
		{PotentialPerKg: preDisposalPerKg, Kernel: preDisposalKernel},
	}, nil
}
