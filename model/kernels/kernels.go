// Package kernels is the single source of truth for the fixed temporal
// release profiles and stoichiometric constants of the emission models.
// Every empirical profile is renormalized at init so that its weights sum
// to exactly 1 no matter how the literal values round.
package kernels

import (
	"fmt"
	"math"

	wastecarbonsim "github.com/loopvinyl/waste-carbon-simulator"
)

// Landfill N₂O release over the five days following disposal, Wang et
// al. (2017).
var landfillN2O = wastecarbonsim.Kernel{0.10, 0.30, 0.40, 0.15, 0.05}

// Pre-disposal N₂O release over the three days of household storage,
// Feng et al. (2020). Distinct from the primary five day profile above,
// the two must never be conflated.
var preDisposalN2O = wastecarbonsim.Kernel{0.8623, 0.10, 0.0377}

// Vermicomposting release profiles over the fifty day process, Yang et
// al. (2017).
var vermicompostCH4 = wastecarbonsim.Kernel{
	0.02, 0.02, 0.02, 0.03, 0.03, 0.04, 0.04, 0.05, 0.05, 0.06,
	0.07, 0.08, 0.09, 0.10, 0.09, 0.08, 0.07, 0.06, 0.05, 0.04,
	0.03, 0.02, 0.02, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01,
	0.005, 0.005, 0.005, 0.005, 0.005, 0.005, 0.005, 0.005, 0.005, 0.005,
	0.002, 0.002, 0.002, 0.002, 0.002, 0.001, 0.001, 0.001, 0.001, 0.001,
}

var vermicompostN2O = wastecarbonsim.Kernel{
	0.15, 0.10, 0.20, 0.05, 0.03, 0.03, 0.03, 0.04, 0.05, 0.06,
	0.08, 0.09, 0.10, 0.08, 0.07, 0.06, 0.05, 0.04, 0.03, 0.02,
	0.01, 0.01, 0.005, 0.005, 0.005, 0.005, 0.005, 0.005, 0.005, 0.005,
	0.002, 0.002, 0.002, 0.002, 0.002, 0.001, 0.001, 0.001, 0.001, 0.001,
	0.001, 0.001, 0.001, 0.001, 0.001, 0.001, 0.001, 0.001, 0.001, 0.001,
}

// Thermophilic composting release profiles over the fifty day process,
// Yang et al. (2017).
var compostCH4 = wastecarbonsim.Kernel{
	0.01, 0.02, 0.03, 0.05, 0.08, 0.12, 0.15, 0.18, 0.20, 0.18,
	0.15, 0.12, 0.10, 0.08, 0.06, 0.05, 0.04, 0.03, 0.02, 0.02,
	0.01, 0.01, 0.01, 0.01, 0.01, 0.005, 0.005, 0.005, 0.005, 0.005,
	0.002, 0.002, 0.002, 0.002, 0.002, 0.001, 0.001, 0.001, 0.001, 0.001,
	0.001, 0.001, 0.001, 0.001, 0.001, 0.001, 0.001, 0.001, 0.001, 0.001,
}

var compostN2O = wastecarbonsim.Kernel{
	0.10, 0.08, 0.15, 0.05, 0.03, 0.04, 0.05, 0.07, 0.10, 0.12,
	0.15, 0.18, 0.20, 0.18, 0.15, 0.12, 0.10, 0.08, 0.06, 0.05,
	0.04, 0.03, 0.02, 0.02, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01,
	0.005, 0.005, 0.005, 0.005, 0.005, 0.002, 0.002, 0.002, 0.002, 0.002,
	0.001, 0.001, 0.001, 0.001, 0.001, 0.001, 0.001, 0.001, 0.001, 0.001,
}

type profileKey struct {
	scenario wastecarbonsim.Scenario
	gas      wastecarbonsim.Gas
}

var profiles = map[profileKey]wastecarbonsim.Kernel{
	{wastecarbonsim.Landfill, wastecarbonsim.N2O}:            landfillN2O.Normalized(),
	{wastecarbonsim.Vermicompost, wastecarbonsim.CH4}:        vermicompostCH4.Normalized(),
	{wastecarbonsim.Vermicompost, wastecarbonsim.N2O}:        vermicompostN2O.Normalized(),
	{wastecarbonsim.ThermophilicCompost, wastecarbonsim.CH4}: compostCH4.Normalized(),
	{wastecarbonsim.ThermophilicCompost, wastecarbonsim.N2O}: compostN2O.Normalized(),
}

// Profile returns the normalized empirical release kernel for a scenario
// and gas. The landfill CH₄ kernel is parameter dependent and is generated
// by Decay instead; asking for it here is a caller defect like any other
// non modeled combination and yields a ConfigurationError.
func Profile(scenario wastecarbonsim.Scenario, gas wastecarbonsim.Gas) (wastecarbonsim.Kernel, error) {
	if scenario == wastecarbonsim.Landfill && gas == wastecarbonsim.CH4 {
		return nil, &wastecarbonsim.ConfigurationError{
			Key: fmt.Sprintf("%s/%s", scenario, gas),
			Err: fmt.Errorf("landfill ch4 follows the first order decay kernel, use Decay"),
		}
	}

	kernel, found := profiles[profileKey{scenario, gas}]
	if !found {
		return nil, &wastecarbonsim.ConfigurationError{
			Key: fmt.Sprintf("%s/%s", scenario, gas),
			Err: fmt.Errorf("no release profile is modeled for this scenario and gas"),
		}
	}
	return kernel, nil
}

// PreDisposalProfile returns the release kernel for emissions occurring
// before the waste reaches the landfill: CH₄ escapes the same day, N₂O
// follows its own three day profile.
func PreDisposalProfile(gas wastecarbonsim.Gas) (wastecarbonsim.Kernel, error) {
	switch gas {
	case wastecarbonsim.CH4:
		return wastecarbonsim.Kernel{1}, nil
	case wastecarbonsim.N2O:
		return preDisposalN2O.Normalized(), nil
	}
	return nil, &wastecarbonsim.ConfigurationError{
		Key: fmt.Sprintf("predisposal/%s", gas),
		Err: fmt.Errorf("no pre-disposal release profile is modeled for this gas"),
	}
}

// Decay generates the landfill CH₄ kernel from the first order decay
// equation: w(t) = exp(−k(t−1)/365) − exp(−kt/365) for t = 1..horizon.
// The kernel is deliberately not renormalized: its sum is the fraction of
// the methane potential released within the horizon, which stays below 1
// for any finite horizon and converges to 1 as the horizon grows.
func Decay(ratePerYear float64, horizonDays int) wastecarbonsim.Kernel {
	kernel := make(wastecarbonsim.Kernel, horizonDays)
	for t := 1; t <= horizonDays; t++ {
		w := math.Exp(-ratePerYear*float64(t-1)/365) - math.Exp(-ratePerYear*float64(t)/365)
		// clamp floating point underflow
		kernel[t-1] = math.Max(w, 0)
	}
	return kernel
}
