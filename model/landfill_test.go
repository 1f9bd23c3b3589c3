package model_test

import (
	"math"
	"testing"

	wastecarbonsim "github.com/loopvinyl/waste-carbon-simulator"
	"github.com/loopvinyl/waste-carbon-simulator/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams() wastecarbonsim.Parameters {
	return wastecarbonsim.Parameters{
		DailyWasteKg:             100,
		MoistureFraction:         0.85,
		TemperatureC:             25,
		DegradableCarbonFraction: 0.15,
		DecayRatePerYear:         0.06,
		ExposedMassKg:            100,
		ExposedHoursPerDay:       8,
	}
}

func TestLandfillMethanePotential(t *testing.T) {
	landfill := model.NewLandfill()

	terms, err := landfill.Terms(wastecarbonsim.CH4, testParams(), 365)
	require.NoError(t, err)
	require.Len(t, terms, 2, "decay release plus pre-disposal flux")

	// DOC · DOCf · MCF · F · 16/12 · (1-R) · (1-OX) at 25 °C
	assert.InDelta(t, 0.0583, terms[0].PotentialPerKg, 0.0001)

	// the decay kernel spans the horizon and telescopes to 1-exp(-k·years)
	decay := terms[0].Kernel
	require.Len(t, decay, 365)
	assert.InEpsilon(t, 1-math.Exp(-0.06), decay.Sum(), 1e-9)

	// pre-disposal methane escapes the same day
	assert.Equal(t, wastecarbonsim.Kernel{1}, terms[1].Kernel)
	assert.InEpsilon(t, 2.78*(16.0/12.0)*24*1e-9, terms[1].PotentialPerKg, 1e-12)
}

func TestLandfillNitrousOxideTerms(t *testing.T) {
	landfill := model.NewLandfill()

	terms, err := landfill.Terms(wastecarbonsim.N2O, testParams(), 365)
	require.NoError(t, err)
	require.Len(t, terms, 2, "primary release plus pre-disposal flux")

	// f_open = (100/100)·(8/24) = 1/3, moisture factor = 0.15/0.45
	factor := (1.91/3 + 2.15*2/3) * (0.15 / 0.45)
	assert.InEpsilon(t, factor*(44.0/28.0)*1e-6, terms[0].PotentialPerKg, 1e-9)
	require.Len(t, terms[0].Kernel, 5)
	assert.InDelta(t, 1.0, terms[0].Kernel.Sum(), 1e-9)

	// the pre-disposal profile is a distinct three day release
	require.Len(t, terms[1].Kernel, 3)
	assert.InDelta(t, 1.0, terms[1].Kernel.Sum(), 1e-9)
	assert.InEpsilon(t, 20.26/3*(44.0/28.0)*1e-6, terms[1].PotentialPerKg, 1e-12)
}

func TestLandfillOpenFractionClipped(t *testing.T) {
	params := testParams()
	params.ExposedMassKg = 10000 // whole front uncovered all day
	params.ExposedHoursPerDay = 24

	landfill := model.NewLandfill()
	terms, err := landfill.Terms(wastecarbonsim.N2O, params, 10)
	require.NoError(t, err)

	// f_open clips at 1, only the open factor applies
	assert.InEpsilon(t, 1.91*(0.15/0.45)*(44.0/28.0)*1e-6, terms[0].PotentialPerKg, 1e-9)
}

func TestLandfillRejectsInvalidParams(t *testing.T) {
	params := testParams()
	params.TemperatureC = -3

	_, err := model.NewLandfill().Terms(wastecarbonsim.CH4, params, 365)
	var invalidInput *wastecarbonsim.InvalidInputError
	require.ErrorAs(t, err, &invalidInput)
	assert.Equal(t, "temperature_c", invalidInput.Param)
}

func TestLandfillUnknownGas(t *testing.T) {
	_, err := model.NewLandfill().Terms("co2", testParams(), 365)
	var configuration *wastecarbonsim.ConfigurationError
	require.ErrorAs(t, err, &configuration)
}
