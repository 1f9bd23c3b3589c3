package kernels

import (
	"testing"

	wastecarbonsim "github.com/loopvinyl/waste-carbon-simulator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmpiricalProfilesAreNormalized(t *testing.T) {
	for _, tc := range []struct {
		scenario wastecarbonsim.Scenario
		gas      wastecarbonsim.Gas
		length   int
	}{
		{wastecarbonsim.Landfill, wastecarbonsim.N2O, 5},
		{wastecarbonsim.Vermicompost, wastecarbonsim.CH4, 50},
		{wastecarbonsim.Vermicompost, wastecarbonsim.N2O, 50},
		{wastecarbonsim.ThermophilicCompost, wastecarbonsim.CH4, 50},
		{wastecarbonsim.ThermophilicCompost, wastecarbonsim.N2O, 50},
	} {
		kernel, err := Profile(tc.scenario, tc.gas)
		require.NoError(t, err)
		assert.Len(t, kernel, tc.length)
		assert.InDelta(t, 1.0, kernel.Sum(), 1e-9, "%s/%s", tc.scenario, tc.gas)
		for day, w := range kernel {
			assert.GreaterOrEqual(t, w, 0.0, "%s/%s day %d", tc.scenario, tc.gas, day)
		}
	}
}

func TestLiteralWeightsAreRenormalized(t *testing.T) {
	// the literal fifty day profiles do not sum to exactly 1, the library
	// must correct the sum before anyone convolves with them
	raw := vermicompostCH4.Sum()
	require.NotEqual(t, 1.0, raw)

	kernel, err := Profile(wastecarbonsim.Vermicompost, wastecarbonsim.CH4)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, kernel.Sum(), 1e-12)
	assert.InDelta(t, vermicompostCH4[0]/raw, kernel[0], 1e-12)
}

func TestProfileUnknownCombination(t *testing.T) {
	_, err := Profile(wastecarbonsim.Landfill, "co2")
	var configuration *wastecarbonsim.ConfigurationError
	require.ErrorAs(t, err, &configuration)
}

func TestProfileLandfillMethaneIsGenerated(t *testing.T) {
	_, err := Profile(wastecarbonsim.Landfill, wastecarbonsim.CH4)
	var configuration *wastecarbonsim.ConfigurationError
	require.ErrorAs(t, err, &configuration)
}

func TestPreDisposalProfilesAreDistinct(t *testing.T) {
	n2o, err := PreDisposalProfile(wastecarbonsim.N2O)
	require.NoError(t, err)
	assert.Len(t, n2o, 3)
	assert.InDelta(t, 1.0, n2o.Sum(), 1e-9)
	assert.InDelta(t, 0.8623, n2o[0], 1e-4)

	primary, err := Profile(wastecarbonsim.Landfill, wastecarbonsim.N2O)
	require.NoError(t, err)
	assert.NotEqual(t, len(primary), len(n2o), "pre-disposal and primary N2O profiles must not be conflated")

	ch4, err := PreDisposalProfile(wastecarbonsim.CH4)
	require.NoError(t, err)
	assert.Equal(t, wastecarbonsim.Kernel{1}, ch4, "pre-disposal CH4 escapes the same day")

	_, err = PreDisposalProfile("co2")
	var configuration *wastecarbonsim.ConfigurationError
	require.ErrorAs(t, err, &configuration)
}

func TestDecayConservation(t *testing.T) {
	// finite horizons release a partial fraction, never more
	year := Decay(0.06, 365)
	assert.InEpsilon(t, 0.0583, year.Sum(), 0.01)
	assert.LessOrEqual(t, year.Sum(), 1.0)

	// the whole potential is released as the horizon grows
	long := Decay(0.06, 300*365)
	assert.InDelta(t, 1.0, long.Sum(), 1e-6)
	assert.LessOrEqual(t, long.Sum(), 1.0)

	for day, w := range long {
		require.GreaterOrEqual(t, w, 0.0, "day %d", day)
	}
}

func TestConstant(t *testing.T) {
	ratio, err := Constant("molar_mass_ratio_ch4")
	require.NoError(t, err)
	assert.InEpsilon(t, 16.0/12.0, ratio, 1e-12)

	gwp, err := Constant("gwp20_ch4")
	require.NoError(t, err)
	assert.Equal(t, 79.7, gwp)

	_, err = Constant("molar_mass_ratio_co2")
	var configuration *wastecarbonsim.ConfigurationError
	require.ErrorAs(t, err, &configuration)
}
