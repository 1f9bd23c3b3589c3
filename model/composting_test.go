package model_test

import (
	"testing"

	wastecarbonsim "github.com/loopvinyl/waste-carbon-simulator"
	"github.com/loopvinyl/waste-carbon-simulator/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompostingPotentials(t *testing.T) {
	for _, tc := range []struct {
		source      wastecarbonsim.EmissionSource
		gas         wastecarbonsim.Gas
		expectedKg  float64
		description string
	}{
		{model.NewVermicompost(), wastecarbonsim.CH4, 0.436 * 0.0013 * (16.0 / 12.0) * 0.15, "vermicompost emits 0.13% of its organic carbon as CH4"},
		{model.NewVermicompost(), wastecarbonsim.N2O, 0.0142 * 0.0092 * (44.0 / 28.0) * 0.15, "vermicompost emits 0.92% of its nitrogen as N2O"},
		{model.NewThermophilicCompost(), wastecarbonsim.CH4, 0.436 * 0.006 * (16.0 / 12.0) * 0.15, "compost emits 0.6% of its organic carbon as CH4"},
		{model.NewThermophilicCompost(), wastecarbonsim.N2O, 0.0142 * 0.0196 * (44.0 / 28.0) * 0.15, "compost emits 1.96% of its nitrogen as N2O"},
	} {
		terms, err := tc.source.Terms(tc.gas, testParams(), 365)
		require.NoError(t, err, tc.description)
		require.Len(t, terms, 1)

		assert.InEpsilon(t, tc.expectedKg, terms[0].PotentialPerKg, 1e-9, tc.description)
		assert.Len(t, terms[0].Kernel, 50)
		assert.InDelta(t, 1.0, terms[0].Kernel.Sum(), 1e-9)
	}
}

func TestCompostingScenarios(t *testing.T) {
	assert.Equal(t, wastecarbonsim.Vermicompost, model.NewVermicompost().Scenario())
	assert.Equal(t, wastecarbonsim.ThermophilicCompost, model.NewThermophilicCompost().Scenario())
	assert.False(t, model.NewVermicompost().Scenario().Baseline())
}

func TestCompostingUnknownGas(t *testing.T) {
	_, err := model.NewVermicompost().Terms("co2", testParams(), 365)
	var configuration *wastecarbonsim.ConfigurationError
	require.ErrorAs(t, err, &configuration)
}

func TestCompostingRejectsInvalidParams(t *testing.T) {
	params := testParams()
	params.MoistureFraction = -0.1

	_, err := model.NewThermophilicCompost().Terms(wastecarbonsim.CH4, params, 365)
	var invalidInput *wastecarbonsim.InvalidInputError
	require.ErrorAs(t, err, &invalidInput)
}

func TestAllSourcesBaselineFirst(t *testing.T) {
	sources := model.All()
	require.Len(t, sources, 3)
	assert.True(t, sources[0].Scenario().Baseline())
}
