package wastecarbonsim_test

import (
	"testing"

	"github.com/goccy/go-json"
	wastecarbonsim "github.com/loopvinyl/waste-carbon-simulator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmissionsConversions(t *testing.T) {
	e := wastecarbonsim.Emissions(1500)
	assert.Equal(t, 1500000.0, e.GCO2eq())
	assert.Equal(t, 1500.0, e.KgCO2eq())
	assert.Equal(t, 1.5, e.TCO2eq())
	assert.Equal(t, 1.0, e.CarEquivalents())
}

func TestGWPFactors(t *testing.T) {
	assert.Equal(t, 79.7, wastecarbonsim.GWP20.Factor(wastecarbonsim.CH4))
	assert.Equal(t, 273.0, wastecarbonsim.GWP20.Factor(wastecarbonsim.N2O))
	assert.Equal(t, 27.9, wastecarbonsim.GWP100.Factor(wastecarbonsim.CH4))
	assert.Zero(t, wastecarbonsim.GWP20.Factor(wastecarbonsim.Gas("co2")))
}

func TestGWPSetSerializesSnakeCase(t *testing.T) {
	raw, err := json.Marshal(wastecarbonsim.GWP20)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Equal(t, "20y", fields["horizon"])
	assert.Equal(t, 79.7, fields["ch4"])
	assert.Equal(t, 273.0, fields["n2o"])
}
