package model

import (
	"fmt"

	wastecarbonsim "github.com/loopvinyl/waste-carbon-simulator"
	"github.com/loopvinyl/waste-carbon-simulator/model/kernels"
)

// Composting models an aerobic treatment pathway. Vermicomposting and
// thermophilic composting share the same structure and differ only in the
// carbon and nitrogen shares escaping as CH₄ and N₂O and in their fifty
// day release profiles.
type Composting struct {
	scenario            wastecarbonsim.Scenario
	ch4CarbonFraction   float64
	n2oNitrogenFraction float64
}

func NewVermicompost() *Composting {
	return &Composting{
		scenario:            wastecarbonsim.Vermicompost,
		ch4CarbonFraction:   kernels.VermicompostCH4CarbonFraction,
		n2oNitrogenFraction: kernels.VermicompostN2ONitrogenFraction,
	}
}

func NewThermophilicCompost() *Composting {
	return &Composting{
		scenario:            wastecarbonsim.ThermophilicCompost,
		ch4CarbonFraction:   kernels.CompostCH4CarbonFraction,
		n2oNitrogenFraction: kernels.CompostN2ONitrogenFraction,
	}
}

func (c *Composting) Scenario() wastecarbonsim.Scenario {
	return c.scenario
}

func (c *Composting) Terms(gas wastecarbonsim.Gas, params wastecarbonsim.Parameters, horizonDays int) ([]wastecarbonsim.ReleaseTerm, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	kernel, err := kernels.Profile(c.scenario, gas)
	if err != nil {
		return nil, err
	}

	// Potentials apply to the dry mass share only.
	dryFraction := 1 - params.MoistureFraction

	var potentialPerKg float64
	switch gas {
	case wastecarbonsim.CH4:
		potentialPerKg = kernels.TotalOrganicCarbon * c.ch4CarbonFraction *
			kernels.MolarMassRatioCH4 * dryFraction
	case wastecarbonsim.N2O:
		potentialPerKg = kernels.TotalNitrogen * c.n2oNitrogenFraction *
			kernels.MolarMassRatioN2O * dryFraction
	default:
		return nil, &wastecarbonsim.ConfigurationError{
			Key: fmt.Sprintf("%s/%s", c.scenario, gas),
			Err: fmt.Errorf("gas is not modeled"),
		}
	}

	return []wastecarbonsim.ReleaseTerm{
		{PotentialPerKg: potentialPerKg, Kernel: kernel},
	}, nil
}
