// Package model implements the per scenario emission sources: sanitary
// landfill, vermicomposting and thermophilic composting. Each source
// computes, for one gas, the emission potential per kg of waste and the
// release kernel spreading it over the days following the input.
package model

import (
	wastecarbonsim "github.com/loopvinyl/waste-carbon-simulator"
)

// All returns every modeled emission source, baseline first.
func All() []wastecarbonsim.EmissionSource {
	return []wastecarbonsim.EmissionSource{
		NewLandfill(),
		NewVermicompost(),
		NewThermophilicCompost(),
	}
}
