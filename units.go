package wastecarbonsim

// Emissions in kgCO2eq
type Emissions float64

func (e Emissions) GCO2eq() float64 {
	return float64(e) * 1000
}

func (e Emissions) KgCO2eq() float64 {
	return float64(e)
}

func (e Emissions) TCO2eq() float64 {
	return float64(e) / 1000
}

// averageCarTCO2eqYear is the reference footprint of one average car,
// used for the car-equivalents headline.
const averageCarTCO2eqYear = 1.5

// CarEquivalents converts an annual emission quantity into the number of
// average cars emitting the same amount per year.
func (e Emissions) CarEquivalents() float64 {
	return e.TCO2eq() / averageCarTCO2eqYear
}

// GWPSet holds the global warming potential factors converting a gas mass
// into its CO2 equivalent over a stated time horizon.
type GWPSet struct {
	Horizon string  `json:"horizon"`
	CH4     float64 `json:"ch4"`
	N2O     float64 `json:"n2o"`
}

// IPCC AR6 factors.
var (
	GWP20  = GWPSet{Horizon: "20y", CH4: 79.7, N2O: 273}
	GWP100 = GWPSet{Horizon: "100y", CH4: 27.9, N2O: 273}
)

// Factor returns the CO2eq multiplier for the given gas.
func (g GWPSet) Factor(gas Gas) float64 {
	switch gas {
	case CH4:
		return g.CH4
	case N2O:
		return g.N2O
	}
	return 0
}
