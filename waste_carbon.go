package wastecarbonsim

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Gas identifies one of the greenhouse gases tracked by the simulator.
type Gas string

const (
	CH4 Gas = "ch4"
	N2O Gas = "n2o"
)

// Gases returns every gas tracked by the simulator.
func Gases() []Gas {
	return []Gas{CH4, N2O}
}

// Scenario identifies a waste management pathway.
type Scenario string

const (
	Landfill            Scenario = "landfill"
	Vermicompost        Scenario = "vermicompost"
	ThermophilicCompost Scenario = "thermophilic_compost"
)

// Scenarios returns every modeled scenario, baseline first.
func Scenarios() []Scenario {
	return []Scenario{Landfill, Vermicompost, ThermophilicCompost}
}

// Baseline reports whether the scenario is the reference pathway that
// avoided emissions are measured against.
func (s Scenario) Baseline() bool {
	return s == Landfill
}

var scenarioNames = []string{
	string(Landfill),
	string(Vermicompost),
	string(ThermophilicCompost),
}

// LookupScenarioByName fuzzy finds the closest modeled scenario for a user
// supplied name, so that "vermi" or "thermo compost" resolve to the right
// pathway.
func LookupScenarioByName(name string) (Scenario, error) {
	ranks := fuzzy.RankFindNormalizedFold(name, scenarioNames)
	if len(ranks) == 0 {
		return "", fmt.Errorf("no scenario matches name %q", name)
	}
	sort.Sort(ranks)

	scenario := Scenario(scenarioNames[ranks[0].OriginalIndex])
	slog.Debug("fuzzy matched scenario name", "source", name, "match", scenario)
	return scenario, nil
}

// InvalidInputError reports a simulation parameter outside its documented
// physical domain. It is returned before any computation proceeds and is
// never retried.
type InvalidInputError struct {
	Param      string
	Value      float64
	Constraint string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s=%g: must be %s", e.Param, e.Value, e.Constraint)
}

// ConfigurationError reports a request for a (scenario, gas) combination or
// a named constant that the kernel library does not model. It indicates a
// caller defect, not a runtime condition.
type ConfigurationError struct {
	Key string
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error (key: %s): %s", e.Key, e.Err.Error())
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// ReleaseTerm couples an emission potential with the temporal profile that
// spreads it over the days following a waste input. A scenario/gas pair may
// carry several additive terms, e.g. the landfill primary N₂O release plus
// its pre-disposal flux.
type ReleaseTerm struct {
	// PotentialPerKg is the emittable gas mass in kg per kg of waste input.
	PotentialPerKg float64
	// Kernel distributes the potential over days since input.
	Kernel Kernel
}

// EmissionSource models one waste management scenario: for each gas it
// yields the additive release terms to be convolved with the waste input
// schedule.
type EmissionSource interface {
	Scenario() Scenario
	Terms(gas Gas, params Parameters, horizonDays int) ([]ReleaseTerm, error)
}
