package wastecarbonsim

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Mode selects how the waste input schedule is generated.
type Mode string

const (
	// ModeBatch injects the whole waste quantity on the first day.
	ModeBatch Mode = "batch"
	// ModeContinuous injects the daily waste quantity every day.
	ModeContinuous Mode = "continuous"
)

// BatchSchedule returns a schedule with a single waste input on day one.
func BatchSchedule(batchKg float64, days int) Series {
	schedule := make(Series, days)
	if days > 0 {
		schedule[0] = batchKg
	}
	return schedule
}

// ContinuousSchedule returns a schedule with the same waste input every day.
func ContinuousSchedule(dailyKg float64, days int) Series {
	schedule := make(Series, days)
	for i := range schedule {
		schedule[i] = dailyKg
	}
	return schedule
}

// Published thesis reference for the vermicompost pathway at 100 kg/day
// over 20 years, used as a sanity anchor when a run matches that
// configuration.
const (
	ReferenceAvoidedTCO2eq = 1405.87
	ReferenceDailyWasteKg  = 100.0
	ReferenceHorizonYears  = 20
)

// RunConfig fully determines one simulation run. A run is a pure function
// of its config: no state survives between invocations.
type RunConfig struct {
	Mode        Mode       `json:"mode"`
	HorizonDays int        `json:"horizon_days"`
	Start       time.Time  `json:"start"`
	GWP         GWPSet     `json:"gwp"`
	Params      Parameters `json:"parameters"`
	// Schedule overrides the mode generated waste input schedule when
	// set. Its length must equal the horizon.
	Schedule Series `json:"schedule,omitempty"`
}

func (cfg RunConfig) Validate() error {
	if cfg.HorizonDays <= 0 {
		return &InvalidInputError{Param: "horizon_days", Value: float64(cfg.HorizonDays), Constraint: "> 0"}
	}
	if cfg.Mode != ModeBatch && cfg.Mode != ModeContinuous {
		return &ConfigurationError{
			Key: fmt.Sprintf("mode/%s", cfg.Mode),
			Err: fmt.Errorf("mode must be %q or %q", ModeBatch, ModeContinuous),
		}
	}
	if cfg.Schedule != nil && len(cfg.Schedule) != cfg.HorizonDays {
		return &InvalidInputError{Param: "schedule", Value: float64(len(cfg.Schedule)), Constraint: "of length horizon_days"}
	}
	return cfg.Params.Validate()
}

func (cfg RunConfig) schedule() Series {
	if cfg.Schedule != nil {
		return cfg.Schedule
	}
	if cfg.Mode == ModeBatch {
		return BatchSchedule(cfg.Params.DailyWasteKg, cfg.HorizonDays)
	}
	return ContinuousSchedule(cfg.Params.DailyWasteKg, cfg.HorizonDays)
}

// ScenarioResult carries every reportable series of one scenario. All
// masses are kg, CO2 equivalents are kg CO2eq.
type ScenarioResult struct {
	Scenario Scenario `json:"scenario"`
	Baseline bool     `json:"baseline"`
	// DailyGasKg is the emitted mass per gas and day.
	DailyGasKg map[Gas]Series `json:"daily_gas_kg"`
	// DailyCO2eqKg sums both gas contributions, converted by GWP.
	DailyCO2eqKg      Series `json:"daily_co2eq_kg"`
	CumulativeCO2eqKg Series `json:"cumulative_co2eq_kg"`
	// AvoidedCO2eqKg is the cumulative baseline delta, identically zero
	// for the baseline itself.
	AvoidedCO2eqKg Series        `json:"avoided_co2eq_kg"`
	AnnualCO2eqKg  []AnnualTotal `json:"annual_co2eq_kg"`
	AnnualAvoided  []AnnualTotal `json:"annual_avoided_co2eq_kg"`
}

// Headline holds the summary metrics reported for one non baseline
// scenario.
type Headline struct {
	Scenario Scenario `json:"scenario"`
	// TotalAvoided emissions accumulated over the whole horizon.
	TotalAvoided Emissions `json:"total_avoided_kg_co2eq"`
	// AnnualAverageAvoided is the total divided by the horizon in years.
	AnnualAverageAvoided Emissions `json:"annual_average_avoided_kg_co2eq"`
	// CarEquivalents is the annual average expressed in average cars
	// taken off the road.
	CarEquivalents float64 `json:"car_equivalents"`
}

// Result is the full output table of one simulation run.
type Result struct {
	RunID     string           `json:"run_id"`
	Mode      Mode             `json:"mode"`
	GWP       GWPSet           `json:"gwp"`
	Dates     []time.Time      `json:"dates"`
	Scenarios []ScenarioResult `json:"scenarios"`
	Headlines []Headline       `json:"headlines"`
	// VermicompostAdvantagePercent is how much more emission the
	// vermicompost pathway avoids compared to thermophilic composting.
	VermicompostAdvantagePercent float64 `json:"vermicompost_advantage_percent"`
	// ReferenceDeviationPercent compares the vermicompost avoided total
	// against the published reference value. Only set when the run
	// matches the reference configuration.
	ReferenceDeviationPercent *float64 `json:"reference_deviation_percent,omitempty"`
	// Warnings flag suspect numerics, e.g. a kernel sum above 1. The run
	// still completes but the result should be reviewed.
	Warnings []string `json:"warnings,omitempty"`
}

// Summary returns a copy of the result stripped of the daily tables,
// keeping annual rollups, headlines and warnings.
func (r *Result) Summary() *Result {
	summary := *r
	summary.Dates = nil
	summary.Scenarios = make([]ScenarioResult, len(r.Scenarios))
	for i, scenarioResult := range r.Scenarios {
		scenarioResult.DailyGasKg = nil
		scenarioResult.DailyCO2eqKg = nil
		scenarioResult.CumulativeCO2eqKg = nil
		scenarioResult.AvoidedCO2eqKg = nil
		summary.Scenarios[i] = scenarioResult
	}
	return &summary
}

// Scenario returns the result block of one scenario.
func (r *Result) Scenario(s Scenario) (ScenarioResult, bool) {
	for _, sr := range r.Scenarios {
		if sr.Scenario == s {
			return sr, true
		}
	}
	return ScenarioResult{}, false
}

type SimulatorOption func(s *Simulator)

func WithSources(sources ...EmissionSource) SimulatorOption {
	return func(s *Simulator) {
		s.sources = append(s.sources, sources...)
	}
}

// WithFFTConvolution switches the engine to the transform based
// convolution. Results are identical within floating point tolerance.
func WithFFTConvolution() SimulatorOption {
	return func(s *Simulator) {
		s.convolve = ConvolveFFT
	}
}

// Simulator runs the full emission pipeline for every configured source.
// It holds no mutable state: concurrent Run calls are safe.
type Simulator struct {
	sources  []EmissionSource
	convolve func(Series, Kernel) Series
}

func NewSimulator(opts ...SimulatorOption) *Simulator {
	simulator := &Simulator{
		sources:  make([]EmissionSource, 0),
		convolve: Convolve,
	}

	for _, option := range opts {
		option(simulator)
	}

	return simulator
}

// kernelSumTolerance bounds the accepted floating point excess of a
// kernel sum over 1.
const kernelSumTolerance = 1e-9

// Run executes every (scenario, gas) pair through the model, convolution
// and aggregation stages and assembles the result table. Any invalid
// parameter or non modeled combination aborts the whole run.
func (s *Simulator) Run(cfg RunConfig) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(s.sources) == 0 {
		return nil, &ConfigurationError{
			Key: "sources",
			Err: fmt.Errorf("no emission sources are configured"),
		}
	}

	gwp := cfg.GWP
	if gwp == (GWPSet{}) {
		gwp = GWP20
	}
	start := cfg.Start
	if start.IsZero() {
		start = time.Now()
	}

	schedule := cfg.schedule()
	dates := DateAxis(start, cfg.HorizonDays)

	result := &Result{
		RunID: uuid.NewString(),
		Mode:  cfg.Mode,
		GWP:   gwp,
		Dates: dates,
	}

	for _, source := range s.sources {
		scenarioResult := ScenarioResult{
			Scenario:     source.Scenario(),
			Baseline:     source.Scenario().Baseline(),
			DailyGasKg:   make(map[Gas]Series, 2),
			DailyCO2eqKg: make(Series, cfg.HorizonDays),
		}

		for _, gas := range Gases() {
			terms, err := source.Terms(gas, cfg.Params, cfg.HorizonDays)
			if err != nil {
				return nil, err
			}

			gasSeries := make(Series, cfg.HorizonDays)
			for _, term := range terms {
				if excess := term.Kernel.Sum() - 1; excess > kernelSumTolerance {
					warning := fmt.Sprintf("kernel sum exceeds 1 by %g for %s/%s, result is suspect",
						excess, source.Scenario(), gas)
					slog.Warn(warning, "scenario", source.Scenario(), "gas", gas)
					result.Warnings = append(result.Warnings, warning)
				}
				release := s.convolve(schedule, term.Kernel).Scaled(term.PotentialPerKg)
				gasSeries = gasSeries.Plus(release)
			}

			scenarioResult.DailyGasKg[gas] = gasSeries
			scenarioResult.DailyCO2eqKg = scenarioResult.DailyCO2eqKg.Plus(ToCO2eq(gasSeries, gwp.Factor(gas)))
		}

		scenarioResult.CumulativeCO2eqKg = scenarioResult.DailyCO2eqKg.Cumulative()
		scenarioResult.AnnualCO2eqKg = Annualize(scenarioResult.DailyCO2eqKg, dates)
		result.Scenarios = append(result.Scenarios, scenarioResult)
	}

	if err := s.aggregate(result, cfg); err != nil {
		return nil, err
	}

	return result, nil
}

// aggregate derives the avoided emission series and headline metrics once
// every scenario has been simulated.
func (s *Simulator) aggregate(result *Result, cfg RunConfig) error {
	baseline, found := s.baseline(result)
	if !found {
		return &ConfigurationError{
			Key: "baseline",
			Err: fmt.Errorf("no baseline scenario is configured"),
		}
	}

	horizonYears := float64(cfg.HorizonDays) / 365

	for i := range result.Scenarios {
		scenarioResult := &result.Scenarios[i]
		scenarioResult.AvoidedCO2eqKg = Avoided(baseline.CumulativeCO2eqKg, scenarioResult.CumulativeCO2eqKg)
		scenarioResult.AnnualAvoided = annualDelta(baseline.AnnualCO2eqKg, scenarioResult.AnnualCO2eqKg)

		if scenarioResult.Baseline {
			continue
		}

		totalAvoided := Emissions(scenarioResult.AvoidedCO2eqKg.Last())
		result.Headlines = append(result.Headlines, Headline{
			Scenario:             scenarioResult.Scenario,
			TotalAvoided:         totalAvoided,
			AnnualAverageAvoided: Emissions(float64(totalAvoided) / horizonYears),
			CarEquivalents:       Emissions(float64(totalAvoided) / horizonYears).CarEquivalents(),
		})
	}

	s.compare(result, cfg)
	return nil
}

func (s *Simulator) baseline(result *Result) (ScenarioResult, bool) {
	for _, scenarioResult := range result.Scenarios {
		if scenarioResult.Baseline {
			return scenarioResult, true
		}
	}
	return ScenarioResult{}, false
}

// compare fills the vermicompost vs thermophilic compost advantage and
// the published reference deviation when the run matches the reference
// configuration.
func (s *Simulator) compare(result *Result, cfg RunConfig) {
	vermi, foundVermi := result.Scenario(Vermicompost)
	compost, foundCompost := result.Scenario(ThermophilicCompost)
	if !foundVermi || !foundCompost {
		return
	}

	avoidedVermi := vermi.AvoidedCO2eqKg.Last()
	avoidedCompost := compost.AvoidedCO2eqKg.Last()
	if avoidedCompost > 0 {
		result.VermicompostAdvantagePercent = (avoidedVermi - avoidedCompost) / avoidedCompost * 100
	}

	matchesReference := cfg.Mode == ModeContinuous &&
		cfg.Params.DailyWasteKg == ReferenceDailyWasteKg &&
		cfg.HorizonDays == ReferenceHorizonYears*365
	if matchesReference {
		deviation := (Emissions(avoidedVermi).TCO2eq() - ReferenceAvoidedTCO2eq) / ReferenceAvoidedTCO2eq * 100
		result.ReferenceDeviationPercent = &deviation
	}
}

func annualDelta(baseline, scenario []AnnualTotal) []AnnualTotal {
	delta := make([]AnnualTotal, len(scenario))
	for i := range scenario {
		delta[i] = AnnualTotal{
			Year:  scenario[i].Year,
			Total: baseline[i].Total - scenario[i].Total,
		}
	}
	return delta
}
