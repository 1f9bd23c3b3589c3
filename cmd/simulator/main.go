package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	wastecarbonsim "github.com/loopvinyl/waste-carbon-simulator"
	"github.com/loopvinyl/waste-carbon-simulator/internal/must"
	"github.com/loopvinyl/waste-carbon-simulator/model"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

func main() {
	ctx := context.Background()

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		flag.PrintDefaults()
	}

	flagConfig := ""
	flagMode := "continuous"
	flagWasteKgDay := 100.0
	flagMoisture := 0.85
	flagTemperature := 25.0
	flagDOC := 0.15
	flagDecayRate := 0.06
	flagExposedMass := 100.0
	flagExposedHours := 8.0
	flagHorizonYears := 20
	flagGWPHorizon := "20y"
	flagConvolution := "auto"
	flagScenario := ""
	flagCompare := ""
	flagDailyCSV := ""
	flagAnnualCSV := ""
	flagListen := ""
	flagDebug := false
	flagLogLevel := ""
	flagLogFormat := ""

	flag.StringVar(&flagConfig, "config", "", "yaml run configuration file")
	flag.StringVar(&flagMode, "mode", "continuous", "waste input mode (batch, continuous)")
	flag.Float64Var(&flagWasteKgDay, "waste.kgday", 100, "waste mass in kg, per day in continuous mode, total in batch mode")
	flag.Float64Var(&flagMoisture, "waste.moisture", 0.85, "waste moisture fraction, 0 to 1")
	flag.Float64Var(&flagTemperature, "env.temperature", 25, "mean ambient temperature in °C")
	flag.Float64Var(&flagDOC, "waste.doc", 0.15, "degradable organic carbon fraction")
	flag.Float64Var(&flagDecayRate, "landfill.decayrate", 0.06, "first order decay constant k, per year")
	flag.Float64Var(&flagExposedMass, "landfill.exposedmass", 100, "waste mass exposed at the working front, kg")
	flag.Float64Var(&flagExposedHours, "landfill.exposedhours", 8, "hours per day the waste stays uncovered")
	flag.IntVar(&flagHorizonYears, "horizon.years", 20, "simulation horizon in years")
	flag.StringVar(&flagGWPHorizon, "gwp.horizon", "20y", "global warming potential horizon (20y, 100y)")
	flag.StringVar(&flagConvolution, "convolution", "auto", "convolution engine (direct, fft, auto)")
	flag.StringVar(&flagScenario, "scenario", "", "restrict the run to the landfill baseline plus this scenario, fuzzy matched")
	flag.StringVar(&flagCompare, "compare", "", "comma separated daily waste rates to compare, kg/day")
	flag.StringVar(&flagDailyCSV, "output.daily", "", "write the daily table to this csv file")
	flag.StringVar(&flagAnnualCSV, "output.annual", "", "write the annual table to this csv file")
	flag.StringVar(&flagListen, "listen", "", "serve the http api on this addr instead of running once")
	flag.BoolVar(&flagDebug, "debug", false, "print the full result as json")
	flag.StringVar(&flagLogLevel, "log.level", "info", "log severity (debug, info, warn, error)")
	flag.StringVar(&flagLogFormat, "log.format", "text", "log format (text, json)")

	flag.Parse()

	initLogging(flagLogLevel, flagLogFormat)

	cfg := wastecarbonsim.RunConfig{
		Mode:        wastecarbonsim.Mode(flagMode),
		HorizonDays: flagHorizonYears * 365,
		Params: wastecarbonsim.Parameters{
			DailyWasteKg:             flagWasteKgDay,
			MoistureFraction:         flagMoisture,
			TemperatureC:             flagTemperature,
			DegradableCarbonFraction: flagDOC,
			DecayRatePerYear:         flagDecayRate,
			ExposedMassKg:            flagExposedMass,
			ExposedHoursPerDay:       flagExposedHours,
		},
	}
	switch flagGWPHorizon {
	case "20y":
		cfg.GWP = wastecarbonsim.GWP20
	case "100y":
		cfg.GWP = wastecarbonsim.GWP100
	default:
		slog.Error("unknown gwp horizon", "gwp.horizon", flagGWPHorizon)
		os.Exit(1)
	}

	if flagConfig != "" {
		if err := applyConfigFile(flagConfig, &cfg); err != nil {
			slog.Error("failed to load config file", "config", flagConfig, "err", err)
			os.Exit(1)
		}
	}

	simulator := wastecarbonsim.NewSimulator(simulatorOptions(flagConvolution, flagScenario, cfg.HorizonDays)...)

	if flagListen != "" {
		serve(ctx, flagListen, simulator)
		return
	}

	if flagCompare != "" {
		compareRates(ctx, simulator, cfg, flagCompare)
		return
	}

	result, err := simulator.Run(cfg)
	if err != nil {
		slog.Error("simulation failed", "err", err)
		os.Exit(1)
	}
	slog.Info("simulation complete", "run_id", result.RunID, "horizon_days", cfg.HorizonDays)

	printHeadlines(result)

	if flagDailyCSV != "" {
		writeCSV(flagDailyCSV, result, wastecarbonsim.WriteDailyCSV)
	}
	if flagAnnualCSV != "" {
		writeCSV(flagAnnualCSV, result, wastecarbonsim.WriteAnnualCSV)
	}
	if flagDebug {
		must.PrintDebugJSON(result)
	}
}

// simulatorOptions picks the convolution engine: direct summation for
// short horizons, the fast transform for multi decade runs where the
// landfill decay kernel spans the whole horizon.
func simulatorOptions(convolution string, scenario string, horizonDays int) []wastecarbonsim.SimulatorOption {
	opts := []wastecarbonsim.SimulatorOption{
		wastecarbonsim.WithSources(selectSources(scenario)...),
	}

	switch convolution {
	case "direct":
	case "fft":
		opts = append(opts, wastecarbonsim.WithFFTConvolution())
	case "auto":
		if horizonDays > 10*365 {
			opts = append(opts, wastecarbonsim.WithFFTConvolution())
		}
	default:
		slog.Error("unknown convolution engine", "convolution", convolution)
		os.Exit(1)
	}

	return opts
}

// selectSources keeps every source unless a scenario name is given, in
// which case the baseline plus the fuzzy matched scenario remain.
func selectSources(scenario string) []wastecarbonsim.EmissionSource {
	sources := model.All()
	if scenario == "" {
		return sources
	}

	matched, err := wastecarbonsim.LookupScenarioByName(scenario)
	if err != nil {
		slog.Error("unknown scenario", "scenario", scenario, "err", err)
		os.Exit(1)
	}

	selected := make([]wastecarbonsim.EmissionSource, 0, 2)
	for _, source := range sources {
		if source.Scenario().Baseline() || source.Scenario() == matched {
			selected = append(selected, source)
		}
	}
	return selected
}

func serve(ctx context.Context, listen string, simulator *wastecarbonsim.Simulator) {
	mux := http.NewServeMux()
	mux.Handle("/simulate", wastecarbonsim.NewSimulateHandler(ctx, simulator))
	mux.Handle("/compare", wastecarbonsim.NewCompareHandler(simulator))
	mux.HandleFunc("/healthz", wastecarbonsim.HealthzHandler)

	slog.Info("starting waste carbon simulator api", "listen", listen)
	if err := http.ListenAndServe(listen, mux); err != nil {
		slog.Error("failed to start waste carbon simulator api", "err", err)
		os.Exit(1)
	}
}

func compareRates(ctx context.Context, simulator *wastecarbonsim.Simulator, cfg wastecarbonsim.RunConfig, rates string) {
	parsed := make([]float64, 0)
	for _, rate := range strings.Split(rates, ",") {
		parsed = append(parsed, must.CastFloat64(strings.TrimSpace(rate)))
	}

	comparisons, err := wastecarbonsim.CompareRates(ctx, simulator, cfg, parsed)
	if err != nil {
		slog.Error("comparison failed", "err", err)
		os.Exit(1)
	}

	for _, comparison := range comparisons {
		fmt.Printf("--- %.0f kg/day ---\n", comparison.DailyWasteKg)
		printHeadlines(comparison.Result)
	}
}

func printHeadlines(result *wastecarbonsim.Result) {
	for _, headline := range result.Headlines {
		fmt.Printf("%s: %.2f tCO2eq avoided, %.2f tCO2eq/year on average (≈ %.0f cars off the road)\n",
			headline.Scenario,
			headline.TotalAvoided.TCO2eq(),
			headline.AnnualAverageAvoided.TCO2eq(),
			headline.CarEquivalents,
		)
	}
	if result.VermicompostAdvantagePercent != 0 {
		fmt.Printf("vermicomposting avoids %+.1f%% more than thermophilic composting\n",
			result.VermicompostAdvantagePercent)
	}
	if result.ReferenceDeviationPercent != nil {
		fmt.Printf("deviation from published reference (%.2f tCO2eq): %+.1f%%\n",
			wastecarbonsim.ReferenceAvoidedTCO2eq, *result.ReferenceDeviationPercent)
	}
	for _, warning := range result.Warnings {
		slog.Warn(warning)
	}
}

func writeCSV(path string, result *wastecarbonsim.Result, write func(w io.Writer, result *wastecarbonsim.Result) error) {
	f, err := os.Create(path)
	if err != nil {
		slog.Error("failed to create output file", "path", path, "err", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := write(f, result); err != nil {
		slog.Error("failed to write output file", "path", path, "err", err)
		os.Exit(1)
	}
	slog.Info("wrote output file", "path", path)
}

func initLogging(logLevel string, logFormat string) {
	switch logFormat {
	case "text":
		slog.SetDefault(slog.New(tint.NewHandler(os.Stdout, &tint.Options{
			Level:   slogLevel(logLevel),
			NoColor: !isatty.IsTerminal(os.Stdout.Fd()),
		})))
	case "json":
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slogLevel(logLevel),
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				switch a.Key {
				case slog.LevelKey:
					a.Key = "severity"
					return a
				case slog.MessageKey:
					a.Key = "message"
					return a
				default:
					return a
				}
			},
		})))
	}
}

func slogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	return slog.LevelInfo
}
