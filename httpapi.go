package wastecarbonsim

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/loopvinyl/waste-carbon-simulator/internal/cache"
)

// SimulateRequest is the JSON body of the /simulate and /compare
// endpoints.
type SimulateRequest struct {
	Mode        string     `json:"mode"`
	HorizonDays int        `json:"horizon_days"`
	GWPHorizon  string     `json:"gwp_horizon,omitempty"`
	Parameters  Parameters `json:"parameters"`
	// IncludeDaily returns the full daily tables. They weigh several MB
	// for multi decade horizons, so the default response carries only
	// annual rollups and headlines.
	IncludeDaily bool `json:"include_daily,omitempty"`
	// Rates is the list of daily waste rates for /compare.
	Rates []float64 `json:"rates,omitempty"`
}

func (req SimulateRequest) runConfig() (RunConfig, error) {
	gwp := GWP20
	switch req.GWPHorizon {
	case "", GWP20.Horizon:
	case GWP100.Horizon:
		gwp = GWP100
	default:
		return RunConfig{}, &ConfigurationError{
			Key: fmt.Sprintf("gwp_horizon/%s", req.GWPHorizon),
			Err: fmt.Errorf("gwp horizon must be %q or %q", GWP20.Horizon, GWP100.Horizon),
		}
	}

	return RunConfig{
		Mode:        Mode(req.Mode),
		HorizonDays: req.HorizonDays,
		GWP:         gwp,
		Params:      req.Parameters,
	}, nil
}

// SimulateHandler serves simulation runs over HTTP. Identical request
// bodies within the cache TTL are served from memory since a run is a
// pure function of its config.
type SimulateHandler struct {
	simulator *Simulator
	results   *cache.Memory
}

func NewSimulateHandler(ctx context.Context, simulator *Simulator) *SimulateHandler {
	return &SimulateHandler{
		simulator: simulator,
		results:   cache.NewMemory(ctx, time.Minute),
	}
}

func (handler *SimulateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req SimulateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	digest := sha256.Sum256(body)
	v, err := handler.results.GetOrSet(r.Context(), hex.EncodeToString(digest[:]), func(ctx context.Context) (any, error) {
		cfg, err := req.runConfig()
		if err != nil {
			return nil, err
		}

		result, err := handler.simulator.Run(cfg)
		if err != nil {
			return nil, err
		}

		if !req.IncludeDaily {
			return result.Summary(), nil
		}
		return result, nil
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode simulation result", "err", err)
		return
	}
	slog.Info("simulation served", "duration", time.Since(start))
}

// CompareHandler runs the same configuration for several daily waste
// rates and returns one summary per rate.
type CompareHandler struct {
	simulator *Simulator
}

func NewCompareHandler(simulator *Simulator) *CompareHandler {
	return &CompareHandler{simulator: simulator}
}

func (handler *CompareHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req SimulateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.Rates) == 0 {
		writeError(w, &InvalidInputError{Param: "rates", Constraint: "a non-empty list of daily waste rates"})
		return
	}

	cfg, err := req.runConfig()
	if err != nil {
		writeError(w, err)
		return
	}

	comparisons, err := CompareRates(r.Context(), handler.simulator, cfg, req.Rates)
	if err != nil {
		writeError(w, err)
		return
	}

	for i := range comparisons {
		comparisons[i].Result = comparisons[i].Result.Summary()
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(comparisons); err != nil {
		slog.Error("failed to encode comparison result", "err", err)
	}
}

// HealthzHandler reports process liveness.
func HealthzHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var invalidInput *InvalidInputError
	var configuration *ConfigurationError
	switch {
	case errors.As(err, &invalidInput):
		status = http.StatusBadRequest
	case errors.As(err, &configuration):
		status = http.StatusBadRequest
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
