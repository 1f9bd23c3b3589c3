package wastecarbonsim

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// RateComparison pairs one daily waste rate with its simulation result.
type RateComparison struct {
	DailyWasteKg float64 `json:"daily_waste_kg"`
	Result       *Result `json:"result"`
}

// CompareRates runs the same configuration for several daily waste rates
// concurrently. Each run builds its own config so no state is shared. The
// first failing run cancels the rest.
func CompareRates(ctx context.Context, simulator *Simulator, base RunConfig, dailyWasteKg []float64) ([]RateComparison, error) {
	comparisons := make([]RateComparison, len(dailyWasteKg))

	errg, errgctx := errgroup.WithContext(ctx)
	errg.SetLimit(5)
	for i, rate := range dailyWasteKg {
		i, rate := i, rate
		errg.Go(func() error {
			if err := errgctx.Err(); err != nil {
				return err
			}

			cfg := base
			cfg.Params.DailyWasteKg = rate

			result, err := simulator.Run(cfg)
			if err != nil {
				return err
			}
			comparisons[i] = RateComparison{DailyWasteKg: rate, Result: result}
			return nil
		})
	}

	if err := errg.Wait(); err != nil {
		return nil, err
	}
	return comparisons, nil
}
