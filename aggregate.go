package wastecarbonsim

import (
	"time"

	"github.com/loopvinyl/waste-carbon-simulator/internal/must"
)

// ToCO2eq converts a gas mass series into its CO2 equivalent by the GWP
// factor of the gas.
func ToCO2eq(series Series, gwpFactor float64) Series {
	return series.Scaled(gwpFactor)
}

// Avoided is the cumulative emission delta of a scenario against the
// baseline. Values may legitimately go negative on days where a scenario
// emits more than the baseline and are never clamped.
func Avoided(baselineCumulative, scenarioCumulative Series) Series {
	return baselineCumulative.Minus(scenarioCumulative)
}

// DateAxis generates one calendar date per simulation day.
func DateAxis(start time.Time, days int) []time.Time {
	dates := make([]time.Time, days)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i)
	}
	return dates
}

// AnnualTotal is one row of the annual rollup table.
type AnnualTotal struct {
	Year  int     `json:"year"`
	Total float64 `json:"total"`
}

// Annualize groups a daily series by the calendar year of its date axis
// and sums, returning one total per year in chronological order.
func Annualize(series Series, dates []time.Time) []AnnualTotal {
	must.Assert(len(series) == len(dates), "series and date axis lengths differ")

	totals := make([]AnnualTotal, 0)
	for i, v := range series {
		year := dates[i].Year()
		if len(totals) == 0 || totals[len(totals)-1].Year != year {
			totals = append(totals, AnnualTotal{Year: year})
		}
		totals[len(totals)-1].Total += v
	}
	return totals
}
