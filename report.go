package wastecarbonsim

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteDailyCSV writes the day indexed result table: per scenario gas
// masses, CO2eq daily and cumulative values and the cumulative avoided
// emissions.
func WriteDailyCSV(w io.Writer, result *Result) error {
	out := csv.NewWriter(w)

	header := []string{"date"}
	for _, scenarioResult := range result.Scenarios {
		name := string(scenarioResult.Scenario)
		header = append(header,
			name+"_ch4_kg",
			name+"_n2o_kg",
			name+"_co2eq_kg",
			name+"_co2eq_cumulative_kg",
			name+"_avoided_co2eq_cumulative_kg",
		)
	}
	if err := out.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for day, date := range result.Dates {
		row := []string{date.Format("2006-01-02")}
		for _, scenarioResult := range result.Scenarios {
			row = append(row,
				formatFloat(scenarioResult.DailyGasKg[CH4][day]),
				formatFloat(scenarioResult.DailyGasKg[N2O][day]),
				formatFloat(scenarioResult.DailyCO2eqKg[day]),
				formatFloat(scenarioResult.CumulativeCO2eqKg[day]),
				formatFloat(scenarioResult.AvoidedCO2eqKg[day]),
			)
		}
		if err := out.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	out.Flush()
	return out.Error()
}

// WriteAnnualCSV writes the year keyed rollup table.
func WriteAnnualCSV(w io.Writer, result *Result) error {
	out := csv.NewWriter(w)

	header := []string{"year"}
	for _, scenarioResult := range result.Scenarios {
		name := string(scenarioResult.Scenario)
		header = append(header, name+"_co2eq_kg", name+"_avoided_co2eq_kg")
	}
	if err := out.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	if len(result.Scenarios) == 0 {
		out.Flush()
		return out.Error()
	}

	for i, annual := range result.Scenarios[0].AnnualCO2eqKg {
		row := []string{strconv.Itoa(annual.Year)}
		for _, scenarioResult := range result.Scenarios {
			row = append(row,
				formatFloat(scenarioResult.AnnualCO2eqKg[i].Total),
				formatFloat(scenarioResult.AnnualAvoided[i].Total),
			)
		}
		if err := out.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	out.Flush()
	return out.Error()
}
