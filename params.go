package wastecarbonsim

// Parameters describes the waste stream and its environment for one
// simulation run. All fields are validated before any computation, see
// Validate.
type Parameters struct {
	// DailyWasteKg is the waste mass entering the process, in kg. In
	// continuous mode it applies every day, in batch mode only on day one.
	DailyWasteKg float64 `json:"daily_waste_kg" mapstructure:"daily_waste_kg"`
	// MoistureFraction of the waste, 0 to 1.
	MoistureFraction float64 `json:"moisture_fraction" mapstructure:"moisture_fraction"`
	// TemperatureC is the mean ambient temperature in degrees Celsius.
	TemperatureC float64 `json:"temperature_c" mapstructure:"temperature_c"`
	// DegradableCarbonFraction is the DOC fraction of the waste, 0 to 1.
	DegradableCarbonFraction float64 `json:"degradable_carbon_fraction" mapstructure:"degradable_carbon_fraction"`
	// DecayRatePerYear is the first order landfill decay constant k, yr⁻¹.
	DecayRatePerYear float64 `json:"decay_rate_per_year" mapstructure:"decay_rate_per_year"`
	// ExposedMassKg is the waste mass exposed at the landfill working
	// front each day.
	ExposedMassKg float64 `json:"exposed_mass_kg" mapstructure:"exposed_mass_kg"`
	// ExposedHoursPerDay the waste stays uncovered, 0 to 24.
	ExposedHoursPerDay float64 `json:"exposed_hours_per_day" mapstructure:"exposed_hours_per_day"`
}

// Validate checks every parameter against its documented physical domain
// and returns an InvalidInputError for the first violation found. Out of
// range values are rejected, never clamped.
func (p Parameters) Validate() error {
	if p.DailyWasteKg <= 0 {
		return &InvalidInputError{Param: "daily_waste_kg", Value: p.DailyWasteKg, Constraint: "> 0"}
	}
	if p.MoistureFraction < 0 || p.MoistureFraction > 1 {
		return &InvalidInputError{Param: "moisture_fraction", Value: p.MoistureFraction, Constraint: "in [0,1]"}
	}
	if p.TemperatureC <= 0 {
		return &InvalidInputError{Param: "temperature_c", Value: p.TemperatureC, Constraint: "> 0"}
	}
	if p.DegradableCarbonFraction <= 0 || p.DegradableCarbonFraction > 1 {
		return &InvalidInputError{Param: "degradable_carbon_fraction", Value: p.DegradableCarbonFraction, Constraint: "in (0,1]"}
	}
	if p.DecayRatePerYear <= 0 {
		return &InvalidInputError{Param: "decay_rate_per_year", Value: p.DecayRatePerYear, Constraint: "> 0"}
	}
	if p.ExposedMassKg <= 0 {
		return &InvalidInputError{Param: "exposed_mass_kg", Value: p.ExposedMassKg, Constraint: "> 0"}
	}
	if p.ExposedHoursPerDay < 0 || p.ExposedHoursPerDay > 24 {
		return &InvalidInputError{Param: "exposed_hours_per_day", Value: p.ExposedHoursPerDay, Constraint: "in [0,24]"}
	}
	return nil
}
