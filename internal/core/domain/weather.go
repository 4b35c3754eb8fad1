package domain

import "strings"

// Husbandry advisory thresholds.
const (
	// HeatStressCelsius is the temperature above which heat advisories fire.
	HeatStressCelsius = 35.0

	// ColdStressCelsius is the temperature below which cold advisories fire.
	ColdStressCelsius = 15.0

	// HighWindMetresPerSecond is the wind speed above which wind advisories fire.
	HighWindMetresPerSecond = 20.0
)

// Advisory messages.
const (
	AdvisoryHeatStress  = "Extreme heat detected. Provide electrolytes and ensure shade for the flock."
	AdvisoryColdStress  = "Cold alert. Use heaters and deep bedding to keep birds warm."
	AdvisoryHighWind    = "Strong winds detected. Secure poultry houses properly."
	AdvisoryRain        = "Rain alert. Keep sheds dry and ensure proper drainage."
	AdvisoryUnavailable = "Unable to fetch weather data."
)

// WeatherReport is a current-conditions snapshot for a city.
// When Available is false the numeric fields are meaningless; callers get
// the sentinel report plus an explanatory advisory instead of an error.
type WeatherReport struct {
	City        string
	Temperature float64 // degrees Celsius
	Humidity    float64 // percent
	WindSpeed   float64 // metres per second
	Description string
	Available   bool
}

// RealFeel derives the heuristic adjusted temperature combining humidity
// and wind speed: temp + 0.33*humidity - 0.7*wind - 4.
func (r *WeatherReport) RealFeel() float64 {
	return r.Temperature + 0.33*r.Humidity - 0.7*r.WindSpeed - 4
}

// Advisories applies the fixed husbandry rule set to the report.
// The returned list is never empty for an unavailable report.
func (r *WeatherReport) Advisories() []string {
	if !r.Available {
		return []string{AdvisoryUnavailable}
	}

	var out []string
	if r.Temperature > HeatStressCelsius {
		out = append(out, AdvisoryHeatStress)
	} else if r.Temperature < ColdStressCelsius {
		out = append(out, AdvisoryColdStress)
	}
	if r.WindSpeed > HighWindMetresPerSecond {
		out = append(out, AdvisoryHighWind)
	}
	if strings.Contains(strings.ToLower(r.Description), "rain") {
		out = append(out, AdvisoryRain)
	}
	return out
}
