package driving

import (
	"context"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
)

// WeatherAdvisory bundles a weather report with the derived husbandry advice.
type WeatherAdvisory struct {
	// Report is the current-conditions snapshot (sentinel when unavailable).
	Report domain.WeatherReport

	// RealFeel is the heuristic adjusted temperature. Zero when the
	// report is unavailable.
	RealFeel float64

	// Advisories is the fixed-rule advice list, never empty on failure.
	Advisories []string
}

// WeatherAdvisor produces weather-based husbandry advisories for a city.
type WeatherAdvisor interface {
	// Advise fetches current conditions and applies the advisory rules.
	// Backend failure yields the sentinel advisory, not an error.
	Advise(ctx context.Context, city string) (WeatherAdvisory, error)
}

// LabReportAnalyser extracts text from an uploaded lab report and returns
// the veterinary analysis produced by the generation backend.
type LabReportAnalyser interface {
	Analyse(ctx context.Context, file *domain.UploadedFile) (string, error)
}

// DiseaseDiagnoser returns a free-text diagnosis for an uploaded image.
type DiseaseDiagnoser interface {
	Diagnose(ctx context.Context, image *domain.UploadedFile) (string, error)
}

// ProfitCalculator computes farm profit from validated inputs.
type ProfitCalculator interface {
	Calculate(input domain.ProfitInput) (float64, error)
}

// PriceService lists the current per-city pricing tables.
type PriceService interface {
	List(ctx context.Context) ([]domain.CityPrices, error)
}

// PriceMonitor checks the pricing page for content changes and alerts.
type PriceMonitor interface {
	// Check performs one fetch-hash-compare cycle.
	// Returns true when a change was detected and an alert was sent.
	Check(ctx context.Context) (bool, error)
}

// Scheduler runs background tasks on their configured intervals.
type Scheduler interface {
	// Start begins the scheduler loop. Blocks until Stop or ctx cancellation.
	Start(ctx context.Context) error

	// Stop gracefully shuts down the scheduler.
	Stop() error
}
