package services

import (
	"context"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driven"
	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driving"
	"github.com/eggspert-labs/eggspert-cli/internal/logger"
)

// Ensure AdvisoryService implements the interface.
var _ driving.WeatherAdvisor = (*AdvisoryService)(nil)

// AdvisoryService turns current weather into husbandry advisories.
type AdvisoryService struct {
	weather driven.WeatherService
}

// NewAdvisoryService creates the advisory service.
func NewAdvisoryService(weather driven.WeatherService) *AdvisoryService {
	return &AdvisoryService{weather: weather}
}

// Advise fetches current conditions for the city and applies the fixed
// advisory rule set. A backend failure yields the sentinel report plus
// the explanatory advisory rather than an error.
func (s *AdvisoryService) Advise(ctx context.Context, city string) (driving.WeatherAdvisory, error) {
	report, err := s.weather.Current(ctx, city)
	if err != nil {
		logger.Warn("Weather fetch for %q failed: %v", city, err)
		sentinel := domain.WeatherReport{City: city, Available: false}
		return driving.WeatherAdvisory{
			Report:     sentinel,
			Advisories: sentinel.Advisories(),
		}, nil
	}

	return driving.WeatherAdvisory{
		Report:     *report,
		RealFeel:   report.RealFeel(),
		Advisories: report.Advisories(),
	}, nil
}
