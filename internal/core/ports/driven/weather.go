package driven

import (
	"context"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
)

// WeatherService fetches current conditions for a city.
type WeatherService interface {
	// Current returns the current weather for the city.
	// Network or API failure is an error; the advisory service converts
	// it into the sentinel "unavailable" report.
	Current(ctx context.Context, city string) (*domain.WeatherReport, error)
}
