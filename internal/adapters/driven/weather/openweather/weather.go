// Package openweather adapts the OpenWeatherMap current-weather API to
// the weather port.
package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driven"
)

// DefaultBaseURL is the OpenWeatherMap API endpoint.
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

const defaultTimeout = 15 * time.Second

// Ensure WeatherService implements the interface.
var _ driven.WeatherService = (*WeatherService)(nil)

// Config holds configuration for the OpenWeatherMap client.
type Config struct {
	// APIKey authenticates requests.
	APIKey string

	// BaseURL overrides the API endpoint (for testing).
	BaseURL string

	// Timeout for HTTP requests.
	Timeout time.Duration
}

// WeatherService implements driven.WeatherService against OpenWeatherMap.
// Units are metric: Celsius and metres per second.
type WeatherService struct {
	config Config
	client *http.Client
}

// NewWeatherService creates an OpenWeatherMap client.
func NewWeatherService(config Config) (*WeatherService, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("openweather: %w: API key required", domain.ErrInvalidInput)
	}
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = defaultTimeout
	}

	return &WeatherService{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}, nil
}

type currentWeatherResponse struct {
	Name    string `json:"name"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Current returns the current weather for the city.
func (s *WeatherService) Current(ctx context.Context, city string) (*domain.WeatherReport, error) {
	if city == "" {
		return nil, fmt.Errorf("openweather: %w: empty city", domain.ErrInvalidInput)
	}

	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", s.config.APIKey)
	query.Set("units", "metric")

	endpoint := fmt.Sprintf("%s/weather?%s", s.config.BaseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("weather request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var parsed currentWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode weather response: %w", err)
	}

	report := &domain.WeatherReport{
		City:        parsed.Name,
		Temperature: parsed.Main.Temp,
		Humidity:    parsed.Main.Humidity,
		WindSpeed:   parsed.Wind.Speed,
		Available:   true,
	}
	if report.City == "" {
		report.City = city
	}
	if len(parsed.Weather) > 0 {
		report.Description = parsed.Weather[0].Description
	}
	return report, nil
}
