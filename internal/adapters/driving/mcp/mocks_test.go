package mcp

import (
	"context"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driving"
)

// mockAssistantService is a mock implementation of driving.AssistantService.
type mockAssistantService struct {
	answer domain.CompositeAnswer
	err    error
}

func (m *mockAssistantService) Ask(
	_ context.Context,
	session *domain.Session,
	query string,
) (domain.CompositeAnswer, error) {
	if m.err != nil {
		return domain.CompositeAnswer{}, m.err
	}
	session.Append(query, m.answer)
	return m.answer, nil
}

// mockWeatherAdvisor is a mock implementation of driving.WeatherAdvisor.
type mockWeatherAdvisor struct {
	advisory driving.WeatherAdvisory
	err      error
}

func (m *mockWeatherAdvisor) Advise(_ context.Context, _ string) (driving.WeatherAdvisory, error) {
	return m.advisory, m.err
}

// mockProfitCalculator is a mock implementation of driving.ProfitCalculator.
type mockProfitCalculator struct {
	profit float64
	err    error
}

func (m *mockProfitCalculator) Calculate(_ domain.ProfitInput) (float64, error) {
	return m.profit, m.err
}

// mockPriceService is a mock implementation of driving.PriceService.
type mockPriceService struct {
	tables []domain.CityPrices
	err    error
}

func (m *mockPriceService) List(_ context.Context) ([]domain.CityPrices, error) {
	return m.tables, m.err
}
