package cli

import (
	"context"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driving"
)

// Field-based mocks for the driving ports the commands use.

type mockAssistantService struct {
	answer domain.CompositeAnswer
	err    error
}

func (m *mockAssistantService) Ask(_ context.Context, session *domain.Session, query string) (domain.CompositeAnswer, error) {
	if m.err != nil {
		return domain.CompositeAnswer{}, m.err
	}
	session.Append(query, m.answer)
	return m.answer, nil
}

type mockIndexService struct {
	summary  driving.IndexSummary
	buildErr error
	statErr  error
}

func (m *mockIndexService) BuildIndex(_ context.Context, _ []string) (driving.IndexSummary, error) {
	return m.summary, m.buildErr
}

func (m *mockIndexService) Status(_ context.Context) (driving.IndexSummary, error) {
	return m.summary, m.statErr
}

type mockWeatherAdvisor struct {
	advisory driving.WeatherAdvisory
	err      error
}

func (m *mockWeatherAdvisor) Advise(_ context.Context, _ string) (driving.WeatherAdvisory, error) {
	return m.advisory, m.err
}

type mockProfitCalculator struct {
	profit float64
	err    error
}

func (m *mockProfitCalculator) Calculate(_ domain.ProfitInput) (float64, error) {
	return m.profit, m.err
}

type mockPriceService struct {
	tables []domain.CityPrices
	err    error
}

func (m *mockPriceService) List(_ context.Context) ([]domain.CityPrices, error) {
	return m.tables, m.err
}

type mockPriceMonitor struct {
	changed bool
	err     error
}

func (m *mockPriceMonitor) Check(_ context.Context) (bool, error) {
	return m.changed, m.err
}

// setupTestServices wires mock services into the package-level vars and
// returns a cleanup that restores the previous state.
func setupTestServices() func() {
	oldAssistant := assistantService
	oldIndex := indexService
	oldWeather := weatherAdvisor
	oldProfit := profitCalculator
	oldPrices := priceService
	oldMonitor := priceMonitor

	assistantService = &mockAssistantService{
		answer: domain.CompositeAnswer{Knowledge: "Keep layers on 16% protein feed."},
	}
	indexService = &mockIndexService{
		summary: driving.IndexSummary{Documents: 2, Chunks: 8, EmbeddingModel: "nomic-embed-text"},
	}
	weatherAdvisor = &mockWeatherAdvisor{
		advisory: driving.WeatherAdvisory{
			Report: domain.WeatherReport{
				City:        "Lahore",
				Temperature: 34,
				Humidity:    40,
				WindSpeed:   2,
				Description: "clear sky",
				Available:   true,
			},
			RealFeel:   41.8,
			Advisories: []string{"Provide extra shade and cool water."},
		},
	}
	profitCalculator = &mockProfitCalculator{profit: 1500}
	priceService = &mockPriceService{
		tables: []domain.CityPrices{
			{City: "Lahore", Entries: []domain.PriceEntry{{Quantity: "1 Dozen", Price: "Rs. 340"}}},
		},
	}
	priceMonitor = &mockPriceMonitor{}

	return func() {
		assistantService = oldAssistant
		indexService = oldIndex
		weatherAdvisor = oldWeather
		profitCalculator = oldProfit
		priceService = oldPrices
		priceMonitor = oldMonitor
	}
}
