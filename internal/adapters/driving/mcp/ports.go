package mcp

import (
	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Assistant answers poultry questions through the full pipeline.
	Assistant driving.AssistantService

	// Weather produces husbandry advisories for a city.
	Weather driving.WeatherAdvisor

	// Profit computes farm profit from cost and sales figures.
	Profit driving.ProfitCalculator

	// Prices lists the current per-city egg pricing tables.
	Prices driving.PriceService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Assistant == nil {
		return ErrMissingAssistantService
	}
	// Weather, Profit, and Prices are optional; their tools report
	// unavailability when unset.
	return nil
}
