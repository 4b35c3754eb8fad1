package mcp

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
)

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"the poultry farming question to answer"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Answer  string        `json:"answer"`
	Sources []string      `json:"sources,omitempty"`
	Web     []WebOutput   `json:"web,omitempty"`
	Videos  []VideoOutput `json:"videos,omitempty"`
	Refused bool          `json:"refused"`
}

// WebOutput represents a single web enrichment result.
type WebOutput struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet,omitempty"`
}

// VideoOutput represents a single video enrichment result.
type VideoOutput struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Channel string `json:"channel,omitempty"`
}

// WeatherInput is the input schema for the weather advisory tool.
type WeatherInput struct {
	City string `json:"city" jsonschema:"the city to fetch weather advisories for"`
}

// WeatherOutput is the output schema for the weather advisory tool.
type WeatherOutput struct {
	City        string   `json:"city"`
	Description string   `json:"description,omitempty"`
	Temperature float64  `json:"temperature_celsius"`
	RealFeel    float64  `json:"real_feel_celsius"`
	Humidity    float64  `json:"humidity_percent"`
	WindSpeed   float64  `json:"wind_speed_ms"`
	Available   bool     `json:"available"`
	Advisories  []string `json:"advisories"`
}

// ProfitInput is the input schema for the profit tool.
type ProfitInput struct {
	FeedCost     float64 `json:"feed_cost" jsonschema:"total feed cost"`
	MedicineCost float64 `json:"medicine_cost" jsonschema:"total medicine cost"`
	LaborCost    float64 `json:"labor_cost" jsonschema:"total labor cost"`
	EggSales     float64 `json:"egg_sales" jsonschema:"total egg sales revenue"`
	MeatSales    float64 `json:"meat_sales" jsonschema:"total meat sales revenue"`
}

// ProfitOutput is the output schema for the profit tool.
type ProfitOutput struct {
	Profit     float64 `json:"profit"`
	TotalCosts float64 `json:"total_costs"`
	TotalSales float64 `json:"total_sales"`
}

// PricesInput is the input schema for the egg prices tool.
type PricesInput struct{}

// PricesOutput is the output schema for the egg prices tool.
type PricesOutput struct {
	Cities []CityPricesOutput `json:"cities"`
}

// CityPricesOutput represents one city's pricing table.
type CityPricesOutput struct {
	City    string             `json:"city"`
	Entries []PriceEntryOutput `json:"entries"`
}

// PriceEntryOutput represents a single quantity/price row.
type PriceEntryOutput struct {
	Quantity string `json:"quantity"`
	Price    string `json:"price"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Ask a poultry farming question and get an answer with sources",
	}, s.handleAsk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "weather_advisory",
		Description: "Get weather-based poultry husbandry advisories for a city",
	}, s.handleWeather)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "calculate_profit",
		Description: "Calculate farm profit from costs and sales",
	}, s.handleProfit)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "egg_prices",
		Description: "List today's per-city egg prices",
	}, s.handlePrices)
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	session := domain.NewSession(uuid.NewString())

	answer, err := s.ports.Assistant.Ask(ctx, session, input.Question)
	if err != nil {
		return nil, AskOutput{}, err
	}

	output := AskOutput{
		Answer:  answer.Knowledge,
		Refused: answer.Refused,
	}
	if answer.Refused {
		output.Answer = domain.RefusalMessage
		return nil, output, nil
	}

	seen := make(map[string]bool, len(answer.SourceChunks))
	for _, rc := range answer.SourceChunks {
		if rc.Chunk.Source == "" || seen[rc.Chunk.Source] {
			continue
		}
		seen[rc.Chunk.Source] = true
		output.Sources = append(output.Sources, rc.Chunk.Source)
	}

	for _, w := range answer.Web {
		output.Web = append(output.Web, WebOutput{Title: w.Title, URL: w.URL, Snippet: w.Snippet})
	}
	for _, v := range answer.Videos {
		output.Videos = append(output.Videos, VideoOutput{Title: v.Title, URL: v.URL, Channel: v.Channel})
	}

	return nil, output, nil
}

// handleWeather handles the weather advisory tool invocation.
func (s *Server) handleWeather(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input WeatherInput,
) (*mcp.CallToolResult, WeatherOutput, error) {
	if s.ports.Weather == nil {
		return nil, WeatherOutput{}, errors.New("weather advisor not configured")
	}

	advisory, err := s.ports.Weather.Advise(ctx, input.City)
	if err != nil {
		return nil, WeatherOutput{}, err
	}

	return nil, WeatherOutput{
		City:        advisory.Report.City,
		Description: advisory.Report.Description,
		Temperature: advisory.Report.Temperature,
		RealFeel:    advisory.RealFeel,
		Humidity:    advisory.Report.Humidity,
		WindSpeed:   advisory.Report.WindSpeed,
		Available:   advisory.Report.Available,
		Advisories:  advisory.Advisories,
	}, nil
}

// handleProfit handles the profit tool invocation.
func (s *Server) handleProfit(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ProfitInput,
) (*mcp.CallToolResult, ProfitOutput, error) {
	if s.ports.Profit == nil {
		return nil, ProfitOutput{}, errors.New("profit calculator not configured")
	}

	in := domain.ProfitInput{
		FeedCost:     input.FeedCost,
		MedicineCost: input.MedicineCost,
		LaborCost:    input.LaborCost,
		EggSales:     input.EggSales,
		MeatSales:    input.MeatSales,
	}

	profit, err := s.ports.Profit.Calculate(in)
	if err != nil {
		return nil, ProfitOutput{}, err
	}

	return nil, ProfitOutput{
		Profit:     profit,
		TotalCosts: in.FeedCost + in.MedicineCost + in.LaborCost,
		TotalSales: in.EggSales + in.MeatSales,
	}, nil
}

// handlePrices handles the egg prices tool invocation.
func (s *Server) handlePrices(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ PricesInput,
) (*mcp.CallToolResult, PricesOutput, error) {
	if s.ports.Prices == nil {
		return nil, PricesOutput{}, errors.New("price service not configured")
	}

	tables, err := s.ports.Prices.List(ctx)
	if err != nil {
		return nil, PricesOutput{}, err
	}

	output := PricesOutput{Cities: make([]CityPricesOutput, len(tables))}
	for i, city := range tables {
		entries := make([]PriceEntryOutput, len(city.Entries))
		for j, e := range city.Entries {
			entries[j] = PriceEntryOutput{Quantity: e.Quantity, Price: e.Price}
		}
		output.Cities[i] = CityPricesOutput{City: city.City, Entries: entries}
	}

	return nil, output, nil
}
