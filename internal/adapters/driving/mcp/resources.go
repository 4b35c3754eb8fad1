package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for Eggspert resources.
const uriScheme = "eggspert://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for today's egg prices.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "prices",
		Name:        "egg-prices",
		Description: "Current per-city egg pricing tables",
		MIMEType:    "application/json",
	}, s.handlePricesResource)
}

// handlePricesResource returns the current pricing tables as JSON.
func (s *Server) handlePricesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Prices == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	tables, err := s.ports.Prices.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing prices: %w", err)
	}

	type entryInfo struct {
		Quantity string `json:"quantity"`
		Price    string `json:"price"`
	}
	type cityInfo struct {
		City    string      `json:"city"`
		Entries []entryInfo `json:"entries"`
	}

	infos := make([]cityInfo, len(tables))
	for i, city := range tables {
		entries := make([]entryInfo, len(city.Entries))
		for j, e := range city.Entries {
			entries[j] = entryInfo{Quantity: e.Quantity, Price: e.Price}
		}
		infos[i] = cityInfo{City: city.City, Entries: entries}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling prices: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
