package services

import (
	"context"
	"fmt"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driven"
	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driving"
)

var _ driving.PriceService = (*PriceListing)(nil)

// PriceListing fetches current per-city egg pricing tables.
type PriceListing struct {
	source driven.PriceSource
}

// NewPriceListing creates the price listing service.
func NewPriceListing(source driven.PriceSource) *PriceListing {
	return &PriceListing{source: source}
}

// List returns the current pricing tables.
func (s *PriceListing) List(ctx context.Context) ([]domain.CityPrices, error) {
	prices, err := s.source.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching prices: %w", err)
	}
	return prices, nil
}
