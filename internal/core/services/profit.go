package services

import (
	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driving"
)

var _ driving.ProfitCalculator = (*ProfitService)(nil)

// ProfitService validates and evaluates farm profit figures.
type ProfitService struct{}

// NewProfitService creates the profit calculator.
func NewProfitService() *ProfitService {
	return &ProfitService{}
}

// Calculate validates the input and returns net profit.
func (s *ProfitService) Calculate(in domain.ProfitInput) (float64, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}
	return in.Profit(), nil
}
