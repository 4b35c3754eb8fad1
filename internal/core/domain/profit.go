package domain

import "fmt"

// ProfitInput holds the figures for one farm profit calculation.
// All values are in the same currency unit.
type ProfitInput struct {
	FeedCost     float64
	MedicineCost float64
	LaborCost    float64
	EggSales     float64
	MeatSales    float64
}

// Validate rejects negative inputs.
func (p *ProfitInput) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"feed cost", p.FeedCost},
		{"medicine cost", p.MedicineCost},
		{"labor cost", p.LaborCost},
		{"egg sales", p.EggSales},
		{"meat sales", p.MeatSales},
	}
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidInput, f.name)
		}
	}
	return nil
}

// Profit computes (egg sales + meat sales) - (feed + medicine + labor).
func (p *ProfitInput) Profit() float64 {
	return (p.EggSales + p.MeatSales) - (p.FeedCost + p.MedicineCost + p.LaborCost)
}
