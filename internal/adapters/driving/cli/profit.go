package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
)

var profitInput domain.ProfitInput

var profitCmd = &cobra.Command{
	Use:   "profit",
	Short: "Calculate farm profit",
	Long: `Computes profit as total sales minus total costs.

All amounts are plain numbers in your local currency. Negative amounts
are rejected.`,
	RunE: runProfit,
}

func init() {
	profitCmd.Flags().Float64Var(&profitInput.FeedCost, "feed", 0, "feed cost")
	profitCmd.Flags().Float64Var(&profitInput.MedicineCost, "medicine", 0, "medicine cost")
	profitCmd.Flags().Float64Var(&profitInput.LaborCost, "labor", 0, "labor cost")
	profitCmd.Flags().Float64Var(&profitInput.EggSales, "eggs", 0, "egg sales revenue")
	profitCmd.Flags().Float64Var(&profitInput.MeatSales, "meat", 0, "meat sales revenue")
	rootCmd.AddCommand(profitCmd)
}

func runProfit(cmd *cobra.Command, _ []string) error {
	if profitCalculator == nil {
		return errors.New("profit calculator not configured")
	}

	profit, err := profitCalculator.Calculate(profitInput)
	if err != nil {
		return fmt.Errorf("profit calculation failed: %w", err)
	}

	costs := profitInput.FeedCost + profitInput.MedicineCost + profitInput.LaborCost
	sales := profitInput.EggSales + profitInput.MeatSales

	cmd.Printf("Total sales: %.2f\n", sales)
	cmd.Printf("Total costs: %.2f\n", costs)
	if profit >= 0 {
		cmd.Printf("Profit:      %.2f\n", profit)
	} else {
		cmd.Printf("Loss:        %.2f\n", -profit)
	}

	return nil
}
