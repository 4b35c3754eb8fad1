package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
)

var pricesJSON bool

var pricesCmd = &cobra.Command{
	Use:   "prices",
	Short: "Show today's egg prices",
	Long:  `Fetches the current per-city egg pricing tables from the rates page.`,
	RunE:  runPrices,
}

func init() {
	pricesCmd.Flags().BoolVar(&pricesJSON, "json", false, "output tables as JSON")
	rootCmd.AddCommand(pricesCmd)
}

func runPrices(cmd *cobra.Command, _ []string) error {
	if priceService == nil {
		return errors.New("price service not configured")
	}

	tables, err := priceService.List(context.Background())
	if err != nil {
		return fmt.Errorf("fetching prices: %w", err)
	}

	if pricesJSON {
		return outputPricesJSON(cmd, tables)
	}

	if len(tables) == 0 {
		cmd.Println("No price tables found.")
		return nil
	}

	for _, city := range tables {
		cmd.Printf("%s:\n", city.City)
		for _, entry := range city.Entries {
			cmd.Printf("  %-20s %s\n", entry.Quantity, entry.Price)
		}
		cmd.Println()
	}

	return nil
}

func outputPricesJSON(cmd *cobra.Command, tables []domain.CityPrices) error {
	data, err := json.MarshalIndent(tables, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal prices: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
