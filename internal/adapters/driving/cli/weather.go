package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var weatherCmd = &cobra.Command{
	Use:   "weather [city]",
	Short: "Weather-based husbandry advisories",
	Long: `Fetches current conditions for a city and applies the fixed poultry
husbandry rules: heat stress, cold stress, humidity, and wind.`,
	Args: cobra.ExactArgs(1),
	RunE: runWeather,
}

func init() {
	rootCmd.AddCommand(weatherCmd)
}

func runWeather(cmd *cobra.Command, args []string) error {
	city := args[0]

	if weatherAdvisor == nil {
		return errors.New("weather advisor not configured")
	}

	advisory, err := weatherAdvisor.Advise(context.Background(), city)
	if err != nil {
		return fmt.Errorf("weather advisory failed: %w", err)
	}

	if advisory.Report.Available {
		cmd.Printf("Weather in %s: %s\n", advisory.Report.City, advisory.Report.Description)
		cmd.Printf("  Temperature: %.1f°C (feels like %.1f°C)\n",
			advisory.Report.Temperature, advisory.RealFeel)
		cmd.Printf("  Humidity:    %.0f%%\n", advisory.Report.Humidity)
		cmd.Printf("  Wind:        %.1f m/s\n", advisory.Report.WindSpeed)
	} else {
		cmd.Printf("Weather for %s is unavailable.\n", city)
	}

	cmd.Println()
	cmd.Println("Advisories:")
	for _, a := range advisory.Advisories {
		cmd.Printf("  - %s\n", a)
	}

	return nil
}
