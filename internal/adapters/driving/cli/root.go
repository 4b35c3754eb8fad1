// Package cli implements the command-line interface for Eggspert.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driving"
	"github.com/eggspert-labs/eggspert-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// verbose enables debug logging across all commands.
var verbose bool

// Services injected by the composition root. Commands nil-check the
// services they use so the package stays testable without full wiring.
var (
	assistantService driving.AssistantService
	indexService     driving.IndexService
	weatherAdvisor   driving.WeatherAdvisor
	labAnalyser      driving.LabReportAnalyser
	diseaseDiagnoser driving.DiseaseDiagnoser
	profitCalculator driving.ProfitCalculator
	priceService     driving.PriceService
	priceMonitor     driving.PriceMonitor
)

// Services bundles everything the CLI layer needs from the core.
type Services struct {
	Assistant driving.AssistantService
	Index     driving.IndexService
	Weather   driving.WeatherAdvisor
	Lab       driving.LabReportAnalyser
	Diagnosis driving.DiseaseDiagnoser
	Profit    driving.ProfitCalculator
	Prices    driving.PriceService
	Monitor   driving.PriceMonitor
}

// SetServices injects the core services into the command tree.
func SetServices(s *Services) {
	if s == nil {
		return
	}
	assistantService = s.Assistant
	indexService = s.Index
	weatherAdvisor = s.Weather
	labAnalyser = s.Lab
	diseaseDiagnoser = s.Diagnosis
	profitCalculator = s.Profit
	priceService = s.Prices
	priceMonitor = s.Monitor
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

var rootCmd = &cobra.Command{
	Use:   "eggspert",
	Short: "Poultry farming assistant",
	Long: `Eggspert is a retrieval-augmented assistant for poultry farmers.

Ask husbandry questions against your indexed knowledge base, check
weather advisories, analyse lab reports, diagnose diseases from photos,
calculate farm profit, and track daily egg prices.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
