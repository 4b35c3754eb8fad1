package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driven"
)

// configStore is injected by the composition root.
var configStore driven.ConfigStore

// SetConfigStore injects the configuration store for the config command.
func SetConfigStore(store driven.ConfigStore) {
	configStore = store
}

// wellKnownKeys are the settings printed by `config show`, in display order.
var wellKnownKeys = []string{
	"ai.llm.provider",
	"ai.llm.model",
	"ai.embedding.provider",
	"ai.embedding.model",
	"ai.vision.model",
	"pipeline.gate",
	"pipeline.retrieval_k",
	"pipeline.web_results",
	"pipeline.video_results",
	"weather.city",
	"prices.cities",
	"monitor.email.to",
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and edit configuration values.

Values live in a TOML file under your home directory. Keys use dot
notation, e.g. ai.llm.provider or pipeline.retrieval_k.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Println("Current Configuration")
	cmd.Println("=====================")
	for _, key := range wellKnownKeys {
		value, ok := configStore.Get(key)
		if !ok {
			cmd.Printf("  %-24s (unset)\n", key)
			continue
		}
		cmd.Printf("  %-24s %v\n", key, value)
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	value, ok := configStore.Get(args[0])
	if !ok {
		return fmt.Errorf("key %q is not set", args[0])
	}

	cmd.Printf("%v\n", value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	if err := configStore.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("setting %s: %w", args[0], err)
	}

	cmd.Printf("Set %s\n", args[0])
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Println(configStore.Path())
	return nil
}
