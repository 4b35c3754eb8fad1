package cli

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/eggspert-labs/eggspert-cli/internal/adapters/driving/tui"
	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driving"
)

// ChatConfig holds configuration for the chat command.
type ChatConfig struct {
	AssistantService driving.AssistantService
	IndexService     driving.IndexService
	Scheduler        driving.Scheduler
	SchedulerConfig  domain.SchedulerConfig
}

// chatConfig holds the current chat configuration.
var chatConfig *ChatConfig

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Launch the interactive chat UI",
	Long: `Launch the interactive terminal chat interface.

Questions are answered through the full pipeline with conversation
history kept for the session.

Controls:
  Enter - Ask
  Esc   - Quit`,
	RunE: runChat,
}

// SetChatConfig sets the configuration for the chat command.
func SetChatConfig(config *ChatConfig) {
	chatConfig = config
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	// Panic recovery so terminal corruption comes with a stack trace.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in chat UI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	// The chat session is long-running, so background tasks run here.
	if chatConfig != nil && chatConfig.SchedulerConfig.Enabled && chatConfig.Scheduler != nil {
		schedulerCtx, schedulerCancel := context.WithCancel(context.Background())
		defer schedulerCancel()

		go func() {
			if err := chatConfig.Scheduler.Start(schedulerCtx); err != nil {
				fmt.Fprintf(os.Stderr, "scheduler stopped: %v\n", err)
			}
		}()

		defer func() {
			if err := chatConfig.Scheduler.Stop(); err != nil {
				fmt.Fprintf(os.Stderr, "scheduler stop error: %v\n", err)
			}
		}()
	}

	ports := &tui.Ports{}
	if chatConfig != nil {
		ports.Assistant = chatConfig.AssistantService
		ports.Index = chatConfig.IndexService
	} else {
		ports.Assistant = assistantService
		ports.Index = indexService
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create chat UI: %w", err)
	}

	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("chat UI error: %w", err)
	}

	return nil
}
