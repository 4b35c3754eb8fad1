package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a poultry farming question",
	Long: `Answers a single question through the full pipeline: relevance gate,
knowledge-base retrieval, generation, and web/video enrichment.

Off-topic questions are declined without touching the backends.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	query := args[0]

	if assistantService == nil {
		return errors.New("assistant service not configured")
	}

	session := domain.NewSession(uuid.NewString())

	answer, err := assistantService.Ask(context.Background(), session, query)
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	cmd.Println(answer.Render())
	return nil
}
