package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
)

var labCmd = &cobra.Command{
	Use:   "lab [file]",
	Short: "Analyse a poultry lab report",
	Long: `Extracts text from a lab report (PDF, image, or text) and returns a
veterinary interpretation of the findings.`,
	Args: cobra.ExactArgs(1),
	RunE: runLab,
}

func init() {
	rootCmd.AddCommand(labCmd)
}

func runLab(cmd *cobra.Command, args []string) error {
	if labAnalyser == nil {
		return errors.New("lab analysis service not configured")
	}

	file, err := readUpload(args[0])
	if err != nil {
		return err
	}

	analysis, err := labAnalyser.Analyse(context.Background(), file)
	if err != nil {
		return fmt.Errorf("lab analysis failed: %w", err)
	}

	cmd.Println(analysis)
	return nil
}

// readUpload loads a local file into the upload shape the tool
// services consume.
func readUpload(path string) (*domain.UploadedFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return &domain.UploadedFile{
		Name:    filepath.Base(path),
		Content: content,
	}, nil
}
