package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose [image]",
	Short: "Diagnose poultry disease from a photo",
	Long: `Sends a photo of an affected bird to the vision backend and returns a
probable diagnosis with treatment and prevention notes.`,
	Args: cobra.ExactArgs(1),
	RunE: runDiagnose,
}

func init() {
	rootCmd.AddCommand(diagnoseCmd)
}

func runDiagnose(cmd *cobra.Command, args []string) error {
	if diseaseDiagnoser == nil {
		return errors.New("diagnosis service not configured")
	}

	image, err := readUpload(args[0])
	if err != nil {
		return err
	}

	diagnosis, err := diseaseDiagnoser.Diagnose(context.Background(), image)
	if err != nil {
		return fmt.Errorf("diagnosis failed: %w", err)
	}

	cmd.Println(diagnosis)
	return nil
}
