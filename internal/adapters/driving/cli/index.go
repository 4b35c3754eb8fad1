package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
	"github.com/eggspert-labs/eggspert-cli/internal/logger"
	"github.com/eggspert-labs/eggspert-cli/internal/watcher"
)

var indexWatch bool

var indexCmd = &cobra.Command{
	Use:   "index [paths...]",
	Short: "Build the knowledge-base index",
	Long: `Ingests the given documents into the similarity index: extract text,
split into chunks, embed, and persist. Re-running against unchanged
documents is idempotent.

With --watch the command keeps running and re-indexes files as they
change under the given directories.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIndex,
}

var indexStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show index status",
	RunE:  runIndexStatus,
}

func init() {
	indexCmd.Flags().BoolVarP(&indexWatch, "watch", "w", false, "re-index on file changes")
	indexCmd.AddCommand(indexStatusCmd)
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	ctx := cmd.Context()

	summary, err := indexService.BuildIndex(ctx, args)
	if err != nil {
		return fmt.Errorf("index failed: %w", err)
	}

	cmd.Printf("Indexed %d documents (%d chunks) with %s\n",
		summary.Documents, summary.Chunks, summary.EmbeddingModel)

	if !indexWatch {
		return nil
	}

	return watchAndReindex(ctx, cmd, args)
}

// watchAndReindex blocks, rebuilding the index whenever a watched file
// changes. Only directory arguments are watched.
func watchAndReindex(ctx context.Context, cmd *cobra.Command, paths []string) error {
	watchers := make([]*watcher.Watcher, 0, len(paths))
	defer func() {
		for _, w := range watchers {
			if err := w.Close(); err != nil {
				logger.Warn("Closing watcher: %v", err)
			}
		}
	}()

	changes := make(chan watcher.Change, 64)

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			continue
		}
		w, err := watcher.New(path)
		if err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		w.Start()
		watchers = append(watchers, w)

		go func(w *watcher.Watcher) {
			for change := range w.Changes() {
				changes <- change
			}
		}(w)
	}

	if len(watchers) == 0 {
		return errors.New("--watch requires at least one directory argument")
	}

	cmd.Println("Watching for changes. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-sigCh:
			cmd.Println("Stopping watch.")
			return nil
		case change := <-changes:
			logger.Info("Change detected: %s %s", change.Type, change.Path)
			summary, err := indexService.BuildIndex(ctx, paths)
			if err != nil {
				logger.Warn("Re-index failed: %v", err)
				continue
			}
			cmd.Printf("Re-indexed: %d documents, %d chunks\n",
				summary.Documents, summary.Chunks)
		}
	}
}

func runIndexStatus(cmd *cobra.Command, _ []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	summary, err := indexService.Status(context.Background())
	if err != nil {
		if errors.Is(err, domain.ErrIndexUnavailable) {
			cmd.Println("No index built yet. Run 'eggspert index <paths>' first.")
			return nil
		}
		return fmt.Errorf("index status: %w", err)
	}

	cmd.Printf("Documents:       %d\n", summary.Documents)
	cmd.Printf("Chunks:          %d\n", summary.Chunks)
	cmd.Printf("Embedding model: %s\n", summary.EmbeddingModel)
	return nil
}
