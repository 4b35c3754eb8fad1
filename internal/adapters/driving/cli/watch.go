package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
	"github.com/eggspert-labs/eggspert-cli/internal/logger"
)

// MonitorLock guards against concurrent price-monitor instances.
type MonitorLock interface {
	Acquire() error
	Release() error
}

// monitorLock is injected by the composition root alongside the services.
var monitorLock MonitorLock

// SetMonitorLock injects the lock used by the watch command.
func SetMonitorLock(lock MonitorLock) {
	monitorLock = lock
}

var (
	watchInterval time.Duration
	watchOnce     bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Monitor egg prices for changes",
	Long: `Runs the egg price monitor: fetch the pricing page, hash the
normalised tables, and send an email alert when the content changes.

The first run seeds the baseline silently. Only one monitor instance
may run at a time; a lock file enforces this.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 24*time.Hour, "time between checks")
	watchCmd.Flags().BoolVar(&watchOnce, "once", false, "run a single check and exit")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if priceMonitor == nil {
		return errors.New("price monitor not configured")
	}

	if monitorLock != nil {
		if err := monitorLock.Acquire(); err != nil {
			if errors.Is(err, domain.ErrMonitorLocked) {
				return errors.New("another price monitor is already running")
			}
			return fmt.Errorf("acquiring monitor lock: %w", err)
		}
		defer func() {
			if err := monitorLock.Release(); err != nil {
				logger.Warn("Releasing monitor lock: %v", err)
			}
		}()
	}

	ctx := cmd.Context()

	check := func() {
		changed, err := priceMonitor.Check(ctx)
		switch {
		case err != nil:
			logger.Warn("Price check failed: %v", err)
		case changed:
			cmd.Println("Price change detected, alert sent.")
		default:
			cmd.Println("No price change.")
		}
	}

	check()
	if watchOnce {
		return nil
	}

	cmd.Printf("Checking every %s. Press Ctrl+C to stop.\n", watchInterval)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-sigCh:
			cmd.Println("Stopping monitor.")
			return nil
		case <-ticker.C:
			check()
		}
	}
}
