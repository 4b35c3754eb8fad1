package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driven"
	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driving"
	"github.com/eggspert-labs/eggspert-cli/internal/logger"
)

// watchKey identifies the price-page watch in the monitor state store.
const watchKey = "egg-prices"

var _ driving.PriceMonitor = (*PriceMonitorService)(nil)

// PriceMonitorService watches the pricing page for content changes and
// sends an alert when the normalised table content differs from the last
// observed state.
type PriceMonitorService struct {
	source   driven.PriceSource
	state    driven.MonitorStateStore
	notifier driven.Notifier
}

// NewPriceMonitorService creates the price change monitor.
func NewPriceMonitorService(source driven.PriceSource, state driven.MonitorStateStore, notifier driven.Notifier) *PriceMonitorService {
	return &PriceMonitorService{source: source, state: state, notifier: notifier}
}

// Check performs one fetch-hash-compare cycle. The first observation
// seeds the stored hash without alerting. A changed hash triggers exactly
// one notification, and the new hash is stored only after the alert is
// delivered so a failed send retries on the next cycle.
func (s *PriceMonitorService) Check(ctx context.Context) (bool, error) {
	tables, err := s.source.Fetch(ctx)
	if err != nil {
		return false, fmt.Errorf("price check: %w", err)
	}

	current := domain.HashPrices(tables)
	previous, err := s.state.GetHash(ctx, watchKey)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return false, fmt.Errorf("price check: reading state: %w", err)
		}
		// First run: seed the baseline, no alert.
		logger.Debug("Price monitor seeding baseline hash %s", current[:12])
		if err := s.state.SetHash(ctx, watchKey, current); err != nil {
			return false, fmt.Errorf("price check: seeding state: %w", err)
		}
		return false, nil
	}

	if current == previous {
		logger.Debug("Price monitor: no change")
		return false, nil
	}

	logger.Info("Price monitor: change detected (%s -> %s)", previous[:12], current[:12])
	body := fmt.Sprintf("Egg price tables changed at %s.\n\nCurrent tables:\n\n%s",
		time.Now().Format(time.RFC1123), domain.NormalizePrices(tables))
	if err := s.notifier.Notify(ctx, "Egg price change detected", body); err != nil {
		return false, fmt.Errorf("price check: sending alert: %w", err)
	}

	if err := s.state.SetHash(ctx, watchKey, current); err != nil {
		return true, fmt.Errorf("price check: updating state: %w", err)
	}
	return true, nil
}

// MonitorLock is a PID lock file guarding against concurrent monitor
// instances pointed at the same state.
type MonitorLock struct {
	path string
}

// NewMonitorLock creates a lock rooted at the given path.
func NewMonitorLock(path string) *MonitorLock {
	return &MonitorLock{path: path}
}

// Acquire takes the lock. Returns domain.ErrMonitorLocked when another
// instance already holds it.
func (l *MonitorLock) Acquire() error {
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("lock file %s: %w", l.path, domain.ErrMonitorLocked)
		}
		return fmt.Errorf("creating lock file %s: %w", l.path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(strconv.Itoa(os.Getpid())); err != nil {
		os.Remove(l.path)
		return fmt.Errorf("writing lock file %s: %w", l.path, err)
	}
	return nil
}

// Release removes the lock file.
func (l *MonitorLock) Release() error {
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing lock file %s: %w", l.path, err)
	}
	return nil
}
