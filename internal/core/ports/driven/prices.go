package driven

import (
	"context"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
)

// PriceSource scrapes per-city pricing tables from the pricing page.
// The upstream markup is brittle; the monitor watches the normalised
// table content for changes.
type PriceSource interface {
	// Fetch returns the current pricing tables.
	Fetch(ctx context.Context) ([]domain.CityPrices, error)
}

// Notifier delivers out-of-band alerts (e.g. price-page change emails).
type Notifier interface {
	// Notify sends a single alert with the given subject and body.
	Notify(ctx context.Context, subject, body string) error
}

// MonitorStateStore persists the last observed content hash per watch key.
type MonitorStateStore interface {
	// GetHash returns the stored hash for the key.
	// Returns domain.ErrNotFound when nothing has been observed yet.
	GetHash(ctx context.Context, key string) (string, error)

	// SetHash stores the hash for the key.
	SetHash(ctx context.Context, key, hash string) error
}
