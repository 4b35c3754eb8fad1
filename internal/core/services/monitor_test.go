package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
)

func priceTables(price string) []domain.CityPrices {
	return []domain.CityPrices{
		{City: "Lahore", Entries: []domain.PriceEntry{{Quantity: "1 Dozen", Price: price}}},
	}
}

func TestMonitorSeedsBaselineWithoutAlert(t *testing.T) {
	source := &mockPriceSource{tables: priceTables("Rs. 300")}
	state := newMockStateStore()
	notifier := &mockNotifier{}
	monitor := NewPriceMonitorService(source, state, notifier)

	changed, err := monitor.Check(context.Background())
	require.NoError(t, err)

	assert.False(t, changed)
	assert.Equal(t, 0, notifier.calls)
	assert.Equal(t, domain.HashPrices(source.tables), state.hashes[watchKey])
}

func TestMonitorNoChangeNoAlert(t *testing.T) {
	source := &mockPriceSource{tables: priceTables("Rs. 300")}
	state := newMockStateStore()
	notifier := &mockNotifier{}
	monitor := NewPriceMonitorService(source, state, notifier)

	for i := 0; i < 3; i++ {
		changed, err := monitor.Check(context.Background())
		require.NoError(t, err)
		assert.False(t, changed)
	}
	assert.Equal(t, 0, notifier.calls)
}

func TestMonitorChangeSendsExactlyOneAlert(t *testing.T) {
	source := &mockPriceSource{tables: priceTables("Rs. 300")}
	state := newMockStateStore()
	notifier := &mockNotifier{}
	monitor := NewPriceMonitorService(source, state, notifier)

	_, err := monitor.Check(context.Background())
	require.NoError(t, err)

	source.tables = priceTables("Rs. 320")
	changed, err := monitor.Check(context.Background())
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 1, notifier.calls)

	// Unchanged state afterwards stays quiet.
	changed, err = monitor.Check(context.Background())
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 1, notifier.calls)
}

func TestMonitorIgnoresMarkupChurn(t *testing.T) {
	source := &mockPriceSource{tables: priceTables("Rs. 300")}
	state := newMockStateStore()
	notifier := &mockNotifier{}
	monitor := NewPriceMonitorService(source, state, notifier)

	_, err := monitor.Check(context.Background())
	require.NoError(t, err)

	// Same content, different surrounding whitespace.
	source.tables = []domain.CityPrices{
		{City: "  Lahore ", Entries: []domain.PriceEntry{{Quantity: " 1 Dozen", Price: "Rs. 300  "}}},
	}
	changed, err := monitor.Check(context.Background())
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 0, notifier.calls)
}

func TestMonitorFailedAlertRetries(t *testing.T) {
	source := &mockPriceSource{tables: priceTables("Rs. 300")}
	state := newMockStateStore()
	notifier := &mockNotifier{err: errors.New("smtp down")}
	monitor := NewPriceMonitorService(source, state, notifier)

	_, err := monitor.Check(context.Background())
	require.NoError(t, err)
	seeded := state.hashes[watchKey]

	source.tables = priceTables("Rs. 320")
	_, err = monitor.Check(context.Background())
	require.Error(t, err)
	assert.Equal(t, seeded, state.hashes[watchKey], "hash unchanged after failed alert")

	// Delivery restored: the same change alerts on the next cycle.
	notifier.err = nil
	changed, err := monitor.Check(context.Background())
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestMonitorFetchFailure(t *testing.T) {
	source := &mockPriceSource{err: errors.New("page unreachable")}
	monitor := NewPriceMonitorService(source, newMockStateStore(), &mockNotifier{})

	_, err := monitor.Check(context.Background())
	assert.Error(t, err)
}

func TestMonitorLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "monitor.lock")
	lock := NewMonitorLock(path)

	require.NoError(t, lock.Acquire())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), string(data))

	// Second instance is refused.
	other := NewMonitorLock(path)
	assert.ErrorIs(t, other.Acquire(), domain.ErrMonitorLocked)

	require.NoError(t, lock.Release())
	assert.NoError(t, other.Acquire())
	require.NoError(t, other.Release())
}

func TestMonitorLockReleaseIdempotent(t *testing.T) {
	lock := NewMonitorLock(filepath.Join(t.TempDir(), "monitor.lock"))
	require.NoError(t, lock.Acquire())
	require.NoError(t, lock.Release())
	assert.NoError(t, lock.Release())
}
