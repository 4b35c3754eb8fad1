package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
)

// fakeLock implements MonitorLock for testing.
type fakeLock struct {
	acquireErr error
	acquired   int
	released   int
}

func (l *fakeLock) Acquire() error {
	l.acquired++
	return l.acquireErr
}

func (l *fakeLock) Release() error {
	l.released++
	return nil
}

func TestWatchCmd_Use(t *testing.T) {
	assert.Equal(t, "watch", watchCmd.Use)
}

func TestWatchCmd_OnceNoChange(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"watch", "--once"})
	defer func() {
		rootCmd.SetArgs(nil)
		watchOnce = false
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No price change.")
}

func TestWatchCmd_OnceChangeDetected(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	priceMonitor = &mockPriceMonitor{changed: true}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"watch", "--once"})
	defer func() {
		rootCmd.SetArgs(nil)
		watchOnce = false
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Price change detected, alert sent.")
}

func TestWatchCmd_OnceCheckErrorIsNonFatal(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	priceMonitor = &mockPriceMonitor{err: assert.AnError}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"watch", "--once"})
	defer func() {
		rootCmd.SetArgs(nil)
		watchOnce = false
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.NotContains(t, buf.String(), "No price change.")
}

func TestWatchCmd_ReleasesLock(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	lock := &fakeLock{}
	SetMonitorLock(lock)
	defer SetMonitorLock(nil)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"watch", "--once"})
	defer func() {
		rootCmd.SetArgs(nil)
		watchOnce = false
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, 1, lock.acquired)
	assert.Equal(t, 1, lock.released)
}

func TestWatchCmd_AlreadyRunning(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	lock := &fakeLock{acquireErr: domain.ErrMonitorLocked}
	SetMonitorLock(lock)
	defer SetMonitorLock(nil)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"watch", "--once"})
	defer func() {
		rootCmd.SetArgs(nil)
		watchOnce = false
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "another price monitor is already running")
	assert.Zero(t, lock.released)
}

func TestWatchCmd_NotConfigured(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	priceMonitor = nil

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"watch"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "price monitor not configured")
}
