package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.DirExists(t, dir)
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("ai.provider", "groq"))

	val, ok := store.Get("ai.provider")
	require.True(t, ok)
	assert.Equal(t, "groq", val)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_GetString(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	_ = store.Set("weather.city", "Lahore")
	_ = store.Set("pipeline.retrieval_k", 5)

	assert.Equal(t, "Lahore", store.GetString("weather.city"))
	assert.Equal(t, "", store.GetString("missing"))
	assert.Equal(t, "", store.GetString("pipeline.retrieval_k")) // wrong type
}

func TestConfigStore_GetInt(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	_ = store.Set("pipeline.retrieval_k", 5)
	_ = store.Set("weather.city", "Lahore")

	assert.Equal(t, 5, store.GetInt("pipeline.retrieval_k"))
	assert.Equal(t, 0, store.GetInt("missing"))
	assert.Equal(t, 0, store.GetInt("weather.city")) // wrong type
}

func TestConfigStore_GetBool(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	_ = store.Set("scheduler.enabled", true)

	assert.True(t, store.GetBool("scheduler.enabled"))
	assert.False(t, store.GetBool("missing"))
}

func TestConfigStore_GetStringSlice(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	_ = store.Set("monitor.recipients", []string{"a@example.com", "b@example.com"})

	assert.Equal(t, []string{"a@example.com", "b@example.com"}, store.GetStringSlice("monitor.recipients"))
	assert.Nil(t, store.GetStringSlice("missing"))
}

func TestConfigStore_PersistsAcrossLoads(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("ai.provider", "ollama"))

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "ollama", reopened.GetString("ai.provider"))
}

func TestConfigStore_LoadFlattensNestedTables(t *testing.T) {
	dir := t.TempDir()
	content := `[ai]
provider = "groq"

[monitor]
interval_hours = 24
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "groq", store.GetString("ai.provider"))
	assert.Equal(t, 24, store.GetInt("monitor.interval_hours"))
}

func TestConfigStore_LoadInvalidTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not = [valid"), 0600))

	_, err := NewConfigStore(dir)
	assert.Error(t, err)
}

func TestConfigStore_FilePermissions(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("ai.api_key", "secret"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
