package sqlite

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestMigrationsAreIdempotent(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening the same database must not re-run migrations.
	store, err = NewStore(dir)
	require.NoError(t, err)
	assert.NoError(t, store.Close())
}

func TestDocumentRoundTrip(t *testing.T) {
	store := newTestStore(t)
	docs := store.DocumentStore()
	ctx := context.Background()

	doc := &domain.Document{
		ID:      "doc1",
		Path:    "/corpus/guide.txt",
		Title:   "guide.txt",
		Content: "Layer hens need 16% protein.",
	}
	require.NoError(t, docs.SaveDocument(ctx, doc))

	got, err := docs.GetDocument(ctx, "doc1")
	require.NoError(t, err)
	assert.Equal(t, doc.Path, got.Path)
	assert.Equal(t, doc.Content, got.Content)
	assert.False(t, got.UpdatedAt.IsZero())

	_, err = docs.GetDocument(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestChunkRoundTrip(t *testing.T) {
	store := newTestStore(t)
	docs := store.DocumentStore()
	ctx := context.Background()

	require.NoError(t, docs.SaveDocument(ctx, &domain.Document{
		ID: "doc1", Path: "/corpus/guide.txt", Title: "guide.txt", Content: "text",
	}))

	chunks := []domain.Chunk{
		{
			ID: "c1", DocumentID: "doc1", Source: "guide.txt",
			Kind: domain.ChunkKindText, Content: "first", Position: 0,
			Embedding: []float32{0.5, -1.25, 3},
		},
		{
			ID: "c2", DocumentID: "doc1", Source: "guide.txt",
			Kind: domain.ChunkKindText, Content: "second", Position: 1,
		},
	}
	require.NoError(t, docs.SaveChunks(ctx, chunks))

	got, err := docs.GetChunk(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "first", got.Content)
	assert.Equal(t, domain.ChunkKindText, got.Kind)
	assert.Equal(t, []float32{0.5, -1.25, 3}, got.Embedding)

	listed, err := docs.GetChunks(ctx, "doc1")
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "first", listed[0].Content) // ordered by position
	assert.Equal(t, "second", listed[1].Content)

	count, err := docs.CountChunks(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	_, err = docs.GetChunk(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSaveChunksReplacesPreviousSet(t *testing.T) {
	store := newTestStore(t)
	docs := store.DocumentStore()
	ctx := context.Background()

	require.NoError(t, docs.SaveDocument(ctx, &domain.Document{
		ID: "doc1", Path: "/p", Title: "t", Content: "c",
	}))
	require.NoError(t, docs.SaveChunks(ctx, []domain.Chunk{
		{ID: "old1", DocumentID: "doc1", Source: "t", Kind: domain.ChunkKindText, Content: "old", Position: 0},
		{ID: "old2", DocumentID: "doc1", Source: "t", Kind: domain.ChunkKindText, Content: "old2", Position: 1},
	}))

	// Re-index with a different chunk set.
	require.NoError(t, docs.SaveChunks(ctx, []domain.Chunk{
		{ID: "new1", DocumentID: "doc1", Source: "t", Kind: domain.ChunkKindText, Content: "new", Position: 0},
	}))

	count, err := docs.CountChunks(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = docs.GetChunk(ctx, "old1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteDocumentCascadesChunks(t *testing.T) {
	store := newTestStore(t)
	docs := store.DocumentStore()
	ctx := context.Background()

	require.NoError(t, docs.SaveDocument(ctx, &domain.Document{
		ID: "doc1", Path: "/p", Title: "t", Content: "c",
	}))
	require.NoError(t, docs.SaveChunks(ctx, []domain.Chunk{
		{ID: "c1", DocumentID: "doc1", Source: "t", Kind: domain.ChunkKindText, Content: "x", Position: 0},
	}))

	require.NoError(t, docs.DeleteDocument(ctx, "doc1"))

	count, err := docs.CountChunks(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestIndexMeta(t *testing.T) {
	store := newTestStore(t)
	meta := store.IndexMetaStore()
	ctx := context.Background()

	_, err := meta.GetEmbeddingModel(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, meta.SetEmbeddingModel(ctx, "nomic-embed-text"))
	model, err := meta.GetEmbeddingModel(ctx)
	require.NoError(t, err)
	assert.Equal(t, "nomic-embed-text", model)

	// Overwrite
	require.NoError(t, meta.SetEmbeddingModel(ctx, "text-embedding-3-small"))
	model, err = meta.GetEmbeddingModel(ctx)
	require.NoError(t, err)
	assert.Equal(t, "text-embedding-3-small", model)
}

func TestMonitorState(t *testing.T) {
	store := newTestStore(t)
	state := store.MonitorStateStore()
	ctx := context.Background()

	_, err := state.GetHash(ctx, "egg-prices")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, state.SetHash(ctx, "egg-prices", "abc123"))
	hash, err := state.GetHash(ctx, "egg-prices")
	require.NoError(t, err)
	assert.Equal(t, "abc123", hash)

	require.NoError(t, state.SetHash(ctx, "egg-prices", "def456"))
	hash, err = state.GetHash(ctx, "egg-prices")
	require.NoError(t, err)
	assert.Equal(t, "def456", hash)
}

func TestFloat32BlobRoundTrip(t *testing.T) {
	vec := []float32{0, 1.5, -2.25, 3.14159}
	assert.Equal(t, vec, bytesToFloat32Slice(float32SliceToBytes(vec)))

	assert.Nil(t, float32SliceToBytes(nil))
	assert.Nil(t, bytesToFloat32Slice(nil))
	assert.Nil(t, bytesToFloat32Slice([]byte{1, 2, 3})) // not a multiple of 4
}

func TestTimeHelpers(t *testing.T) {
	assert.Nil(t, formatNullableTime(time.Time{}))

	now := time.Now().UTC().Truncate(time.Second)
	formatted, ok := formatNullableTime(now).(string)
	require.True(t, ok)

	parsed := parseNullableTime(sql.NullString{String: formatted, Valid: true})
	assert.True(t, now.Equal(parsed))

	assert.True(t, parseNullableTime(sql.NullString{}).IsZero())
}
