package flat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchOrdersBySimilarity(t *testing.T) {
	idx := New()
	ctx := context.Background()

	require.NoError(t, idx.Add(ctx, "x-axis", []float32{1, 0}))
	require.NoError(t, idx.Add(ctx, "diagonal", []float32{1, 1}))
	require.NoError(t, idx.Add(ctx, "y-axis", []float32{0, 1}))

	hits, err := idx.Search(ctx, []float32{1, 0}, 3)
	require.NoError(t, err)
	require.Len(t, hits, 3)

	assert.Equal(t, "x-axis", hits[0].ChunkID)
	assert.InDelta(t, 1.0, hits[0].Similarity, 1e-6)
	assert.Equal(t, "diagonal", hits[1].ChunkID)
	assert.Equal(t, "y-axis", hits[2].ChunkID)
	assert.InDelta(t, 0.0, hits[2].Similarity, 1e-6)
}

func TestSearchLimitsToK(t *testing.T) {
	idx := New()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, idx.Add(ctx, id, []float32{1, 2, 3}))
	}

	hits, err := idx.Search(ctx, []float32{1, 2, 3}, 2)
	require.NoError(t, err)
	assert.Len(t, hits, 2)
}

func TestSearchDeterministicTieBreak(t *testing.T) {
	idx := New()
	ctx := context.Background()

	require.NoError(t, idx.Add(ctx, "b", []float32{1, 0}))
	require.NoError(t, idx.Add(ctx, "a", []float32{1, 0}))

	hits, err := idx.Search(ctx, []float32{1, 0}, 2)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, "a", hits[0].ChunkID)
	assert.Equal(t, "b", hits[1].ChunkID)
}

func TestAddReplacesVector(t *testing.T) {
	idx := New()
	ctx := context.Background()

	require.NoError(t, idx.Add(ctx, "a", []float32{1, 0}))
	require.NoError(t, idx.Add(ctx, "a", []float32{0, 1}))
	assert.Equal(t, 1, idx.Len())

	hits, err := idx.Search(ctx, []float32{0, 1}, 1)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.InDelta(t, 1.0, hits[0].Similarity, 1e-6)
}

func TestDelete(t *testing.T) {
	idx := New()
	ctx := context.Background()

	require.NoError(t, idx.Add(ctx, "a", []float32{1}))
	require.NoError(t, idx.Delete(ctx, "a"))
	assert.Equal(t, 0, idx.Len())

	// Deleting a missing ID is a no-op.
	assert.NoError(t, idx.Delete(ctx, "missing"))
}

func TestSearchEdgeCases(t *testing.T) {
	idx := New()
	ctx := context.Background()
	require.NoError(t, idx.Add(ctx, "a", []float32{1, 2}))

	hits, err := idx.Search(ctx, nil, 3)
	require.NoError(t, err)
	assert.Empty(t, hits)

	hits, err = idx.Search(ctx, []float32{1, 2}, 0)
	require.NoError(t, err)
	assert.Empty(t, hits)

	// Mismatched dimensions score zero instead of failing.
	hits, err = idx.Search(ctx, []float32{1, 2, 3}, 1)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Zero(t, hits[0].Similarity)
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, cosine([]float32{1, 2}, []float32{2, 4}), 1e-6)
	assert.InDelta(t, -1.0, cosine([]float32{1, 0}, []float32{-1, 0}), 1e-6)
	assert.Zero(t, cosine([]float32{0, 0}, []float32{1, 1}))
}
