package csvfile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
)

func TestExtract(t *testing.T) {
	e := New()

	csv := "breed,eggs_per_year\nLeghorn,280\nSussex,250\n"
	text, err := e.Extract(context.Background(), &domain.UploadedFile{
		Name:    "breeds.csv",
		Content: []byte(csv),
	})
	require.NoError(t, err)

	assert.Equal(t, "breed: Leghorn, eggs_per_year: 280\nbreed: Sussex, eggs_per_year: 250", text)
}

func TestExtractHeaderOnly(t *testing.T) {
	e := New()

	text, err := e.Extract(context.Background(), &domain.UploadedFile{
		Name:    "empty.csv",
		Content: []byte("breed,eggs_per_year\n"),
	})
	require.NoError(t, err)
	assert.Equal(t, "breed, eggs_per_year", text)
}

func TestExtractRaggedRows(t *testing.T) {
	e := New()

	text, err := e.Extract(context.Background(), &domain.UploadedFile{
		Name:    "ragged.csv",
		Content: []byte("a,b\n1,2,3\n"),
	})
	require.NoError(t, err)
	assert.Equal(t, "a: 1, b: 2, 3", text)
}

func TestExtractEmptyFile(t *testing.T) {
	_, err := New().Extract(context.Background(), &domain.UploadedFile{Name: "empty.csv"})
	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
}

func TestExtractMalformed(t *testing.T) {
	_, err := New().Extract(context.Background(), &domain.UploadedFile{
		Name:    "broken.csv",
		Content: []byte("a,\"unterminated\n"),
	})
	assert.Error(t, err)
}

func TestExtractNilFile(t *testing.T) {
	_, err := New().Extract(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
