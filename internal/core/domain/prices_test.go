package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePrices(t *testing.T) {
	tables := []CityPrices{
		{
			City: "Lahore",
			Entries: []PriceEntry{
				{Quantity: "1 Dozen", Price: "350 PKR"},
				{Quantity: "30 Eggs Tray", Price: "860 PKR"},
			},
		},
	}

	t.Run("stable under whitespace churn", func(t *testing.T) {
		padded := []CityPrices{
			{
				City: "  Lahore ",
				Entries: []PriceEntry{
					{Quantity: " 1 Dozen", Price: "350 PKR "},
					{Quantity: "30 Eggs Tray ", Price: " 860 PKR"},
				},
			},
		}
		assert.Equal(t, NormalizePrices(tables), NormalizePrices(padded))
	})

	t.Run("sensitive to content changes", func(t *testing.T) {
		changed := []CityPrices{
			{
				City: "Lahore",
				Entries: []PriceEntry{
					{Quantity: "1 Dozen", Price: "360 PKR"},
					{Quantity: "30 Eggs Tray", Price: "860 PKR"},
				},
			},
		}
		assert.NotEqual(t, HashPrices(tables), HashPrices(changed))
	})

	t.Run("hash is deterministic", func(t *testing.T) {
		assert.Equal(t, HashPrices(tables), HashPrices(tables))
	})
}

func TestChunkValid(t *testing.T) {
	tests := []struct {
		name  string
		chunk Chunk
		want  bool
	}{
		{"text with content", Chunk{Kind: ChunkKindText, Content: "hens"}, true},
		{"empty text", Chunk{Kind: ChunkKindText}, false},
		{"table with content", Chunk{Kind: ChunkKindTable, Content: "a, b"}, true},
		{"image with ref", Chunk{Kind: ChunkKindImage, ImageRef: "p1.png"}, true},
		{"image without ref", Chunk{Kind: ChunkKindImage}, false},
		{"unknown kind", Chunk{Kind: "blob", Content: "x"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.chunk.Valid())
		})
	}
}
