package domain

import "time"

// ChunkKind identifies what a chunk was extracted from.
type ChunkKind string

// Chunk kinds.
const (
	// ChunkKindText is a span of running document text.
	ChunkKindText ChunkKind = "text"

	// ChunkKindTable is extracted tabular data serialised to text.
	ChunkKindTable ChunkKind = "table"

	// ChunkKindImage is a reference to an extracted image artifact.
	// Image chunks may carry empty text content.
	ChunkKindImage ChunkKind = "image"
)

// Document represents a reference document in the knowledge corpus.
// It is the canonical representation after extraction.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// Path is the original file location.
	Path string

	// Title is the human-readable title (defaults to the file name).
	Title string

	// Content is the full extracted text before chunking.
	Content string

	// CreatedAt is when the document was first indexed.
	CreatedAt time.Time

	// UpdatedAt is when the document was last re-indexed.
	UpdatedAt time.Time
}

// Chunk represents a retrievable unit within a document.
// Documents are split into overlapping chunks for granular retrieval.
type Chunk struct {
	// ID is the unique identifier for the chunk. It is a deterministic
	// function of (source, position, content) so that re-indexing an
	// unchanged corpus produces an identical chunk set.
	ID string

	// DocumentID links to the parent Document.
	DocumentID string

	// Source is the originating document name, carried for citation.
	Source string

	// Kind distinguishes text, table, and image chunks.
	Kind ChunkKind

	// Content is the text content of this chunk.
	// Non-empty for text and table chunks; may be empty for image chunks.
	Content string

	// ImageRef points to an external image artifact for image chunks.
	ImageRef string

	// Position is the ordinal position within the document.
	Position int

	// Embedding is the vector representation for similarity search.
	Embedding []float32
}

// Valid reports whether the chunk honours the content invariant:
// text and table chunks must carry content, image chunks must carry a
// reference.
func (c *Chunk) Valid() bool {
	switch c.Kind {
	case ChunkKindText, ChunkKindTable:
		return c.Content != ""
	case ChunkKindImage:
		return c.ImageRef != ""
	default:
		return false
	}
}

// RetrievedChunk is a chunk annotated with its relevance to a query.
type RetrievedChunk struct {
	// Chunk is the retrieved chunk.
	Chunk Chunk

	// Score is the cosine similarity to the query (higher is closer).
	Score float64

	// Rank is the 0-based position in the result, most similar first.
	Rank int
}
