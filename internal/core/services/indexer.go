package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/eggspert-labs/eggspert-cli/internal/core/domain"
	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driven"
	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driving"
	"github.com/eggspert-labs/eggspert-cli/internal/logger"
)

// Ensure IndexerService implements the interface.
var _ driving.IndexService = (*IndexerService)(nil)

// IndexerService builds the similarity index from the reference corpus:
// extract text, split into overlapping chunks, embed, persist.
type IndexerService struct {
	extractors driven.ExtractorRegistry
	embedder   driven.EmbeddingService
	docStore   driven.DocumentStore
	metaStore  driven.IndexMetaStore
	index      driven.VectorIndex

	chunkSize int
	overlap   int
}

// IndexerOption configures the indexer.
type IndexerOption func(*IndexerService)

// WithChunkSize sets the chunk window length in characters.
func WithChunkSize(size int) IndexerOption {
	return func(s *IndexerService) {
		if size > 0 {
			s.chunkSize = size
		}
	}
}

// WithChunkOverlap sets the overlap between adjacent chunks.
func WithChunkOverlap(overlap int) IndexerOption {
	return func(s *IndexerService) {
		if overlap >= 0 {
			s.overlap = overlap
		}
	}
}

// NewIndexerService creates an indexer.
func NewIndexerService(
	extractors driven.ExtractorRegistry,
	embedder driven.EmbeddingService,
	docStore driven.DocumentStore,
	metaStore driven.IndexMetaStore,
	index driven.VectorIndex,
	opts ...IndexerOption,
) *IndexerService {
	s := &IndexerService{
		extractors: extractors,
		embedder:   embedder,
		docStore:   docStore,
		metaStore:  metaStore,
		index:      index,
		chunkSize:  domain.DefaultChunkSize,
		overlap:    domain.DefaultChunkOverlap,
	}

	for _, opt := range opts {
		opt(s)
	}

	// Overlap must leave forward progress per window.
	if s.overlap >= s.chunkSize {
		s.overlap = s.chunkSize / 4
	}

	return s
}

// BuildIndex ingests the documents at the given paths.
// Chunk boundaries are a deterministic function of the chunking
// parameters and the document text, so rebuilding an unchanged corpus
// yields an identical chunk set.
func (s *IndexerService) BuildIndex(ctx context.Context, paths []string) (driving.IndexSummary, error) {
	if s.embedder == nil {
		return driving.IndexSummary{}, domain.ErrEmbeddingUnavailable
	}

	files, err := s.expandPaths(paths)
	if err != nil {
		return driving.IndexSummary{}, err
	}

	logger.Section("Index Build")
	logger.Info("Indexing %d documents with model %s", len(files), s.embedder.ModelName())

	summary := driving.IndexSummary{EmbeddingModel: s.embedder.ModelName()}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		doc, chunks, err := s.ingestDocument(ctx, path)
		if err != nil {
			return summary, err
		}

		vectors, err := s.embedder.EmbedBatch(ctx, chunkTexts(chunks))
		if err != nil {
			return summary, fmt.Errorf("embed chunks of %s: %w", doc.Title, err)
		}
		for i := range chunks {
			chunks[i].Embedding = vectors[i]
		}

		if err := s.docStore.SaveDocument(ctx, doc); err != nil {
			return summary, fmt.Errorf("save document %s: %w", doc.Title, err)
		}
		if err := s.docStore.SaveChunks(ctx, chunks); err != nil {
			return summary, fmt.Errorf("save chunks of %s: %w", doc.Title, err)
		}
		for i := range chunks {
			if err := s.index.Add(ctx, chunks[i].ID, chunks[i].Embedding); err != nil {
				return summary, fmt.Errorf("index chunk %s: %w", chunks[i].ID, err)
			}
		}

		summary.Documents++
		summary.Chunks += len(chunks)
		logger.Debug("Indexed %s: %d chunks", doc.Title, len(chunks))
	}

	if err := s.metaStore.SetEmbeddingModel(ctx, s.embedder.ModelName()); err != nil {
		return summary, fmt.Errorf("record embedding model: %w", err)
	}

	logger.Info("Index build complete: %d documents, %d chunks", summary.Documents, summary.Chunks)
	return summary, nil
}

// Status reports the current index state.
func (s *IndexerService) Status(ctx context.Context) (driving.IndexSummary, error) {
	model, err := s.metaStore.GetEmbeddingModel(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return driving.IndexSummary{}, domain.ErrIndexUnavailable
		}
		return driving.IndexSummary{}, err
	}

	docs, err := s.docStore.ListDocuments(ctx)
	if err != nil {
		return driving.IndexSummary{}, err
	}
	chunks, err := s.docStore.CountChunks(ctx)
	if err != nil {
		return driving.IndexSummary{}, err
	}

	return driving.IndexSummary{
		Documents:      len(docs),
		Chunks:         chunks,
		EmbeddingModel: model,
	}, nil
}

// expandPaths resolves directory arguments to the supported files they
// contain. Explicit file arguments pass through untouched. Files found
// by walking a directory are skipped when no extractor handles their
// extension; hidden entries are ignored.
func (s *IndexerService) expandPaths(paths []string) ([]string, error) {
	var out []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, path)
			}
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if !info.IsDir() {
			out = append(out, path)
			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			name := d.Name()
			if strings.HasPrefix(name, ".") && name != "." && name != ".." {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return nil
			}
			if _, err := s.extractors.ForFile(&domain.UploadedFile{Name: name}); err != nil {
				logger.Debug("Skipping %s: no extractor for extension", p)
				return nil
			}
			out = append(out, p)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", path, err)
		}
	}
	return out, nil
}

// ingestDocument extracts a document and splits it into chunks.
func (s *IndexerService) ingestDocument(ctx context.Context, path string) (*domain.Document, []domain.Chunk, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, path)
		}
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	file := &domain.UploadedFile{Name: filepath.Base(path), Content: data}
	extractor, err := s.extractors.ForFile(file)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	text, err := extractor.Extract(ctx, file)
	if err != nil {
		return nil, nil, fmt.Errorf("extract %s: %w", path, err)
	}
	if text == "" {
		return nil, nil, fmt.Errorf("%w: %s yielded no text", domain.ErrExtractionFailed, path)
	}

	now := time.Now().UTC()
	doc := &domain.Document{
		ID:        documentID(path),
		Path:      path,
		Title:     filepath.Base(path),
		Content:   text,
		CreatedAt: now,
		UpdatedAt: now,
	}

	chunks := s.splitChunks(doc)
	if len(chunks) == 0 {
		return nil, nil, fmt.Errorf("%w: %s produced no chunks", domain.ErrExtractionFailed, path)
	}

	// Image uploads carry their OCR text but keep a reference back to
	// the source image so answers can point at the original artifact.
	if file.IsImage() {
		for i := range chunks {
			chunks[i].Kind = domain.ChunkKindImage
			chunks[i].ImageRef = path
		}
	}

	chunks = append(chunks, s.tableChunks(ctx, extractor, file, doc, len(chunks))...)

	return doc, chunks, nil
}

// tableChunks asks extractors that support it for serialised tables and
// turns each into its own chunk, positioned after the text chunks.
// Table recovery is best effort: a failure is logged, not fatal.
func (s *IndexerService) tableChunks(ctx context.Context, extractor driven.Extractor, file *domain.UploadedFile, doc *domain.Document, position int) []domain.Chunk {
	te, ok := extractor.(driven.TableExtractor)
	if !ok {
		return nil
	}

	tables, err := te.ExtractTables(ctx, file)
	if err != nil {
		logger.Debug("Table extraction failed for %s: %v", doc.Title, err)
		return nil
	}

	chunks := make([]domain.Chunk, 0, len(tables))
	for _, table := range tables {
		chunks = append(chunks, domain.Chunk{
			ID:         chunkID(doc.Title, position, table),
			DocumentID: doc.ID,
			Source:     doc.Title,
			Kind:       domain.ChunkKindTable,
			Content:    table,
			Position:   position,
		})
		position++
	}
	return chunks
}

// splitChunks windows the document content into overlapping chunks.
func (s *IndexerService) splitChunks(doc *domain.Document) []domain.Chunk {
	content := doc.Content
	contentLen := len(content)

	estimated := (contentLen / (s.chunkSize - s.overlap)) + 1
	chunks := make([]domain.Chunk, 0, estimated)

	position := 0
	start := 0

	for start < contentLen {
		end := start + s.chunkSize
		if end > contentLen {
			end = contentLen
		}

		chunkContent := content[start:end]
		chunks = append(chunks, domain.Chunk{
			ID:         chunkID(doc.Title, position, chunkContent),
			DocumentID: doc.ID,
			Source:     doc.Title,
			Kind:       domain.ChunkKindText,
			Content:    chunkContent,
			Position:   position,
		})
		position++

		start += s.chunkSize - s.overlap
		if s.chunkSize <= s.overlap {
			break
		}
	}

	return chunks
}

// chunkTexts collects the chunk contents for batch embedding.
func chunkTexts(chunks []domain.Chunk) []string {
	texts := make([]string, len(chunks))
	for i := range chunks {
		texts[i] = chunks[i].Content
	}
	return texts
}

// documentID derives a stable ID from the document path.
func documentID(path string) string {
	sum := sha256.Sum256([]byte(path))
	return hex.EncodeToString(sum[:8])
}

// chunkID derives a stable ID from (source, position, content) so that
// identical inputs always produce identical chunk sets.
func chunkID(source string, position int, content string) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%d\x00", source, position)
	h.Write([]byte(content))
	return hex.EncodeToString(h.Sum(nil)[:16])
}
