// Package indexer turns a folder of documents into a fully rebuilt vector
// index: load, chunk, embed, bulk upsert.
package indexer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"ragdesk/internal/contextutil"
	"ragdesk/internal/docs"
	"ragdesk/internal/llm"
	"ragdesk/internal/storage"
	"ragdesk/internal/vectorstore"
)

// embedBatchSize bounds the number of texts per embeddings request.
const embedBatchSize = 64

// pointIDNamespace is the UUIDv5 namespace for deriving qdrant point IDs
// from composite chunk keys. Deterministic: the same chunk key always maps
// to the same point ID.
var pointIDNamespace = uuid.NameSpaceOID

// Builder orchestrates full index rebuilds. Rebuilds are destructive and
// never incremental: the collection is recreated from scratch every time.
type Builder struct {
	vectorStore  vectorstore.VectorStore
	embedder     llm.Embedder
	catalog      storage.CatalogStore
	collection   string
	vectorSize   int
	chunkSize    int
	chunkOverlap int

	// mu serializes rebuilds: deleting and recreating a collection while
	// another rebuild does the same is a race.
	mu sync.Mutex
}

// NewBuilder creates a rebuild orchestrator with the default chunking
// configuration.
func NewBuilder(
	vectorStore vectorstore.VectorStore,
	embedder llm.Embedder,
	catalog storage.CatalogStore,
	collection string,
	vectorSize int,
) *Builder {
	return &Builder{
		vectorStore:  vectorStore,
		embedder:     embedder,
		catalog:      catalog,
		collection:   collection,
		vectorSize:   vectorSize,
		chunkSize:    DefaultChunkSize,
		chunkOverlap: DefaultChunkOverlap,
	}
}

// SetChunking overrides the default chunk geometry. Changing the geometry
// between rebuilds is safe: every rebuild re-chunks from scratch.
func (b *Builder) SetChunking(size, overlap int) {
	b.chunkSize = size
	b.chunkOverlap = overlap
}

// chunkEntry pairs a chunk's text with its point identity and payload.
type chunkEntry struct {
	pointID string
	text    string
	meta    map[string]any
}

// Rebuild replaces the entire index with the current contents of docsDir.
//
// The previous collection is dropped before ingestion starts, so a query
// racing a rebuild may observe an empty or partially filled collection;
// a query issued after Rebuild returns sees exactly the new data. A file
// that cannot be parsed aborts the rebuild (the collection is already empty
// at that point). Returns the number of chunks indexed and the number of
// source documents processed.
func (b *Builder) Rebuild(ctx context.Context, docsDir string) (RebuildResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	logger := contextutil.LoggerFromContext(ctx)

	info, err := os.Stat(docsDir)
	if err != nil {
		return RebuildResult{}, fmt.Errorf("docs directory not found: %w", err)
	}
	if !info.IsDir() {
		return RebuildResult{}, fmt.Errorf("docs path %s is not a directory", docsDir)
	}

	// Clean rebuild: drop the collection (missing is fine) and recreate it
	// bound to the vector size of the one embedding model used for both
	// indexing and querying.
	if err := b.vectorStore.RecreateCollection(ctx, b.collection, b.vectorSize); err != nil {
		return RebuildResult{}, fmt.Errorf("failed to recreate collection: %w", err)
	}

	documents, err := docs.LoadDirectory(docsDir)
	if err != nil {
		return RebuildResult{}, err
	}

	var entries []chunkEntry
	records := make([]storage.DocumentRecord, 0, len(documents))
	for _, doc := range documents {
		docChunks := 0
		for _, page := range doc.Pages {
			chunks, err := ChunkText(page.Text, b.chunkSize, b.chunkOverlap)
			if err != nil {
				return RebuildResult{}, fmt.Errorf("failed to chunk %s page %d: %w", doc.Filename, page.Index, err)
			}
			for chunkIndex, chunk := range chunks {
				id := ChunkID(doc.Filename, page.Index, chunkIndex)
				entries = append(entries, chunkEntry{
					pointID: uuid.NewSHA1(pointIDNamespace, []byte(id)).String(),
					text:    chunk,
					meta: map[string]any{
						"chunk_id":    id,
						"text":        chunk,
						"filename":    doc.Filename,
						"filetype":    string(doc.Filetype),
						"page":        page.Index,
						"chunk_index": chunkIndex,
					},
				})
			}
			docChunks += len(chunks)
		}
		records = append(records, b.catalogRecord(docsDir, doc, docChunks))
	}

	if len(entries) > 0 {
		vectors, err := b.embedEntries(ctx, entries)
		if err != nil {
			return RebuildResult{}, err
		}

		points := make([]vectorstore.Point, len(entries))
		for i, entry := range entries {
			points[i] = vectorstore.Point{
				ID:   entry.pointID,
				Vec:  vectors[i],
				Meta: entry.meta,
			}
		}

		if err := b.vectorStore.Upsert(ctx, b.collection, points); err != nil {
			return RebuildResult{}, fmt.Errorf("failed to upsert chunks: %w", err)
		}
	}

	result := RebuildResult{
		ChunkCount:    len(entries),
		DocumentCount: len(documents),
	}

	err = b.catalog.ReplaceAll(ctx, records, storage.RebuildRecord{
		RebuiltAt:      time.Now().UTC(),
		Documents:      result.DocumentCount,
		Chunks:         result.ChunkCount,
		EmbeddingModel: b.embedder.Model(),
	})
	if err != nil {
		return RebuildResult{}, fmt.Errorf("failed to update catalog: %w", err)
	}

	logger.InfoContext(ctx, "index rebuilt",
		"documents", result.DocumentCount,
		"chunks", result.ChunkCount,
		"collection", b.collection,
	)
	return result, nil
}

// embedEntries embeds all chunk texts in request-size batches, preserving
// entry order.
func (b *Builder) embedEntries(ctx context.Context, entries []chunkEntry) ([][]float32, error) {
	vectors := make([][]float32, 0, len(entries))
	for start := 0; start < len(entries); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(entries) {
			end = len(entries)
		}

		texts := make([]string, 0, end-start)
		for _, entry := range entries[start:end] {
			texts = append(texts, entry.text)
		}

		batch, err := b.embedder.EmbedTexts(ctx, texts)
		if err != nil {
			return nil, fmt.Errorf("failed to embed chunks: %w", err)
		}
		if len(batch) != len(texts) {
			return nil, fmt.Errorf("embedding count mismatch: expected %d, got %d", len(texts), len(batch))
		}
		vectors = append(vectors, batch...)
	}
	return vectors, nil
}

// catalogRecord builds the catalog row for one ingested document. File stat
// details are best-effort: the file was just parsed, but it may have been
// removed since.
func (b *Builder) catalogRecord(docsDir string, doc docs.Document, chunks int) storage.DocumentRecord {
	record := storage.DocumentRecord{
		Filename: doc.Filename,
		Filetype: string(doc.Filetype),
		Pages:    len(doc.Pages),
		Chunks:   chunks,
	}
	if info, err := os.Stat(filepath.Join(docsDir, doc.Filename)); err == nil {
		record.SizeKB = float64(info.Size()) / 1024
		record.ModifiedAt = info.ModTime().UTC()
	}
	return record
}
