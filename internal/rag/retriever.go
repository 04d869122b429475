// Package rag answers questions by nearest-neighbor retrieval over the
// chunk index.
package rag

import (
	"context"
	"fmt"

	"ragdesk/internal/contextutil"
	"ragdesk/internal/llm"
	"ragdesk/internal/vectorstore"
)

const (
	// MinTopK and MaxTopK bound how many chunks one question may retrieve.
	MinTopK = 1
	MaxTopK = 10
	// DefaultTopK is used when the caller does not ask for a specific count.
	DefaultTopK = 5
)

// Retriever executes top-K similarity queries against the chunk collection.
// The question is embedded with the same model that embedded the index;
// mixing models would make the similarity scores meaningless.
type Retriever struct {
	embedder    llm.Embedder
	vectorStore vectorstore.VectorStore
	collection  string
}

// NewRetriever creates a Retriever bound to one collection.
func NewRetriever(embedder llm.Embedder, vectorStore vectorstore.VectorStore, collection string) *Retriever {
	return &Retriever{
		embedder:    embedder,
		vectorStore: vectorStore,
		collection:  collection,
	}
}

// ClampTopK normalizes a requested result count into [MinTopK, MaxTopK],
// mapping zero to the default.
func ClampTopK(k int) int {
	if k == 0 {
		return DefaultTopK
	}
	if k < MinTopK {
		return MinTopK
	}
	if k > MaxTopK {
		return MaxTopK
	}
	return k
}

// Retrieve returns up to topK chunks ranked by descending similarity to
// question, in the order the store reports them. Results with empty text or
// missing source metadata are dropped: some stores pad short result sets
// with null entries, and a snippet that cannot be cited is useless.
func (r *Retriever) Retrieve(ctx context.Context, question string, topK int) ([]Result, error) {
	logger := contextutil.LoggerFromContext(ctx)
	topK = ClampTopK(topK)

	embeddings, err := r.embedder.EmbedTexts(ctx, []string{question})
	if err != nil {
		return nil, fmt.Errorf("failed to embed question: %w", err)
	}
	if len(embeddings) == 0 {
		return nil, fmt.Errorf("no embedding returned for question")
	}

	matches, err := r.vectorStore.Search(ctx, r.collection, embeddings[0], topK)
	if err != nil {
		return nil, fmt.Errorf("failed to search index: %w", err)
	}

	results := make([]Result, 0, len(matches))
	for _, match := range matches {
		result, ok := resultFromMatch(match)
		if !ok {
			logger.WarnContext(ctx, "dropping malformed search result", "point_id", match.PointID)
			continue
		}
		results = append(results, result)
	}

	logger.InfoContext(ctx, "retrieval completed", "top_k", topK, "results", len(results))
	return results, nil
}

// resultFromMatch converts a raw store match into a Result, reporting
// whether the match carried the text and metadata a usable result needs.
func resultFromMatch(match vectorstore.SearchResult) (Result, bool) {
	if len(match.Meta) == 0 {
		return Result{}, false
	}

	text, _ := match.Meta["text"].(string)
	if text == "" {
		return Result{}, false
	}

	filename, _ := match.Meta["filename"].(string)
	if filename == "" {
		return Result{}, false
	}

	chunkID, _ := match.Meta["chunk_id"].(string)
	filetype, _ := match.Meta["filetype"].(string)

	return Result{
		Text: text,
		Meta: ChunkMeta{
			ChunkID:    chunkID,
			Filename:   filename,
			Filetype:   filetype,
			Page:       metaInt(match.Meta, "page"),
			ChunkIndex: metaInt(match.Meta, "chunk_index"),
		},
		Score: match.Score,
	}, true
}

// metaInt reads an integer payload field; qdrant returns integers as int64.
func metaInt(meta map[string]any, key string) int {
	switch v := meta[key].(type) {
	case int64:
		return int(v)
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}
