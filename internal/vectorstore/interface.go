package vectorstore

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_vector_store.go -package=mocks ragdesk/internal/vectorstore VectorStore

import "context"

// Point represents a vector point with its payload.
type Point struct {
	ID   string // UUID string (qdrant point IDs must be UUIDs)
	Vec  []float32
	Meta map[string]any
}

// SearchResult represents a single nearest-neighbor match.
type SearchResult struct {
	PointID string
	Score   float32
	Meta    map[string]any
}

// VectorStore defines the narrow contract the index and retrieval layers
// need from a vector database. Collections are always addressed by name, so
// no handle can go stale across a rebuild.
type VectorStore interface {
	// RecreateCollection drops the named collection if it exists and creates
	// it fresh with the given vector size. A missing collection is not an
	// error: rebuilds must start from the same empty state either way.
	RecreateCollection(ctx context.Context, collection string, vectorSize int) error

	// Upsert inserts or replaces points in the collection.
	Upsert(ctx context.Context, collection string, points []Point) error

	// Search returns up to k points ranked by descending similarity to query.
	Search(ctx context.Context, collection string, query []float32, k int) ([]SearchResult, error)

	// Count returns the number of points stored in the collection. A missing
	// collection counts as zero, not an error: before the first rebuild the
	// index is simply empty.
	Count(ctx context.Context, collection string) (int, error)
}
