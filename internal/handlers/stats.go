package handlers

import (
	"errors"
	"net/http"
	"time"

	"ragdesk/internal/contextutil"
	"ragdesk/internal/storage"
	"ragdesk/internal/vectorstore"
)

// StatsHandler reports the state of the chunk index: live point count from
// the vector store plus the catalog's record of the last rebuild.
type StatsHandler struct {
	vectorStore vectorstore.VectorStore
	catalog     storage.CatalogStore
	collection  string
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(vectorStore vectorstore.VectorStore, catalog storage.CatalogStore, collection string) *StatsHandler {
	return &StatsHandler{
		vectorStore: vectorStore,
		catalog:     catalog,
		collection:  collection,
	}
}

// StatsResponse represents the HTTP response payload for index stats.
type StatsResponse struct {
	Collection     string `json:"collection"`
	Points         int    `json:"points"`
	Indexed        bool   `json:"indexed"`
	Documents      int    `json:"documents,omitempty"`
	Chunks         int    `json:"chunks,omitempty"`
	EmbeddingModel string `json:"embedding_model,omitempty"`
	LastRebuiltAt  string `json:"last_rebuilt_at,omitempty"`
}

// ServeHTTP handles HTTP requests for index stats.
func (h *StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	points, err := h.vectorStore.Count(ctx, h.collection)
	if err != nil {
		logger.ErrorContext(ctx, "failed to count indexed chunks", "error", err)
		writeError(w, http.StatusServiceUnavailable, "Vector store unavailable")
		return
	}

	resp := StatsResponse{
		Collection: h.collection,
		Points:     points,
	}

	rebuild, err := h.catalog.LastRebuild(ctx)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		// Never built: points is zero and the catalog fields stay empty.
	case err != nil:
		logger.ErrorContext(ctx, "failed to load last rebuild", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load index stats")
		return
	default:
		resp.Indexed = true
		resp.Documents = rebuild.Documents
		resp.Chunks = rebuild.Chunks
		resp.EmbeddingModel = rebuild.EmbeddingModel
		resp.LastRebuiltAt = rebuild.RebuiltAt.Format(time.RFC3339)
	}

	writeJSON(w, http.StatusOK, resp)
}
