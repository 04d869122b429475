package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ragdesk/internal/contextutil"
	"ragdesk/internal/indexer"
)

// IndexRebuilder replaces the entire chunk index from a documents folder.
type IndexRebuilder interface {
	Rebuild(ctx context.Context, docsDir string) (indexer.RebuildResult, error)
}

// RebuildHandler handles HTTP requests to rebuild the index.
type RebuildHandler struct {
	builder IndexRebuilder
	baseDir string
}

// NewRebuildHandler creates a new RebuildHandler. Relative folder paths in
// requests are resolved against baseDir.
func NewRebuildHandler(builder IndexRebuilder, baseDir string) *RebuildHandler {
	return &RebuildHandler{
		builder: builder,
		baseDir: baseDir,
	}
}

// RebuildRequest represents the HTTP request payload for index rebuilds.
// Dir is optional; when empty the configured documents folder is used.
type RebuildRequest struct {
	Dir string `json:"dir,omitempty"`
}

// RebuildResponse represents the HTTP response payload for index rebuilds.
type RebuildResponse struct {
	Documents int    `json:"documents"`
	Chunks    int    `json:"chunks"`
	Dir       string `json:"dir"`
	RebuiltAt string `json:"rebuilt_at"`
}

// ServeHTTP handles HTTP requests to rebuild the index.
func (h *RebuildHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	// An empty body means "rebuild from the configured folder".
	var req RebuildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	dir := h.resolveDir(req.Dir)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		logger.WarnContext(ctx, "documents folder not found", "dir", dir)
		writeError(w, http.StatusNotFound, "Documents folder not found: "+dir)
		return
	}

	result, err := h.builder.Rebuild(ctx, dir)
	if err != nil {
		logger.ErrorContext(ctx, "index rebuild failed", "dir", dir, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to rebuild index")
		return
	}

	writeJSON(w, http.StatusOK, RebuildResponse{
		Documents: result.DocumentCount,
		Chunks:    result.ChunkCount,
		Dir:       dir,
		RebuiltAt: time.Now().UTC().Format(time.RFC3339),
	})
}

// resolveDir turns a user-supplied folder path into an absolute one.
// Surrounding quotes are stripped (pasted shell paths often carry them) and
// relative paths are resolved against the configured documents folder.
func (h *RebuildHandler) resolveDir(dir string) string {
	dir = strings.TrimSpace(dir)
	dir = strings.Trim(dir, `"'`)
	if dir == "" {
		return h.baseDir
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(h.baseDir, dir)
}
