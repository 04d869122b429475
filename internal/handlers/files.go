package handlers

import (
	"net/http"

	"ragdesk/internal/contextutil"
	"ragdesk/internal/docs"
)

// FilesHandler lists the supported documents currently present in the
// documents folder. The listing reflects the folder as it is now, not what
// was indexed: the two drift between rebuilds.
type FilesHandler struct {
	docsDir string
}

// NewFilesHandler creates a new FilesHandler.
func NewFilesHandler(docsDir string) *FilesHandler {
	return &FilesHandler{docsDir: docsDir}
}

// FilesResponse represents the HTTP response payload for folder listings.
type FilesResponse struct {
	Dir   string          `json:"dir"`
	Files []docs.FileInfo `json:"files"`
	Count int             `json:"count"`
}

// ServeHTTP handles HTTP requests for folder listings.
func (h *FilesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	files := docs.ListFiles(h.docsDir)
	if files == nil {
		files = []docs.FileInfo{}
	}

	writeJSON(w, http.StatusOK, FilesResponse{
		Dir:   h.docsDir,
		Files: files,
		Count: len(files),
	})
}
