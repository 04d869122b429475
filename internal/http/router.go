// Package http wires the API handlers into a chi router.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"ragdesk/internal/handlers"
	"ragdesk/internal/storage"
	"ragdesk/internal/vectorstore"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Retriever      handlers.SnippetRetriever
	Builder        handlers.IndexRebuilder
	Gate           handlers.SnippetTranslator
	VectorStore    vectorstore.VectorStore
	Catalog        storage.CatalogStore
	CollectionName string
	DocsDir        string
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(CORS)
	r.Use(LoggerMiddleware)

	askHandler := handlers.NewAskHandler(deps.Retriever, deps.VectorStore, deps.Gate, deps.CollectionName)
	rebuildHandler := handlers.NewRebuildHandler(deps.Builder, deps.DocsDir)
	filesHandler := handlers.NewFilesHandler(deps.DocsDir)
	statsHandler := handlers.NewStatsHandler(deps.VectorStore, deps.Catalog, deps.CollectionName)
	healthHandler := handlers.NewHealthHandler(deps.VectorStore, deps.CollectionName)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodPost, "/ask", askHandler)
		r.Method(http.MethodPost, "/index/rebuild", rebuildHandler)
		r.Method(http.MethodGet, "/index/stats", statsHandler)
		r.Method(http.MethodGet, "/files", filesHandler)
		r.Method(http.MethodGet, "/health", healthHandler)
	})

	return r
}
