package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"ragdesk/internal/config"
	"ragdesk/internal/http"
	"ragdesk/internal/indexer"
	"ragdesk/internal/llm"
	"ragdesk/internal/rag"
	"ragdesk/internal/storage"
	"ragdesk/internal/translate"
	"ragdesk/internal/vectorstore"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{
		Level: level,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", level.String(), "format", cfg.LogFormat)

	// Initialize the document catalog database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	catalog := storage.NewCatalogRepo(db)

	// Initialize Qdrant vector store. The collection itself is created by the
	// first rebuild, not at startup.
	vectorStore, err := vectorstore.NewQdrantStore(cfg.QdrantURL)
	if err != nil {
		log.Fatalf("Failed to create Qdrant client: %v", err)
	}
	slog.Info("Vector store configured", "url", cfg.QdrantURL, "collection", cfg.QdrantCollection)

	// Validate embedding client vector size (fail-fast)
	ctx := context.Background()
	embedder := llm.NewEmbeddingsClient(cfg.EmbeddingBaseURL, cfg.EmbeddingAPIKey, cfg.EmbeddingModelName, cfg.QdrantVectorSize)
	testEmbeddings, err := embedder.EmbedTexts(ctx, []string{"test"})
	if err != nil {
		log.Fatalf("Failed to validate embedding client: %v", err)
	}
	if len(testEmbeddings) == 0 || len(testEmbeddings[0]) != cfg.QdrantVectorSize {
		log.Fatalf("Embedding vector size mismatch: expected %d, got %d", cfg.QdrantVectorSize, len(testEmbeddings[0]))
	}
	slog.Info("Embedding client validated", "model", cfg.EmbeddingModelName, "vector_size", cfg.QdrantVectorSize)

	// Create the rebuild orchestrator and retriever
	builder := indexer.NewBuilder(vectorStore, embedder, catalog, cfg.QdrantCollection, cfg.QdrantVectorSize)
	builder.SetChunking(cfg.ChunkSize, cfg.ChunkOverlap)

	retriever := rag.NewRetriever(embedder, vectorStore, cfg.QdrantCollection)

	// Translation is optional: with no server configured the gate passes
	// every snippet through unchanged.
	gate := translate.NewGate(cfg.TranslateBaseURL, cfg.TranslateAPIKey)
	if gate.Available() {
		slog.Info("Translation gate enabled", "url", cfg.TranslateBaseURL)
	} else {
		slog.Info("Translation gate disabled, snippets will not be translated")
	}

	// Create router with dependencies
	deps := &http.Deps{
		Retriever:      retriever,
		Builder:        builder,
		Gate:           gate,
		VectorStore:    vectorStore,
		Catalog:        catalog,
		CollectionName: cfg.QdrantCollection,
		DocsDir:        cfg.DocsDir,
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr, "docs_dir", cfg.DocsDir)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
