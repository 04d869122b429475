package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_catalog_store.go -package=mocks ragdesk/internal/storage CatalogStore

import (
	"context"
	"database/sql"
	"fmt"
)

// CatalogStore defines the interface for document catalog operations.
type CatalogStore interface {
	// ReplaceAll atomically replaces the whole catalog with the documents of
	// a completed rebuild and records the rebuild itself.
	ReplaceAll(ctx context.Context, documents []DocumentRecord, rebuild RebuildRecord) error
	// ListDocuments returns all catalogued documents ordered by filename.
	ListDocuments(ctx context.Context) ([]DocumentRecord, error)
	// LastRebuild returns the most recent rebuild record.
	// Returns ErrNotFound if the index has never been built.
	LastRebuild(ctx context.Context) (*RebuildRecord, error)
}

// CatalogRepo provides methods for catalog operations backed by SQLite.
// It implements the CatalogStore interface.
type CatalogRepo struct {
	db *sql.DB
}

// NewCatalogRepo creates a new CatalogRepo.
func NewCatalogRepo(db *sql.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

// ReplaceAll atomically replaces the whole catalog with the documents of a
// completed rebuild. The index is rebuilt wholesale, so the catalog is too:
// stale rows from a previous rebuild must not survive.
func (r *CatalogRepo) ReplaceAll(ctx context.Context, documents []DocumentRecord, rebuild RebuildRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM documents"); err != nil {
		return fmt.Errorf("failed to clear documents: %w", err)
	}

	for _, doc := range documents {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO documents (filename, filetype, pages, chunks, size_kb, modified_at) VALUES (?, ?, ?, ?, ?, ?)",
			doc.Filename, doc.Filetype, doc.Pages, doc.Chunks, doc.SizeKB, doc.ModifiedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert document %s: %w", doc.Filename, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO rebuilds (rebuilt_at, documents, chunks, embedding_model) VALUES (?, ?, ?, ?)",
		rebuild.RebuiltAt, rebuild.Documents, rebuild.Chunks, rebuild.EmbeddingModel,
	)
	if err != nil {
		return fmt.Errorf("failed to record rebuild: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit catalog replace: %w", err)
	}
	return nil
}

// ListDocuments returns all catalogued documents ordered by filename.
// Returns an empty slice if the catalog is empty (not an error).
func (r *CatalogRepo) ListDocuments(ctx context.Context) ([]DocumentRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT filename, filetype, pages, chunks, size_kb, modified_at FROM documents ORDER BY filename",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var documents []DocumentRecord
	for rows.Next() {
		var doc DocumentRecord
		if err := rows.Scan(&doc.Filename, &doc.Filetype, &doc.Pages, &doc.Chunks, &doc.SizeKB, &doc.ModifiedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		documents = append(documents, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate documents: %w", err)
	}

	return documents, nil
}

// LastRebuild returns the most recent rebuild record.
// Returns ErrNotFound if the index has never been built.
func (r *CatalogRepo) LastRebuild(ctx context.Context) (*RebuildRecord, error) {
	var rebuild RebuildRecord
	err := r.db.QueryRowContext(ctx,
		"SELECT rebuilt_at, documents, chunks, embedding_model FROM rebuilds ORDER BY id DESC LIMIT 1",
	).Scan(&rebuild.RebuiltAt, &rebuild.Documents, &rebuild.Chunks, &rebuild.EmbeddingModel)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query last rebuild: %w", err)
	}

	return &rebuild, nil
}
