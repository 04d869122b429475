package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func newTestDB(t *testing.T) *CatalogRepo {
	t.Helper()

	db, err := New(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	return NewCatalogRepo(db)
}

func TestCatalogRepo_EmptyCatalog(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	documents, err := repo.ListDocuments(ctx)
	if err != nil {
		t.Fatalf("ListDocuments() error = %v", err)
	}
	if len(documents) != 0 {
		t.Errorf("ListDocuments() = %d rows, want 0", len(documents))
	}

	if _, err := repo.LastRebuild(ctx); !errors.Is(err, ErrNotFound) {
		t.Errorf("LastRebuild() error = %v, want ErrNotFound", err)
	}
}

func TestCatalogRepo_ReplaceAll(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	first := []DocumentRecord{
		{Filename: "policy.txt", Filetype: "text", Pages: 1, Chunks: 1, SizeKB: 0.1, ModifiedAt: now},
		{Filename: "manual.pdf", Filetype: "pdf", Pages: 12, Chunks: 40, SizeKB: 300.5, ModifiedAt: now},
	}
	err := repo.ReplaceAll(ctx, first, RebuildRecord{
		RebuiltAt: now, Documents: 2, Chunks: 41, EmbeddingModel: "test-model",
	})
	if err != nil {
		t.Fatalf("ReplaceAll() error = %v", err)
	}

	// Second rebuild fully replaces the first.
	second := []DocumentRecord{
		{Filename: "memo.docx", Filetype: "docx", Pages: 1, Chunks: 3, SizeKB: 14.2, ModifiedAt: now},
	}
	err = repo.ReplaceAll(ctx, second, RebuildRecord{
		RebuiltAt: now.Add(time.Minute), Documents: 1, Chunks: 3, EmbeddingModel: "test-model",
	})
	if err != nil {
		t.Fatalf("ReplaceAll() second call error = %v", err)
	}

	documents, err := repo.ListDocuments(ctx)
	if err != nil {
		t.Fatalf("ListDocuments() error = %v", err)
	}
	if len(documents) != 1 {
		t.Fatalf("ListDocuments() = %d rows, want 1 after replace", len(documents))
	}
	if documents[0].Filename != "memo.docx" {
		t.Errorf("document filename = %q, want memo.docx", documents[0].Filename)
	}
	if documents[0].Chunks != 3 {
		t.Errorf("document chunks = %d, want 3", documents[0].Chunks)
	}

	rebuild, err := repo.LastRebuild(ctx)
	if err != nil {
		t.Fatalf("LastRebuild() error = %v", err)
	}
	if rebuild.Documents != 1 || rebuild.Chunks != 3 {
		t.Errorf("LastRebuild() = %+v, want documents=1 chunks=3", rebuild)
	}
	if rebuild.EmbeddingModel != "test-model" {
		t.Errorf("LastRebuild() embedding model = %q, want test-model", rebuild.EmbeddingModel)
	}
}

func TestCatalogRepo_ReplaceAllEmptyFolder(t *testing.T) {
	repo := newTestDB(t)
	ctx := context.Background()

	err := repo.ReplaceAll(ctx, nil, RebuildRecord{
		RebuiltAt: time.Now(), Documents: 0, Chunks: 0, EmbeddingModel: "test-model",
	})
	if err != nil {
		t.Fatalf("ReplaceAll() with no documents error = %v", err)
	}

	if _, err := repo.LastRebuild(ctx); err != nil {
		t.Errorf("LastRebuild() error = %v, want record for empty rebuild", err)
	}
}
