package rag

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	llm_mocks "ragdesk/internal/llm/mocks"
	"ragdesk/internal/vectorstore"
	vectorstore_mocks "ragdesk/internal/vectorstore/mocks"
)

func TestClampTopK(t *testing.T) {
	tests := []struct {
		input int
		want  int
	}{
		{0, DefaultTopK},
		{-3, MinTopK},
		{1, 1},
		{7, 7},
		{10, 10},
		{25, MaxTopK},
	}

	for _, tt := range tests {
		if got := ClampTopK(tt.input); got != tt.want {
			t.Errorf("ClampTopK(%d) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func chunkPayload(chunkID, text, filename string, page, chunkIndex int64) map[string]any {
	return map[string]any{
		"chunk_id":    chunkID,
		"text":        text,
		"filename":    filename,
		"filetype":    "text",
		"page":        page,
		"chunk_index": chunkIndex,
	}
}

func TestRetriever_Retrieve_PreservesStoreOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	embedder := llm_mocks.NewMockEmbedder(ctrl)
	embedder.EXPECT().EmbedTexts(gomock.Any(), []string{"What is the return policy?"}).
		Return([][]float32{{0.1, 0.2}}, nil)

	mockStore := vectorstore_mocks.NewMockVectorStore(ctrl)
	mockStore.EXPECT().Search(gomock.Any(), "ragdesk", []float32{0.1, 0.2}, 3).Return(
		[]vectorstore.SearchResult{
			{PointID: "a", Score: 0.93, Meta: chunkPayload("policy.txt|p0|c0", "Returns accepted within 30 days.", "policy.txt", 0, 0)},
			{PointID: "b", Score: 0.71, Meta: chunkPayload("manual.pdf|p4|c2", "Refunds take five business days.", "manual.pdf", 4, 2)},
			{PointID: "c", Score: 0.55, Meta: chunkPayload("faq.txt|p0|c1", "Contact support for exchanges.", "faq.txt", 0, 1)},
		}, nil)

	retriever := NewRetriever(embedder, mockStore, "ragdesk")
	results, err := retriever.Retrieve(context.Background(), "What is the return policy?", 3)
	if err != nil {
		t.Fatalf("Retrieve() error = %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("Retrieve() = %d results, want 3", len(results))
	}

	// Store order (descending similarity) must be preserved, no re-ranking.
	var prev float32 = 2
	for i, result := range results {
		if result.Score > prev {
			t.Errorf("result %d breaks descending score order", i)
		}
		prev = result.Score
	}
	if results[0].Meta.Filename != "policy.txt" {
		t.Errorf("top result filename = %q, want policy.txt", results[0].Meta.Filename)
	}
	if results[1].Meta.Page != 4 || results[1].Meta.ChunkIndex != 2 {
		t.Errorf("result 1 position = page %d chunk %d, want 4/2", results[1].Meta.Page, results[1].Meta.ChunkIndex)
	}
}

func TestRetriever_Retrieve_DropsMalformedResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	embedder := llm_mocks.NewMockEmbedder(ctrl)
	embedder.EXPECT().EmbedTexts(gomock.Any(), gomock.Any()).Return([][]float32{{0.5}}, nil)

	mockStore := vectorstore_mocks.NewMockVectorStore(ctrl)
	mockStore.EXPECT().Search(gomock.Any(), "ragdesk", gomock.Any(), gomock.Any()).Return(
		[]vectorstore.SearchResult{
			{PointID: "ok", Score: 0.9, Meta: chunkPayload("a.txt|p0|c0", "good snippet", "a.txt", 0, 0)},
			{PointID: "no-meta", Score: 0.8, Meta: nil},
			{PointID: "empty-text", Score: 0.7, Meta: chunkPayload("b.txt|p0|c0", "", "b.txt", 0, 0)},
			{PointID: "no-filename", Score: 0.6, Meta: map[string]any{"text": "orphan snippet"}},
		}, nil)

	retriever := NewRetriever(embedder, mockStore, "ragdesk")
	results, err := retriever.Retrieve(context.Background(), "anything", 4)
	if err != nil {
		t.Fatalf("Retrieve() error = %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("Retrieve() = %d results, want 1 after dropping malformed entries", len(results))
	}
	if results[0].Text != "good snippet" {
		t.Errorf("surviving result text = %q, want %q", results[0].Text, "good snippet")
	}
}

func TestRetriever_Retrieve_ClampsTopK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	embedder := llm_mocks.NewMockEmbedder(ctrl)
	embedder.EXPECT().EmbedTexts(gomock.Any(), gomock.Any()).Return([][]float32{{0.5}}, nil)

	mockStore := vectorstore_mocks.NewMockVectorStore(ctrl)
	// 50 must be clamped to MaxTopK before reaching the store.
	mockStore.EXPECT().Search(gomock.Any(), "ragdesk", gomock.Any(), MaxTopK).
		Return([]vectorstore.SearchResult{}, nil)

	retriever := NewRetriever(embedder, mockStore, "ragdesk")
	if _, err := retriever.Retrieve(context.Background(), "anything", 50); err != nil {
		t.Fatalf("Retrieve() error = %v", err)
	}
}

func TestRetriever_Retrieve_EmbedFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	embedder := llm_mocks.NewMockEmbedder(ctrl)
	embedder.EXPECT().EmbedTexts(gomock.Any(), gomock.Any()).Return(nil, context.DeadlineExceeded)

	mockStore := vectorstore_mocks.NewMockVectorStore(ctrl)

	retriever := NewRetriever(embedder, mockStore, "ragdesk")
	if _, err := retriever.Retrieve(context.Background(), "anything", 5); err == nil {
		t.Fatal("Retrieve() expected error when embedding fails")
	}
}
