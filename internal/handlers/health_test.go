package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	vectorstore_mocks "ragdesk/internal/vectorstore/mocks"
)

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		countErr   error
		wantStatus int
		wantState  string
	}{
		{"vector store reachable", nil, http.StatusOK, "healthy"},
		{"vector store down", fmt.Errorf("connection refused"), http.StatusServiceUnavailable, "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := vectorstore_mocks.NewMockVectorStore(ctrl)
			mockStore.EXPECT().Count(gomock.Any(), "ragdesk").Return(0, tt.countErr)

			handler := NewHealthHandler(mockStore, "ragdesk")
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var resp HealthResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if resp.Status != tt.wantState {
				t.Errorf("state = %q, want %q", resp.Status, tt.wantState)
			}
			if resp.Checks["vector_store"] == "" {
				t.Error("vector_store check missing from response")
			}
		})
	}
}
