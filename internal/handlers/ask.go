// Package handlers contains the HTTP handlers for the document search API.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"ragdesk/internal/contextutil"
	"ragdesk/internal/rag"
	"ragdesk/internal/translate"
	"ragdesk/internal/vectorstore"
)

// snippetMaxChars caps how much of a chunk is shown per result.
const snippetMaxChars = 260

// msgIndexEmpty is returned when a question arrives before any rebuild.
const msgIndexEmpty = "Index is empty. Build the index first."

// msgNoResults is returned when the index has data but nothing matched.
const msgNoResults = "No matching passages found."

// SnippetRetriever runs top-K similarity queries over the chunk index.
type SnippetRetriever interface {
	Retrieve(ctx context.Context, question string, topK int) ([]rag.Result, error)
}

// SnippetTranslator decides whether a display snippet needs translating and
// performs it.
type SnippetTranslator interface {
	MaybeTranslate(ctx context.Context, text string, target translate.Lang) translate.Result
}

// AskHandler handles HTTP requests for document search queries.
type AskHandler struct {
	retriever   SnippetRetriever
	vectorStore vectorstore.VectorStore
	gate        SnippetTranslator
	collection  string
}

// NewAskHandler creates a new AskHandler.
func NewAskHandler(retriever SnippetRetriever, vectorStore vectorstore.VectorStore, gate SnippetTranslator, collection string) *AskHandler {
	return &AskHandler{
		retriever:   retriever,
		vectorStore: vectorStore,
		gate:        gate,
		collection:  collection,
	}
}

// AskRequest represents the HTTP request payload for search queries.
type AskRequest struct {
	Question string `json:"question"`
	K        int    `json:"k,omitempty"`
	Lang     string `json:"lang,omitempty"`
}

// SnippetResponse is one retrieved passage, shaped for display.
type SnippetResponse struct {
	ChunkID     string  `json:"chunk_id"`
	Filename    string  `json:"filename"`
	Filetype    string  `json:"filetype"`
	Page        int     `json:"page"`
	ChunkIndex  int     `json:"chunk_index"`
	Score       float32 `json:"score"`
	Snippet     string  `json:"snippet"`
	Translation string  `json:"translation"`
}

// AskResponse represents the HTTP response payload for search queries.
type AskResponse struct {
	Question string            `json:"question"`
	Results  []SnippetResponse `json:"results"`
	Message  string            `json:"message,omitempty"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ServeHTTP handles HTTP requests for search queries.
//
// Rejects questions while the index is empty instead of returning a
// meaningless empty result set: an unbuilt index and a question with no
// matches are different situations and get different answers.
func (h *AskHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Question = strings.TrimSpace(req.Question)
	if req.Question == "" {
		logger.WarnContext(ctx, "empty question in request")
		writeError(w, http.StatusBadRequest, "Question is required")
		return
	}

	lang := translate.Lang(strings.ToLower(strings.TrimSpace(req.Lang)))
	switch lang {
	case "":
		lang = translate.LangEnglish
	case translate.LangEnglish, translate.LangChinese:
	default:
		logger.WarnContext(ctx, "unsupported display language", "lang", req.Lang)
		writeError(w, http.StatusBadRequest, "Unsupported lang, expected \"en\" or \"zh\"")
		return
	}

	count, err := h.vectorStore.Count(ctx, h.collection)
	if err != nil {
		logger.ErrorContext(ctx, "failed to count indexed chunks", "error", err)
		writeError(w, http.StatusServiceUnavailable, "Vector store unavailable")
		return
	}
	if count == 0 {
		writeJSON(w, http.StatusConflict, AskResponse{
			Question: req.Question,
			Results:  []SnippetResponse{},
			Message:  msgIndexEmpty,
		})
		return
	}

	results, err := h.retriever.Retrieve(ctx, req.Question, req.K)
	if err != nil {
		logger.ErrorContext(ctx, "retrieval failed", "error", err)
		writeError(w, http.StatusBadGateway, "Failed to process question")
		return
	}

	resp := AskResponse{
		Question: req.Question,
		Results:  make([]SnippetResponse, 0, len(results)),
	}
	for _, result := range results {
		snippet := shapeSnippet(result.Text)
		gated := h.gate.MaybeTranslate(ctx, snippet, lang)
		resp.Results = append(resp.Results, SnippetResponse{
			ChunkID:     result.Meta.ChunkID,
			Filename:    result.Meta.Filename,
			Filetype:    result.Meta.Filetype,
			Page:        result.Meta.Page,
			ChunkIndex:  result.Meta.ChunkIndex,
			Score:       result.Score,
			Snippet:     gated.Text,
			Translation: string(gated.Outcome),
		})
	}
	if len(resp.Results) == 0 {
		resp.Message = msgNoResults
	}

	writeJSON(w, http.StatusOK, resp)
}

// shapeSnippet flattens a chunk into a single display line and clips it.
func shapeSnippet(text string) string {
	flat := strings.Join(strings.Fields(text), " ")
	runes := []rune(flat)
	if len(runes) <= snippetMaxChars {
		return flat
	}
	return string(runes[:snippetMaxChars]) + "…"
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, ErrorResponse{Error: message})
}
