// Package translate decides when a retrieved snippet should be translated
// for display and talks to a local translation server to do it.
package translate

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_translator.go -package=mocks ragdesk/internal/translate Translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Lang is a display language code.
type Lang string

const (
	LangEnglish Lang = "en"
	LangChinese Lang = "zh"
)

// Translator translates text in one fixed direction. Implementations may be
// expensive to construct and are created once per direction, then reused.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// Client is a single-direction client for a LibreTranslate-compatible
// translation server.
type Client struct {
	BaseURL string
	APIKey  string
	Source  Lang
	Target  Lang
	client  *http.Client
}

// NewClient creates a translation client for one direction.
func NewClient(baseURL, apiKey string, source, target Lang) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Source:  source,
		Target:  target,
		client:  http.DefaultClient,
	}
}

// TranslateRequest represents the request payload for the translate API.
type TranslateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

// TranslateResponse represents the response from the translate API.
type TranslateResponse struct {
	TranslatedText string `json:"translatedText"`
}

// Translate sends text to the translation server and returns the translated
// text.
func (c *Client) Translate(ctx context.Context, text string) (string, error) {
	url := fmt.Sprintf("%s/translate", c.BaseURL)

	payload := TranslateRequest{
		Q:      text,
		Source: string(c.Source),
		Target: string(c.Target),
		Format: "text",
		APIKey: c.APIKey,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("bad status %d: %s", resp.StatusCode, string(raw))
	}

	var translateResp TranslateResponse
	if err := json.NewDecoder(resp.Body).Decode(&translateResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if translateResp.TranslatedText == "" {
		return "", fmt.Errorf("empty translation returned")
	}

	return translateResp.TranslatedText, nil
}
