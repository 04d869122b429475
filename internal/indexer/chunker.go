package indexer

import (
	"fmt"
	"strings"
)

const (
	// DefaultChunkSize is the window length in characters (runes, not
	// tokens, so no language-specific tokenization is involved).
	DefaultChunkSize = 700
	// DefaultChunkOverlap is how many characters consecutive windows share.
	DefaultChunkOverlap = 120
)

// ChunkText splits text into fixed-size overlapping character windows.
//
// Line endings are normalized (CRLF to LF) and surrounding whitespace is
// trimmed before windowing; an empty result yields no chunks. The window
// slides forward by size-overlap characters, so consecutive chunks share
// exactly overlap characters, except that the final chunk is clipped to the
// end of the text and may be shorter.
//
// size must be positive and overlap must satisfy 0 <= overlap < size; a
// non-positive step would never reach the end of the text.
func ChunkText(text string, size, overlap int) ([]string, error) {
	if size <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", size)
	}
	if overlap < 0 || overlap >= size {
		return nil, fmt.Errorf("chunk overlap must be in [0, size), got overlap=%d size=%d", overlap, size)
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	// Window over runes: chunk boundaries must count characters, not bytes,
	// or CJK text would get windows a third of the intended length.
	runes := []rune(text)
	n := len(runes)

	var chunks []string
	start := 0
	for start < n {
		end := start + size
		if end > n {
			end = n
		}
		chunks = append(chunks, string(runes[start:end]))
		if end == n {
			break
		}
		start = end - overlap
	}

	return chunks, nil
}
