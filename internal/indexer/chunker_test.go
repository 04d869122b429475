package indexer

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestChunkText_InvalidArguments(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		overlap int
	}{
		{"zero size", 0, 0},
		{"negative size", -1, 0},
		{"negative overlap", 10, -1},
		{"overlap equals size", 10, 10},
		{"overlap exceeds size", 10, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ChunkText("some text", tt.size, tt.overlap); err == nil {
				t.Errorf("ChunkText(size=%d, overlap=%d) expected error", tt.size, tt.overlap)
			}
		})
	}
}

func TestChunkText_EmptyAndBlankInput(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\r\n\t"} {
		chunks, err := ChunkText(in, 10, 2)
		if err != nil {
			t.Fatalf("ChunkText(%q) error = %v", in, err)
		}
		if len(chunks) != 0 {
			t.Errorf("ChunkText(%q) = %d chunks, want 0", in, len(chunks))
		}
	}
}

func TestChunkText_ShortInputSingleChunk(t *testing.T) {
	chunks, err := ChunkText("  short text  ", 700, 120)
	if err != nil {
		t.Fatalf("ChunkText() error = %v", err)
	}
	if len(chunks) != 1 {
		t.Fatalf("ChunkText() = %d chunks, want exactly 1 for input shorter than size", len(chunks))
	}
	if chunks[0] != "short text" {
		t.Errorf("chunk = %q, want trimmed input", chunks[0])
	}
}

func TestChunkText_WindowGeometry(t *testing.T) {
	text := strings.Repeat("a", 25)
	chunks, err := ChunkText(text, 10, 3)
	if err != nil {
		t.Fatalf("ChunkText() error = %v", err)
	}

	// step = 7: [0:10) [7:17) [14:24) [21:25)
	wantLens := []int{10, 10, 10, 4}
	if len(chunks) != len(wantLens) {
		t.Fatalf("ChunkText() = %d chunks, want %d", len(chunks), len(wantLens))
	}
	for i, chunk := range chunks {
		if len(chunk) != wantLens[i] {
			t.Errorf("chunk %d length = %d, want %d", i, len(chunk), wantLens[i])
		}
	}
}

func TestChunkText_CoverageReconstruction(t *testing.T) {
	// Concatenating chunks with the overlap removed must reconstruct the
	// normalized input exactly.
	inputs := []string{
		"The quick brown fox jumps over the lazy dog, twice at least.",
		strings.Repeat("0123456789", 13),
		"返品は30日以内に限り受け付けます。" + strings.Repeat("你好世界", 20),
	}
	size, overlap := 16, 5

	for _, input := range inputs {
		chunks, err := ChunkText(input, size, overlap)
		if err != nil {
			t.Fatalf("ChunkText() error = %v", err)
		}
		if len(chunks) == 0 {
			t.Fatal("ChunkText() returned no chunks for non-empty input")
		}

		var rebuilt []rune
		for i, chunk := range chunks {
			runes := []rune(chunk)
			if i == 0 {
				rebuilt = append(rebuilt, runes...)
				continue
			}
			rebuilt = append(rebuilt, runes[overlap:]...)
		}

		want := strings.TrimSpace(strings.ReplaceAll(input, "\r\n", "\n"))
		if string(rebuilt) != want {
			t.Errorf("reconstructed text differs from input:\ngot  %q\nwant %q", string(rebuilt), want)
		}
	}
}

func TestChunkText_RuneBasedWindows(t *testing.T) {
	// 30 CJK characters: 90 bytes but 30 characters. With size 20 the first
	// window must hold 20 characters, not 20 bytes.
	text := strings.Repeat("你好世", 10)
	chunks, err := ChunkText(text, 20, 5)
	if err != nil {
		t.Fatalf("ChunkText() error = %v", err)
	}
	if got := utf8.RuneCountInString(chunks[0]); got != 20 {
		t.Errorf("first chunk has %d characters, want 20", got)
	}
}

func TestChunkText_NormalizesCRLF(t *testing.T) {
	chunks, err := ChunkText("line one\r\nline two", 700, 120)
	if err != nil {
		t.Fatalf("ChunkText() error = %v", err)
	}
	if chunks[0] != "line one\nline two" {
		t.Errorf("chunk = %q, want CRLF normalized to LF", chunks[0])
	}
}

func TestChunkText_ZeroOverlap(t *testing.T) {
	chunks, err := ChunkText(strings.Repeat("x", 30), 10, 0)
	if err != nil {
		t.Fatalf("ChunkText() error = %v", err)
	}
	if len(chunks) != 3 {
		t.Fatalf("ChunkText() = %d chunks, want 3", len(chunks))
	}
	if joined := strings.Join(chunks, ""); joined != strings.Repeat("x", 30) {
		t.Errorf("zero-overlap chunks should tile the input exactly")
	}
}
