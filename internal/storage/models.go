package storage

import "time"

// DocumentRecord describes one source file as it was at the last rebuild.
type DocumentRecord struct {
	Filename   string
	Filetype   string // "text", "pdf" or "docx"
	Pages      int
	Chunks     int
	SizeKB     float64
	ModifiedAt time.Time
}

// RebuildRecord describes one completed index rebuild.
type RebuildRecord struct {
	RebuiltAt      time.Time
	Documents      int
	Chunks         int
	EmbeddingModel string
}
