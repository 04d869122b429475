package rag

// ChunkMeta is the metadata stored alongside every chunk, enough to cite the
// exact source location of a retrieved snippet.
type ChunkMeta struct {
	ChunkID    string `json:"chunk_id"`
	Filename   string `json:"filename"`
	Filetype   string `json:"filetype"`
	Page       int    `json:"page"`
	ChunkIndex int    `json:"chunk_index"`
}

// Result is one retrieved chunk, paired with its source metadata and the
// store-reported similarity score.
type Result struct {
	Text  string    `json:"text"`
	Meta  ChunkMeta `json:"meta"`
	Score float32   `json:"score"`
}
