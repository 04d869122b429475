package indexer

import "fmt"

// RebuildResult reports what a completed index rebuild ingested.
type RebuildResult struct {
	ChunkCount    int
	DocumentCount int
}

// ChunkID builds the composite chunk key "<filename>|p<page>|c<chunk_index>".
// It is unique across a rebuild as long as no two files share a name, and is
// stored in the point payload so retrieved chunks stay human-traceable.
func ChunkID(filename string, page, chunkIndex int) string {
	return fmt.Sprintf("%s|p%d|c%d", filename, page, chunkIndex)
}
