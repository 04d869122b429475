// Package docs loads supported documents (.txt, .pdf, .docx) from a single
// directory and turns them into page-indexed text for chunking.
package docs

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// supportedExt maps lowercase file extensions to their filetype.
var supportedExt = map[string]Filetype{
	".txt":  FiletypeText,
	".pdf":  FiletypePDF,
	".docx": FiletypeDOCX,
}

// LoadDirectory parses every supported file directly inside dir and returns
// the resulting documents in lexicographic filename order. Subdirectories
// are not descended into; unsupported extensions and non-regular files are
// skipped silently.
//
// A file that cannot be parsed at all aborts the whole load: callers rebuild
// the index from scratch and a half-loaded corpus would silently drop
// content.
func LoadDirectory(dir string) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read docs directory: %w", err)
	}

	var documents []Document
	// os.ReadDir returns entries sorted by filename.
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		// Stat follows symlinks, so a symlink to a regular file qualifies
		// while a symlink to a directory does not.
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		filetype, ok := supportedExt[strings.ToLower(filepath.Ext(entry.Name()))]
		if !ok {
			continue
		}

		var pages []Page
		switch filetype {
		case FiletypeText:
			pages, err = readText(path)
		case FiletypePDF:
			pages, err = readPDF(path)
		case FiletypeDOCX:
			pages, err = readDOCX(path)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", entry.Name(), err)
		}

		documents = append(documents, Document{
			Filename: entry.Name(),
			Filetype: filetype,
			Pages:    pages,
		})
	}

	return documents, nil
}

// ListFiles returns display rows for the supported files inside dir, in
// lexicographic order. A missing or unreadable directory yields an empty
// listing rather than an error, matching the "nothing detected" display
// state.
func ListFiles(dir string) []FileInfo {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var rows []FileInfo
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if _, ok := supportedExt[ext]; !ok {
			continue
		}

		rows = append(rows, FileInfo{
			Name:     entry.Name(),
			Type:     strings.TrimPrefix(ext, "."),
			SizeKB:   math.Round(float64(info.Size())/1024*10) / 10,
			Modified: info.ModTime(),
		})
	}

	return rows
}

// readText reads a plain-text file as a single page. Invalid UTF-8 bytes are
// dropped rather than surfaced: one bad byte must never abort ingestion.
func readText(path string) ([]Page, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return []Page{{Text: strings.ToValidUTF8(string(raw), ""), Index: 0}}, nil
}
