package docs

import "time"

// Filetype identifies the parser used for a source file.
type Filetype string

const (
	FiletypeText Filetype = "text"
	FiletypePDF  Filetype = "pdf"
	FiletypeDOCX Filetype = "docx"
)

// Page is one unit of extracted text. Text files and DOCX files produce a
// single page with index 0; PDF files produce one page per physical page.
type Page struct {
	Text  string // Extracted text, may be empty for unextractable PDF pages
	Index int    // Zero-based page number
}

// Document is a parsed source file. Documents are transient: they exist only
// between loading and chunking and are never persisted.
type Document struct {
	Filename string
	Filetype Filetype
	Pages    []Page
}

// FileInfo describes a supported file inside the docs directory, used for
// display listings.
type FileInfo struct {
	Name     string    `json:"file"`
	Type     string    `json:"type"`
	SizeKB   float64   `json:"size_kb"`
	Modified time.Time `json:"modified"`
}
