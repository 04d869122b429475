package docs

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// readDOCX extracts the paragraph text of a DOCX file as a single synthetic
// page. A DOCX file is a zip archive whose main content lives in
// word/document.xml; paragraphs (<w:p>) are joined with newlines, preserving
// empty paragraphs as blank lines. A corrupt archive or missing document
// part fails the whole file.
func readDOCX(path string) ([]Page, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open docx archive: %w", err)
	}
	defer func() {
		_ = archive.Close()
	}()

	var document *zip.File
	for _, file := range archive.File {
		if file.Name == "word/document.xml" {
			document = file
			break
		}
	}
	if document == nil {
		return nil, fmt.Errorf("docx archive has no word/document.xml")
	}

	rc, err := document.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open document part: %w", err)
	}
	defer func() {
		_ = rc.Close()
	}()

	paragraphs, err := extractParagraphs(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document part: %w", err)
	}

	return []Page{{Text: strings.Join(paragraphs, "\n"), Index: 0}}, nil
}

// extractParagraphs streams WordprocessingML and collects the concatenated
// run text (<w:t>) of each paragraph (<w:p>). Paragraphs nested inside
// another paragraph (text boxes) are folded into their enclosing paragraph.
func extractParagraphs(r io.Reader) ([]string, error) {
	decoder := xml.NewDecoder(r)

	var paragraphs []string
	var current strings.Builder
	depth := 0  // open <w:p> elements
	inText := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			switch tok.Name.Local {
			case "p":
				depth++
			case "t":
				if depth > 0 {
					inText = true
				}
			}
		case xml.EndElement:
			switch tok.Name.Local {
			case "p":
				if depth > 0 {
					depth--
					if depth == 0 {
						paragraphs = append(paragraphs, current.String())
						current.Reset()
					}
				}
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				current.Write(tok)
			}
		}
	}

	return paragraphs, nil
}
