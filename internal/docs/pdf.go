package docs

import (
	"github.com/ledongthuc/pdf"
)

// readPDF extracts text from every page of a PDF file. Page indices stay
// contiguous and zero-based so retrieved chunks can cite the physical page:
// a page whose text cannot be extracted becomes an empty page, never a gap.
// Only a file-level open failure aborts the load.
func readPDF(path string) ([]Page, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	total := reader.NumPage()
	pages := make([]Page, 0, total)
	for i := 1; i <= total; i++ {
		pages = append(pages, Page{
			Text:  extractPageText(reader, i),
			Index: i - 1,
		})
	}
	return pages, nil
}

// extractPageText pulls the plain text of one page, recovering from parser
// panics on malformed content streams. Any per-page failure yields "".
func extractPageText(reader *pdf.Reader, pageNum int) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()

	page := reader.Page(pageNum)
	if page.V.IsNull() {
		return ""
	}

	text, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return text
}
