package docs

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

const documentXMLHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`

const documentXMLFooter = `</w:body></w:document>`

// writeDOCX assembles a minimal DOCX archive containing the given
// WordprocessingML body.
func writeDOCX(t *testing.T, path, body string) {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(documentXMLHeader + body + documentXMLFooter)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestReadDOCX_ParagraphsJoinedByNewline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "memo.docx")
	writeDOCX(t, path,
		`<w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t>Second </w:t></w:r><w:r><w:t>paragraph.</w:t></w:r></w:p>`+
			`<w:p></w:p>`+
			`<w:p><w:r><w:t>你好世界</w:t></w:r></w:p>`)

	pages, err := readDOCX(path)
	if err != nil {
		t.Fatalf("readDOCX() error = %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("readDOCX() returned %d pages, want 1 synthetic page", len(pages))
	}
	if pages[0].Index != 0 {
		t.Errorf("page index = %d, want 0", pages[0].Index)
	}

	want := "First paragraph.\nSecond paragraph.\n\n你好世界"
	if pages[0].Text != want {
		t.Errorf("page text = %q, want %q", pages[0].Text, want)
	}
}

func TestReadDOCX_CorruptArchive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.docx")
	if err := os.WriteFile(path, []byte("this is not a zip archive"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := readDOCX(path); err == nil {
		t.Fatal("readDOCX() expected error for corrupt archive")
	}
}

func TestReadDOCX_MissingDocumentPart(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.docx")

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/other.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("<x/>")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := readDOCX(path); err == nil {
		t.Fatal("readDOCX() expected error for archive without word/document.xml")
	}
}

func TestLoadDirectory_DOCX(t *testing.T) {
	dir := t.TempDir()
	writeDOCX(t, filepath.Join(dir, "memo.docx"), `<w:p><w:r><w:t>hello</w:t></w:r></w:p>`)

	documents, err := LoadDirectory(dir)
	if err != nil {
		t.Fatalf("LoadDirectory() error = %v", err)
	}
	if len(documents) != 1 {
		t.Fatalf("got %d documents, want 1", len(documents))
	}
	if documents[0].Filetype != FiletypeDOCX {
		t.Errorf("Filetype = %q, want %q", documents[0].Filetype, FiletypeDOCX)
	}
	if documents[0].Pages[0].Text != "hello" {
		t.Errorf("page text = %q, want %q", documents[0].Pages[0].Text, "hello")
	}
}

func TestLoadDirectory_CorruptDOCXAbortsLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "fine.txt", "healthy file")
	if err := os.WriteFile(filepath.Join(dir, "broken.docx"), []byte("junk"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadDirectory(dir); err == nil {
		t.Fatal("LoadDirectory() expected error when one file is unparseable")
	}
}
