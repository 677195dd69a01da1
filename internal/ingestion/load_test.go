package ingestion

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/kevohmutwiri9-creator/my-ats-resume-builder-sub000/internal/fetch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

// buildDocx assembles a minimal .docx with one paragraph per entry.
func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	var body bytes.Buffer
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`)
	}

	files := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`,
		"word/document.xml": `<?xml version="1.0" encoding="UTF-8"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
			body.String() + `</w:body></w:document>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"resume.txt", FormatText},
		{"README.MD", FormatText},
		{"resume.pdf", FormatPDF},
		{"resume.DOCX", FormatDOCX},
		{"posting.htm", FormatHTML},
		{"notes", FormatText},
		{"resume.cv", FormatText},
	}
	for _, tt := range tests {
		got, err := DetectFormat(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}

	_, err := DetectFormat("resume.doc")
	var unsupported *UnsupportedFormatError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, ".doc", unsupported.Extension)
	assert.Contains(t, err.Error(), ".docx")
}

func TestLoadFile_Text(t *testing.T) {
	path := writeFile(t, t.TempDir(), "resume.md", []byte("# Jane   Doe\r\n\r\n\r\n\r\nPython"))

	doc, err := LoadFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "# Jane Doe\n\nPython", doc.Text)
	assert.Equal(t, FormatText, doc.Metadata.Format)
	assert.Equal(t, path, doc.Metadata.Source)
	assert.Equal(t, "resume.md", doc.Name())
	assert.Len(t, doc.Metadata.Hash, 64)
}

func TestLoadFile_SameContentSameHash(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", []byte("Same content"))
	b := writeFile(t, dir, "b.txt", []byte("Same   content\n"))
	c := writeFile(t, dir, "c.txt", []byte("Other content"))

	docA, err := LoadFile(context.Background(), a)
	require.NoError(t, err)
	docB, err := LoadFile(context.Background(), b)
	require.NoError(t, err)
	docC, err := LoadFile(context.Background(), c)
	require.NoError(t, err)

	assert.Equal(t, docA.Metadata.Hash, docB.Metadata.Hash)
	assert.NotEqual(t, docA.Metadata.Hash, docC.Metadata.Hash)
}

func TestLoadFile_HTML(t *testing.T) {
	html := `<html><body><nav>Menu</nav><main><h1>Jane Doe</h1><ul><li>Built APIs</li></ul></main></body></html>`
	path := writeFile(t, t.TempDir(), "resume.html", []byte(html))

	doc, err := LoadFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe\n- Built APIs", doc.Text)
	assert.Equal(t, FormatHTML, doc.Metadata.Format)
}

func TestLoadFile_DOCX(t *testing.T) {
	path := writeFile(t, t.TempDir(), "resume.docx", buildDocx(t, "Jane Doe", "Python &amp; SQL"))

	doc, err := LoadFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe\nPython & SQL", doc.Text)
	assert.Equal(t, FormatDOCX, doc.Metadata.Format)
}

func TestLoadFile_CorruptBinary(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"resume.pdf", "resume.docx"} {
		path := writeFile(t, dir, name, []byte("definitely not a real document"))

		_, err := LoadFile(context.Background(), path)

		var extractErr *ExtractionError
		require.True(t, errors.As(err, &extractErr), name)
		assert.Equal(t, path, extractErr.Path)
	}
}

func TestLoadFile_NotFound(t *testing.T) {
	_, err := LoadFile(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))

	var extractErr *ExtractionError
	require.True(t, errors.As(err, &extractErr))
	assert.Contains(t, err.Error(), "file not found")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadFile_Unsupported(t *testing.T) {
	path := writeFile(t, t.TempDir(), "resume.rtf", []byte("{\\rtf1}"))

	_, err := LoadFile(context.Background(), path)

	var unsupported *UnsupportedFormatError
	assert.True(t, errors.As(err, &unsupported))
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.txt", []byte("Bob"))
	writeFile(t, dir, "a.md", []byte("Alice"))
	writeFile(t, dir, "photo.png", []byte{0x89, 0x50})
	writeFile(t, dir, "notes", []byte("skipped"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.txt"), 0755))

	docs, err := LoadDir(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, "a.md", docs[0].Name())
	assert.Equal(t, "Alice", docs[0].Text)
	assert.Equal(t, "b.txt", docs[1].Name())
}

func TestLoadDir_Missing(t *testing.T) {
	_, err := LoadDir(context.Background(), filepath.Join(t.TempDir(), "nope"))

	var extractErr *ExtractionError
	assert.True(t, errors.As(err, &extractErr))
}

func TestLoadURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><main><h2>Requirements</h2><p>Python,   SQL</p></main></body></html>`))
	}))
	defer server.Close()

	doc, err := LoadURL(context.Background(), server.URL, fetch.JobOptions{})
	require.NoError(t, err)

	assert.Equal(t, "Requirements\nPython, SQL", doc.Text)
	assert.Equal(t, FormatURL, doc.Metadata.Format)
	assert.Equal(t, string(fetch.PlatformUnknown), doc.Metadata.Platform)
	assert.Equal(t, server.URL, doc.Metadata.Source)
}

func TestDocxXMLToText(t *testing.T) {
	xml := `<w:body><w:p><w:r><w:t>Skills</w:t></w:r></w:p><w:p><w:r><w:t>Go</w:t><w:tab/><w:t>SQL</w:t><w:br/><w:t>Docker</w:t></w:r></w:p></w:body>`

	assert.Equal(t, "Skills\nGo\tSQL\nDocker\n", docxXMLToText(xml))
}
