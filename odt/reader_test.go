package odt

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const docHeader = `<?xml version="1.0" encoding="UTF-8"?>
<office:document xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0"
                 xmlns:style="urn:oasis:names:tc:opendocument:xmlns:style:1.0"
                 xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0"
                 xmlns:table="urn:oasis:names:tc:opendocument:xmlns:table:1.0">`

// flatDoc wraps body content (and optional automatic styles) in a flat
// OpenDocument file.
func flatDoc(styles, body string) string {
	return docHeader + `
  <office:automatic-styles>` + styles + `</office:automatic-styles>
  <office:body>
    <office:text>` + body + `</office:text>
  </office:body>
</office:document>`
}

// mustParse parses a flat document or fails the test.
func mustParse(t *testing.T, content string) *Document {
	t.Helper()
	doc, err := Parse([]byte(content))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return doc
}

// createTestODT creates a minimal ODT package for testing.
func createTestODT(t *testing.T, content, styles string) string {
	t.Helper()

	tmpDir := t.TempDir()
	odtPath := filepath.Join(tmpDir, "test.odt")

	f, err := os.Create(odtPath)
	if err != nil {
		t.Fatalf("failed to create ODT file: %v", err)
	}

	zw := zip.NewWriter(f)

	// Add mimetype file (must be first, uncompressed)
	mw, err := zw.CreateHeader(&zip.FileHeader{
		Name:   "mimetype",
		Method: zip.Store, // No compression
	})
	if err != nil {
		t.Fatalf("failed to create mimetype: %v", err)
	}
	mw.Write([]byte("application/vnd.oasis.opendocument.text"))

	cw, err := zw.Create("content.xml")
	if err != nil {
		t.Fatalf("failed to create content.xml: %v", err)
	}
	cw.Write([]byte(content))

	if styles != "" {
		sw, err := zw.Create("styles.xml")
		if err != nil {
			t.Fatalf("failed to create styles.xml: %v", err)
		}
		sw.Write([]byte(styles))
	}

	if err := zw.Close(); err != nil {
		t.Fatalf("failed to close zip: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("failed to close file: %v", err)
	}

	return odtPath
}

func TestParse_Body(t *testing.T) {
	doc := mustParse(t, flatDoc("", `<text:p>Hello</text:p>`))

	if doc.Body() == nil {
		t.Fatal("expected body element")
	}
	if doc.Body().Tag != "text" {
		t.Errorf("expected body tag 'text', got %q", doc.Body().Tag)
	}
	if doc.Root() == nil || doc.Root().Tag != "document" {
		t.Errorf("unexpected root element")
	}
}

func TestParse_ContentXML(t *testing.T) {
	content := `<?xml version="1.0" encoding="UTF-8"?>
<office:document-content xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0"
                         xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0">
  <office:body>
    <office:text>
      <text:p>Hello, World!</text:p>
    </office:text>
  </office:body>
</office:document-content>`

	doc := mustParse(t, content)
	if got := ElementText(doc.Body()); got != "Hello, World!" {
		t.Errorf("expected body text 'Hello, World!', got %q", got)
	}
}

func TestParse_MissingTextBody(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "no body",
			content: `<office:document xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0">
  <office:meta/>
</office:document>`,
		},
		{
			name: "spreadsheet body",
			content: `<office:document xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0">
  <office:body><office:spreadsheet/></office:body>
</office:document>`,
		},
		{
			name: "wrong namespace",
			content: `<office:document xmlns:office="urn:example:not-odf">
  <office:body><office:text/></office:body>
</office:document>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			if !errors.Is(err, ErrNoTextBody) {
				t.Errorf("expected ErrNoTextBody, got %v", err)
			}
		})
	}
}

func TestParse_MalformedXML(t *testing.T) {
	_, err := Parse([]byte(`<office:document><office:body>`))
	if err == nil {
		t.Fatal("expected error for malformed XML")
	}
	if errors.Is(err, ErrNoTextBody) {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestOpen_FlatXML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metadata_std.xml")
	body := `<table:table table:name="Table1">
        <table:table-row><table:table-cell><text:p>A1</text:p></table:table-cell></table:table-row>
      </table:table>`
	if err := os.WriteFile(path, []byte(flatDoc("", body)), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	doc, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	records := doc.ScanTables()
	if len(records) != 1 || records[0].Name != "Table1" {
		t.Fatalf("expected Table1, got %+v", records)
	}
}

func TestOpen_Package(t *testing.T) {
	content := `<?xml version="1.0" encoding="UTF-8"?>
<office:document-content xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0"
                         xmlns:style="urn:oasis:names:tc:opendocument:xmlns:style:1.0"
                         xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0"
                         xmlns:table="urn:oasis:names:tc:opendocument:xmlns:table:1.0">
  <office:automatic-styles>
    <text:list-style style:name="L2">
      <text:list-level-style-number text:level="1" text:start-value="7"/>
    </text:list-style>
  </office:automatic-styles>
  <office:body>
    <office:text>
      <table:table table:name="Table1">
        <table:table-row>
          <table:table-cell><text:list text:style-name="L1"><text:list-item><text:p/></text:list-item></text:list></table:table-cell>
          <table:table-cell><text:list text:style-name="L2"><text:list-item><text:p/></text:list-item></text:list></table:table-cell>
        </table:table-row>
      </table:table>
    </office:text>
  </office:body>
</office:document-content>`

	styles := `<?xml version="1.0" encoding="UTF-8"?>
<office:document-styles xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0"
                        xmlns:style="urn:oasis:names:tc:opendocument:xmlns:style:1.0"
                        xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0">
  <office:styles>
    <text:list-style style:name="L1">
      <text:list-level-style-number text:level="1" text:start-value="3"/>
    </text:list-style>
    <text:list-style style:name="L2">
      <text:list-level-style-number text:level="1" text:start-value="99"/>
    </text:list-style>
  </office:styles>
</office:document-styles>`

	path := createTestODT(t, content, styles)

	doc, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	ls := doc.ListStyles()
	if ls["L1"] != 3 {
		t.Errorf("expected L1 start 3 from styles.xml, got %d", ls["L1"])
	}
	if ls["L2"] != 7 {
		t.Errorf("expected content.xml to override L2 with 7, got %d", ls["L2"])
	}

	records := doc.ScanTables()
	parsed := doc.ParseTables(records, false)
	if len(parsed) != 1 {
		t.Fatalf("expected 1 table, got %d", len(parsed))
	}
	row := parsed[0].Rows[0]
	if len(row) != 2 || row[0] != "3" || row[1] != "7" {
		t.Errorf("expected [3 7], got %v", row)
	}
}

func TestOpenError_NonExistent(t *testing.T) {
	_, err := Open("nonexistent.odt")
	if err == nil {
		t.Error("expected error for non-existent file")
	}
	if !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestOpenError_InvalidZip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "invalid.odt")
	if err := os.WriteFile(path, []byte("not a zip file"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	_, err := Open(path)
	if err == nil {
		t.Error("expected error for invalid zip file")
	}
}

func TestOpenError_MissingContentXML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "missing_content.odt")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	zw := zip.NewWriter(f)
	mw, _ := zw.CreateHeader(&zip.FileHeader{
		Name:   "mimetype",
		Method: zip.Store,
	})
	mw.Write([]byte("application/vnd.oasis.opendocument.text"))
	zw.Close()
	f.Close()

	_, err = Open(path)
	if !errors.Is(err, ErrMissingContent) {
		t.Errorf("expected ErrMissingContent, got %v", err)
	}
}
