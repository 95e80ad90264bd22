// Package odt reads OpenDocument text exports: it locates the document
// body, pairs tables with their captions and turns table cells into text.
package odt

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/beevik/etree"
	"github.com/tsawler/metadict/format"
)

var (
	// ErrNoTextBody is returned when the document has no <office:body>/<office:text>.
	ErrNoTextBody = errors.New("odt: <office:text> element not found")
	// ErrMissingContent is returned when an .odt package has no content.xml.
	ErrMissingContent = errors.New("odt: missing required file: content.xml")
)

// Open reads an OpenDocument file. Flat XML files (.fodt, .xml or an
// extracted content.xml) and zipped .odt packages are both accepted.
func Open(filename string) (*Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", filename, err)
	}

	kind, err := format.DetectFromReader(f, info.Size())
	if err != nil || kind == format.Unknown {
		kind = format.Detect(filename)
	}

	if kind == format.ODT {
		return readPackage(f, info.Size())
	}

	data, err := io.ReadAll(io.NewSectionReader(f, 0, info.Size()))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	return Parse(data)
}

// Parse parses a flat OpenDocument XML file held in memory.
func Parse(data []byte) (*Document, error) {
	tree := etree.NewDocument()
	if err := tree.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parsing XML: %w", err)
	}
	return newDocument(tree)
}

// readPackage reads content.xml, and styles.xml when present, from a
// zipped .odt package.
func readPackage(r io.ReaderAt, size int64) (*Document, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	content, err := readZipFile(zr, "content.xml")
	if err != nil {
		return nil, err
	}
	tree := etree.NewDocument()
	if err := tree.ReadFromBytes(content); err != nil {
		return nil, fmt.Errorf("parsing content.xml: %w", err)
	}

	// styles.xml is optional; its list styles are overridden by the
	// automatic styles in content.xml.
	var styleRoots []*etree.Element
	if data, err := readZipFile(zr, "styles.xml"); err == nil {
		styles := etree.NewDocument()
		if err := styles.ReadFromBytes(data); err == nil {
			styleRoots = append(styleRoots, styles.Root())
		}
	}

	return newDocument(tree, styleRoots...)
}

// readZipFile returns the content of a file in the archive.
func readZipFile(zr *zip.Reader, name string) ([]byte, error) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", name, err)
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	if name == "content.xml" {
		return nil, ErrMissingContent
	}
	return nil, fmt.Errorf("file not found: %s", name)
}

// newDocument locates the text body and resolves list styles. Styles from
// extra roots are merged before those of the main tree.
func newDocument(tree *etree.Document, styleRoots ...*etree.Element) (*Document, error) {
	root := tree.Root()
	if root == nil {
		return nil, ErrNoTextBody
	}

	body := firstChild(root, nsOffice, "body")
	if body == nil {
		return nil, ErrNoTextBody
	}
	text := firstChild(body, nsOffice, "text")
	if text == nil {
		return nil, ErrNoTextBody
	}

	styles := make(ListStyleMap)
	for _, sr := range styleRoots {
		if sr != nil {
			mergeListStyles(styles, sr)
		}
	}
	mergeListStyles(styles, root)

	return &Document{
		tree:       tree,
		body:       text,
		listStyles: styles,
	}, nil
}
