// Package format provides input format detection for the metadict library.
package format

import (
	"archive/zip"
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// FlatXML indicates a single OpenDocument XML file (.fodt, .xml, content.xml).
	FlatXML
	// ODT indicates a zipped OpenDocument Text (.odt) package.
	ODT
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FlatXML:
		return "FlatXML"
	case ODT:
		return "ODT"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case FlatXML:
		return ".xml"
	case ODT:
		return ".odt"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xml", ".fodt":
		return FlatXML
	case ".odt":
		return ODT
	default:
		return Unknown
	}
}

// DetectFromMagic checks leading bytes to determine format.
// Returns Unknown if the format cannot be determined from magic bytes alone.
func DetectFromMagic(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}

	// ZIP magic: PK\x03\x04. The package contents decide whether it is an
	// ODT; use DetectFromReader for that.
	if data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04 {
		return Unknown
	}

	if detectXMLMagic(data) {
		return FlatXML
	}

	return Unknown
}

// detectXMLMagic checks if the data looks like XML content.
func detectXMLMagic(data []byte) bool {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	data = bytes.TrimLeft(data, " \t\r\n")
	return bytes.HasPrefix(data, []byte("<?xml")) || bytes.HasPrefix(data, []byte("<office:"))
}

// DetectFromReader inspects the content to determine format.
// This is more reliable than extension-based detection.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, 512)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	magic = magic[:n]

	if len(magic) >= 4 && magic[0] == 0x50 && magic[1] == 0x4B && magic[2] == 0x03 && magic[3] == 0x04 {
		return detectZIPFormat(r, size)
	}

	if detectXMLMagic(magic) {
		return FlatXML, nil
	}

	return Unknown, nil
}

// detectZIPFormat inspects a ZIP archive for the OpenDocument Text
// mimetype entry.
func detectZIPFormat(r io.ReaderAt, size int64) (Format, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}

	for _, f := range zr.File {
		if f.Name != "mimetype" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return Unknown, nil
		}
		data := make([]byte, 256)
		n, _ := rc.Read(data)
		rc.Close()
		if strings.Contains(string(data[:n]), "application/vnd.oasis.opendocument.text") {
			return ODT, nil
		}
	}

	return Unknown, nil
}
