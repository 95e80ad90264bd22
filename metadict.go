// Package metadict converts an OpenDocument export of a metadata standard
// into a JSON metadata dictionary keyed by technical field name.
//
// Basic usage:
//
//	warnings, err := metadict.Open("data/metadata_std.xml").
//	    WriteFile("data/metadata_std.json")
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", metadict.FormatWarnings(warnings))
//	}
//
// With options:
//
//	dict, _, err := metadict.Open("export.fodt").
//	    PrimaryTable("Fields").
//	    ContinueNumbering().
//	    Dictionary()
//
// The odt, catalog and model packages can be used directly for finer
// control over each step.
package metadict

import (
	"errors"

	"go.uber.org/zap"

	"github.com/tsawler/metadict/odt"
)

var (
	// ErrInputNotFound is returned when the input file does not exist.
	ErrInputNotFound = errors.New("metadict: input file not found")

	// ErrInvalidOption is returned by a terminal operation when a
	// configuration method received an unusable value.
	ErrInvalidOption = errors.New("metadict: invalid option")
)

// Open returns a Converter for the document at filename. The file is read
// by the terminal operation, not by Open.
//
// Example:
//
//	dict, warnings, err := metadict.Open("metadata_std.xml").Dictionary()
func Open(filename string) *Converter {
	return &Converter{
		filename: filename,
		options:  defaultOptions(),
		log:      zap.NewNop(),
	}
}

// FromDocument creates a Converter for an already parsed document.
//
// Example:
//
//	doc, err := odt.Open("metadata_std.xml")
//	if err != nil {
//	    // handle error
//	}
//	dict, warnings, err := metadict.FromDocument(doc).Dictionary()
func FromDocument(doc *odt.Document) *Converter {
	return &Converter{
		doc:     doc,
		options: defaultOptions(),
		log:     zap.NewNop(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	cfg := metadict.Must(metadict.LoadConfig("metadict.yaml"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustValue wraps a terminal operation such as Dictionary() or JSON() and
// panics if the error is non-nil. Warnings are discarded.
//
// Example:
//
//	dict := metadict.MustValue(metadict.Open("metadata_std.xml").Dictionary())
func MustValue[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
