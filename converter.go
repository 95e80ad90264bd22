package metadict

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/tsawler/metadict/catalog"
	"github.com/tsawler/metadict/model"
	"github.com/tsawler/metadict/odt"
)

// Converter provides a fluent interface for converting a metadata standard
// document into a dictionary. Each configuration method returns a new
// Converter instance, making it safe for concurrent use and allowing
// method chaining.
type Converter struct {
	// Source
	filename string
	doc      *odt.Document

	// Configuration
	options Options
	log     *zap.Logger

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Converter with a deep copy of options.
func (c *Converter) clone() *Converter {
	return &Converter{
		filename: c.filename,
		doc:      c.doc,
		options:  c.options.clone(),
		log:      c.log,
		err:      c.err,
	}
}

// ============================================================================
// Configuration Methods (return new Converter instance)
// ============================================================================

// PrimaryTable sets the table:name of the master field table.
//
// Example:
//
//	dict, _, err := metadict.Open("export.xml").PrimaryTable("Table2").Dictionary()
func (c *Converter) PrimaryTable(name string) *Converter {
	newConv := c.clone()
	if name == "" {
		newConv.fail("primary table name is empty")
		return newConv
	}
	newConv.options.primaryTable = name
	return newConv
}

// LookupMarker sets the text a caption must contain for its table to be
// used as a lookup table.
func (c *Converter) LookupMarker(marker string) *Converter {
	newConv := c.clone()
	if marker == "" {
		newConv.fail("lookup marker is empty")
		return newConv
	}
	newConv.options.lookupMarker = marker
	return newConv
}

// TechnicalNameColumn sets the primary-table column that holds each
// record's key.
func (c *Converter) TechnicalNameColumn(column string) *Converter {
	newConv := c.clone()
	if column == "" {
		newConv.fail("technical name column is empty")
		return newConv
	}
	newConv.options.technicalNameColumn = column
	return newConv
}

// OptionsColumn sets the primary-table column searched for a quoted
// lookup reference.
func (c *Converter) OptionsColumn(column string) *Converter {
	newConv := c.clone()
	if column == "" {
		newConv.fail("options column is empty")
		return newConv
	}
	newConv.options.optionsColumn = column
	return newConv
}

// OutputColumns sets the primary-table columns copied into each record,
// in output order.
func (c *Converter) OutputColumns(columns ...string) *Converter {
	newConv := c.clone()
	if len(columns) == 0 {
		newConv.fail("no output columns")
		return newConv
	}
	newConv.options.outputColumns = append([]string(nil), columns...)
	return newConv
}

// ContinueNumbering makes numbered lists that carry
// text:continue-numbering="true" or text:continue-list resume from the
// previous list of the same style instead of restarting at the style's
// start value.
func (c *Converter) ContinueNumbering() *Converter {
	newConv := c.clone()
	newConv.options.continueNumbering = true
	return newConv
}

// WithConfig applies the non-empty values of a loaded configuration file.
//
// Example:
//
//	cfg, err := metadict.LoadConfig("metadict.yaml")
//	if err != nil {
//	    // handle error
//	}
//	_, err = metadict.Open("export.xml").WithConfig(cfg).WriteFile("out.json")
func (c *Converter) WithConfig(cfg *FileConfig) *Converter {
	newConv := c.clone()
	newConv.options = c.options.apply(cfg)
	return newConv
}

// WithLogger sets the logger used for debug output. A nil logger
// disables logging.
func (c *Converter) WithLogger(log *zap.Logger) *Converter {
	newConv := c.clone()
	if log == nil {
		log = zap.NewNop()
	}
	newConv.log = log
	return newConv
}

// fail records a configuration error unless one is already pending.
func (c *Converter) fail(msg string) {
	if c.err == nil {
		c.err = fmt.Errorf("%w: %s", ErrInvalidOption, msg)
	}
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Dictionary builds the metadata dictionary. Warnings report non-fatal
// issues such as duplicate technical names.
//
// Example:
//
//	dict, warnings, err := metadict.Open("metadata_std.xml").Dictionary()
func (c *Converter) Dictionary() (*model.Dictionary, []Warning, error) {
	res, warnings, err := c.convert()
	if err != nil {
		return nil, warnings, err
	}
	return res.Dictionary, warnings, nil
}

// Lookups builds only the lookup dictionary. It does not require the
// primary table.
func (c *Converter) Lookups() (*catalog.Lookups, []Warning, error) {
	tables, warnings, err := c.tables()
	if err != nil {
		return nil, warnings, err
	}
	asm := catalog.NewAssembler(c.options.catalogConfig(), c.log)
	return asm.BuildLookups(tables), warnings, nil
}

// JSON builds the dictionary and returns its indented JSON encoding,
// terminated by a newline.
func (c *Converter) JSON() ([]byte, []Warning, error) {
	dict, warnings, err := c.Dictionary()
	if err != nil {
		return nil, warnings, err
	}
	data, err := dict.JSON()
	if err != nil {
		return nil, warnings, fmt.Errorf("encoding dictionary: %w", err)
	}
	return data, warnings, nil
}

// WriteFile builds the dictionary and writes its JSON encoding to out. The
// file is only created once the whole dictionary has been encoded, so a
// failed conversion leaves no output behind.
func (c *Converter) WriteFile(out string) ([]Warning, error) {
	data, warnings, err := c.JSON()
	if err != nil {
		return warnings, err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return warnings, fmt.Errorf("writing %s: %w", out, err)
	}
	return warnings, nil
}

// convert runs the assembler over the document's tables.
func (c *Converter) convert() (*catalog.Result, []Warning, error) {
	tables, warnings, err := c.tables()
	if err != nil {
		return nil, warnings, err
	}

	res, err := catalog.NewAssembler(c.options.catalogConfig(), c.log).Run(tables)
	if err != nil {
		return nil, warnings, err
	}

	for _, name := range res.Duplicates {
		warnings = append(warnings, duplicateTechnicalName(name))
	}
	return res, warnings, nil
}

// tables scans and parses every named table of the document.
func (c *Converter) tables() ([]catalog.Table, []Warning, error) {
	if c.err != nil {
		return nil, nil, c.err
	}

	doc, err := c.document()
	if err != nil {
		return nil, nil, err
	}

	records := doc.ScanTables()
	parsed := doc.ParseTables(records, c.options.continueNumbering)

	var warnings []Warning
	for _, rec := range records {
		if rec.Replaced {
			warnings = append(warnings, duplicateTableName(rec.Name))
		}
	}

	c.log.Debug("Scanned document",
		zap.String("file", c.filename),
		zap.Int("tables", len(records)),
		zap.Int("list_styles", len(doc.ListStyles())))

	return catalog.Tables(records, parsed), warnings, nil
}

// document returns the parsed document, reading the file if needed.
func (c *Converter) document() (*odt.Document, error) {
	if c.doc != nil {
		return c.doc, nil
	}
	if c.filename == "" {
		return nil, fmt.Errorf("%w: no filename specified", ErrInvalidOption)
	}

	if _, err := os.Stat(c.filename); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, c.filename)
	}

	doc, err := odt.Open(c.filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", c.filename, err)
	}
	return doc, nil
}
