// Package catalog cross-references the tables of a metadata standard
// document: it collects the lookup tables into option lists and builds
// one record per field of the primary table.
package catalog

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/tsawler/metadict/model"
	"github.com/tsawler/metadict/odt"
)

// ErrPrimaryTableNotFound is returned when the document has no primary
// table, or the primary table has no rows.
var ErrPrimaryTableNotFound = errors.New("catalog: main table not found")

// Table is a parsed table together with its name and caption.
type Table struct {
	Name   string
	Title  string
	Parsed odt.ParsedTable
}

// Tables pairs scanned table records with their parsed rows. Both slices
// must be in the same order.
func Tables(records []odt.TableRecord, parsed []odt.ParsedTable) []Table {
	tables := make([]Table, 0, len(records))
	for i, rec := range records {
		tbl := Table{Name: rec.Name, Title: rec.Title}
		if i < len(parsed) {
			tbl.Parsed = parsed[i]
		}
		tables = append(tables, tbl)
	}
	return tables
}

// Result is the outcome of assembling a document.
type Result struct {
	Dictionary *model.Dictionary
	Lookups    *Lookups

	// Duplicates lists technical names that appeared on more than one
	// row. The last row won.
	Duplicates []string
}

// Assembler builds the metadata dictionary from parsed tables.
type Assembler struct {
	cfg Config
	log *zap.Logger
}

// NewAssembler creates an assembler. A nil logger discards output.
func NewAssembler(cfg Config, log *zap.Logger) *Assembler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Assembler{cfg: cfg, log: log}
}

// Run builds the lookups and then the dictionary.
func (a *Assembler) Run(tables []Table) (*Result, error) {
	lookups := a.BuildLookups(tables)
	dict, dups, err := a.Assemble(tables, lookups)
	if err != nil {
		return nil, err
	}
	return &Result{
		Dictionary: dict,
		Lookups:    lookups,
		Duplicates: dups,
	}, nil
}

// Assemble builds one record per data row of the primary table that has a
// technical name. The returned slice lists technical names that were
// overwritten by a later row.
func (a *Assembler) Assemble(tables []Table, lookups *Lookups) (*model.Dictionary, []string, error) {
	primary := a.primaryTable(tables)
	if primary == nil || primary.Parsed.RowCount() == 0 {
		return nil, nil, fmt.Errorf("%w: %q", ErrPrimaryTableNotFound, a.cfg.PrimaryTable)
	}
	if lookups == nil {
		lookups = NewLookups()
	}

	header := primary.Parsed.Header()
	dict := model.NewDictionary()
	var dups []string

	for _, cells := range primary.Parsed.Body() {
		if allEmpty(cells) {
			continue
		}

		row := model.ZipRow(header, cells)
		raw, ok := row.Get(a.cfg.TechnicalNameColumn)
		if !ok || raw == "" {
			continue
		}
		name := NormalizeTechnicalName(raw)
		if name == "" {
			continue
		}

		rec := model.NewRecord(row, a.cfg.OutputColumns)
		optionsText, _ := row.Get(a.cfg.OptionsColumn)
		if opts, ok := lookups.Resolve(name, optionsText); ok {
			rec.Options = opts
		}

		if dict.Set(name, rec) {
			dups = append(dups, name)
		}
	}

	a.log.Debug("Assembled metadata dictionary",
		zap.String("table", primary.Name),
		zap.Int("records", dict.Len()),
		zap.Int("lookups", lookups.Len()))

	return dict, dups, nil
}

// primaryTable returns the configured primary table, or nil.
func (a *Assembler) primaryTable(tables []Table) *Table {
	var found *Table
	for i := range tables {
		if tables[i].Name == a.cfg.PrimaryTable {
			found = &tables[i]
		}
	}
	return found
}

// allEmpty reports whether every cell of a row is empty.
func allEmpty(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}
