package odt

import (
	"github.com/beevik/etree"
)

// TableRecord is a named table found in the document body together with
// its caption.
type TableRecord struct {
	Name    string
	Title   string // caption paragraph text, or Name when there is none
	Element *etree.Element

	// Replaced is set when an earlier table with the same name was
	// dropped in favour of this one.
	Replaced bool
}

// ScanTables walks the direct children of the document body once and
// returns every named table in document order. The caption of a table is
// the text of the paragraph immediately before it. Tables without a
// table:name are skipped. When two tables share a name the later one
// replaces the earlier record but keeps its position.
func (d *Document) ScanTables() []TableRecord {
	if d.body == nil {
		return nil
	}

	var records []TableRecord
	index := make(map[string]int)

	var prev *etree.Element
	for _, child := range d.body.ChildElements() {
		if isElement(child, nsTable, "table") {
			if rec, ok := newTableRecord(child, prev); ok {
				if i, seen := index[rec.Name]; seen {
					rec.Replaced = true
					records[i] = rec
				} else {
					index[rec.Name] = len(records)
					records = append(records, rec)
				}
			}
		}
		prev = child
	}

	return records
}

// newTableRecord builds the record for table, using prev as the caption
// candidate.
func newTableRecord(table, prev *etree.Element) (TableRecord, bool) {
	name, _ := attrValue(table, nsTable, "name")
	if name == "" {
		return TableRecord{}, false
	}

	rec := TableRecord{
		Name:    name,
		Title:   name,
		Element: table,
	}
	if isElement(prev, nsText, "p") {
		if caption := ElementText(prev); caption != "" {
			rec.Title = caption
		}
	}
	return rec, true
}
