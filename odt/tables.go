package odt

import (
	"strconv"

	"github.com/beevik/etree"
)

// ParsedTable holds the cell text of a table, one slice per row. Header
// rows come first; cells keep their position within the row.
type ParsedTable struct {
	Rows [][]string
}

// Header returns the first row, or nil if the table has no rows.
func (pt *ParsedTable) Header() []string {
	if len(pt.Rows) == 0 {
		return nil
	}
	return pt.Rows[0]
}

// Body returns the rows after the header.
func (pt *ParsedTable) Body() [][]string {
	if len(pt.Rows) < 2 {
		return nil
	}
	return pt.Rows[1:]
}

// RowCount returns the total number of rows including the header.
func (pt *ParsedTable) RowCount() int {
	return len(pt.Rows)
}

// CellResolver turns a table cell into its text. Cells holding an
// auto-numbered list are rendered as the list's number, because the
// number is list metadata and not text content in the markup.
type CellResolver struct {
	styles  ListStyleMap
	counter *listCounter // nil unless continued numbering is enabled
}

// NewCellResolver creates a cell resolver over the given list styles.
// When continueNumbering is set, lists marked as continuing an earlier
// list count on from it instead of restarting at the style's start value.
func NewCellResolver(styles ListStyleMap, continueNumbering bool) *CellResolver {
	cr := &CellResolver{styles: styles}
	if continueNumbering {
		cr.counter = newListCounter()
	}
	return cr
}

// Resolve returns the text for a single cell.
func (cr *CellResolver) Resolve(cell *etree.Element) string {
	if n, ok := cr.listNumber(cell); ok {
		return strconv.Itoa(n)
	}
	return ElementText(cell)
}

// listNumber finds the first list below cell whose style is a known
// numbered style.
func (cr *CellResolver) listNumber(cell *etree.Element) (int, bool) {
	if cell == nil || len(cr.styles) == 0 {
		return 0, false
	}
	var (
		number int
		found  bool
	)
	descendants(cell, func(e *etree.Element) bool {
		if !isElement(e, nsText, "list") {
			return true
		}
		styleName, ok := attrValue(e, nsText, "style-name")
		if !ok {
			return true
		}
		start, ok := cr.styles[styleName]
		if !ok {
			return true
		}
		number = start
		if cr.counter != nil {
			number = cr.counter.next(styleName, start, continuesNumbering(e))
		}
		found = true
		return false
	})
	return number, found
}

// TableParser handles parsing of ODT tables.
type TableParser struct {
	cells *CellResolver
}

// NewTableParser creates a new table parser.
func NewTableParser(cells *CellResolver) *TableParser {
	return &TableParser{
		cells: cells,
	}
}

// Parse reads the rows of a <table:table> element. Rows inside
// <table:table-header-rows> are emitted before the body rows. Row lengths
// are not checked.
func (tp *TableParser) Parse(table *etree.Element) ParsedTable {
	var parsed ParsedTable
	if table == nil {
		return parsed
	}

	for _, group := range childElements(table, nsTable, "table-header-rows") {
		for _, row := range childElements(group, nsTable, "table-row") {
			parsed.Rows = append(parsed.Rows, tp.parseRow(row))
		}
	}

	for _, row := range childElements(table, nsTable, "table-row") {
		parsed.Rows = append(parsed.Rows, tp.parseRow(row))
	}

	return parsed
}

// parseRow resolves each <table:table-cell> of a row.
func (tp *TableParser) parseRow(row *etree.Element) []string {
	cells := childElements(row, nsTable, "table-cell")
	result := make([]string, 0, len(cells))
	for _, cell := range cells {
		result = append(result, tp.cells.Resolve(cell))
	}
	return result
}

// ParseTables parses each table record in order and returns the results
// aligned with records. Tables are parsed in document order so that
// continued list numbering carries across tables.
func (d *Document) ParseTables(records []TableRecord, continueNumbering bool) []ParsedTable {
	parser := NewTableParser(NewCellResolver(d.listStyles, continueNumbering))
	result := make([]ParsedTable, len(records))
	for i, rec := range records {
		result[i] = parser.Parse(rec.Element)
	}
	return result
}
