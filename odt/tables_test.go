package odt

import (
	"reflect"
	"testing"
)

const numberedStyles = `
    <text:list-style style:name="WWNum5">
      <text:list-level-style-number text:level="1" text:start-value="5"/>
    </text:list-style>
    <text:list-style style:name="WWNum1">
      <text:list-level-style-number text:level="1" text:start-value="1"/>
    </text:list-style>`

// numberedCell returns a cell holding an auto-numbered list item.
func numberedCell(style, attrs, literal string) string {
	return `<table:table-cell><text:list text:style-name="` + style + `"` + attrs + `>` +
		`<text:list-item><text:p>` + literal + `</text:p></text:list-item></text:list></table:table-cell>`
}

func TestTableParser_HeaderRowsFirst(t *testing.T) {
	body := `<table:table table:name="Table1">
        <table:table-column table:number-columns-repeated="2"/>
        <table:table-row>
          <table:table-cell><text:p>a</text:p></table:table-cell>
          <table:table-cell><text:p>b</text:p></table:table-cell>
        </table:table-row>
        <table:table-header-rows>
          <table:table-row>
            <table:table-cell><text:p>code</text:p></table:table-cell>
            <table:table-cell><text:p>label</text:p></table:table-cell>
          </table:table-row>
        </table:table-header-rows>
        <table:table-row>
          <table:table-cell><text:p>c</text:p></table:table-cell>
        </table:table-row>
      </table:table>`

	doc := mustParse(t, flatDoc("", body))
	records := doc.ScanTables()
	parsed := doc.ParseTables(records, false)

	want := [][]string{
		{"code", "label"},
		{"a", "b"},
		{"c"},
	}
	if !reflect.DeepEqual(parsed[0].Rows, want) {
		t.Errorf("expected rows %v, got %v", want, parsed[0].Rows)
	}
	if got := parsed[0].Header(); !reflect.DeepEqual(got, want[0]) {
		t.Errorf("Header() = %v", got)
	}
	if got := parsed[0].Body(); len(got) != 2 {
		t.Errorf("expected 2 body rows, got %d", len(got))
	}
	if parsed[0].RowCount() != 3 {
		t.Errorf("expected RowCount 3, got %d", parsed[0].RowCount())
	}
}

func TestTableParser_NilTable(t *testing.T) {
	tp := NewTableParser(NewCellResolver(nil, false))
	if got := tp.Parse(nil); got.RowCount() != 0 {
		t.Errorf("expected no rows, got %v", got.Rows)
	}
	var empty ParsedTable
	if empty.Header() != nil || empty.Body() != nil {
		t.Error("expected nil header and body for an empty table")
	}
}

func TestCellResolver_ListMarker(t *testing.T) {
	body := `<table:table table:name="Table1">
        <table:table-row>
          ` + numberedCell("WWNum5", "", "") + `
          ` + numberedCell("WWNum5", "", "literal text ignored") + `
          ` + numberedCell("Unknown", "", "kept") + `
          <table:table-cell><text:p>plain</text:p></table:table-cell>
        </table:table-row>
      </table:table>`

	doc := mustParse(t, flatDoc(numberedStyles, body))
	parsed := doc.ParseTables(doc.ScanTables(), false)

	want := []string{"5", "5", "kept", "plain"}
	if !reflect.DeepEqual(parsed[0].Rows[0], want) {
		t.Errorf("expected %v, got %v", want, parsed[0].Rows[0])
	}
}

func TestCellResolver_ContinueNumbering(t *testing.T) {
	cont := ` text:continue-numbering="true"`
	body := `<table:table table:name="Table1">
        <table:table-row>` + numberedCell("WWNum1", "", "") + `</table:table-row>
        <table:table-row>` + numberedCell("WWNum1", cont, "") + `</table:table-row>
        <table:table-row>` + numberedCell("WWNum1", ` text:continue-list="list1"`, "") + `</table:table-row>
      </table:table>
      <text:p>between</text:p>
      <table:table table:name="Table2">
        <table:table-row>` + numberedCell("WWNum1", cont, "") + `</table:table-row>
        <table:table-row>` + numberedCell("WWNum1", "", "") + `</table:table-row>
      </table:table>`

	doc := mustParse(t, flatDoc(numberedStyles, body))
	records := doc.ScanTables()

	t.Run("enabled", func(t *testing.T) {
		parsed := doc.ParseTables(records, true)
		got := [][]string{}
		for _, p := range parsed {
			got = append(got, p.Rows...)
		}
		want := [][]string{{"1"}, {"2"}, {"3"}, {"4"}, {"1"}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("disabled", func(t *testing.T) {
		parsed := doc.ParseTables(records, false)
		for _, p := range parsed {
			for _, row := range p.Rows {
				if row[0] != "1" {
					t.Errorf("expected start value 1 for every marker, got %v", row)
				}
			}
		}
	})
}

func TestCellResolver_NoStyles(t *testing.T) {
	body := `<table:table table:name="Table1">
        <table:table-row>` + numberedCell("WWNum5", "", "text") + `</table:table-row>
      </table:table>`

	doc := mustParse(t, flatDoc("", body))
	parsed := doc.ParseTables(doc.ScanTables(), false)
	if got := parsed[0].Rows[0][0]; got != "text" {
		t.Errorf("expected literal text without list styles, got %q", got)
	}
}
