package model

import (
	"bytes"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Row is an ordered column-name to value record. Setting a name that is
// already present replaces its value but keeps its position.
type Row struct {
	fields *orderedmap.OrderedMap[string, string]
}

// NewRow creates an empty row.
func NewRow() *Row {
	return &Row{fields: orderedmap.New[string, string]()}
}

// ZipRow pairs header names with cells by position. Extra cells are
// ignored and header names without a cell are left out of the row.
func ZipRow(header, cells []string) *Row {
	row := NewRow()
	n := len(header)
	if len(cells) < n {
		n = len(cells)
	}
	for i := 0; i < n; i++ {
		row.Set(header[i], cells[i])
	}
	return row
}

// Set stores value under name.
func (r *Row) Set(name, value string) {
	r.fields.Set(name, value)
}

// Get returns the value stored under name and whether it is present.
func (r *Row) Get(name string) (string, bool) {
	return r.fields.Get(name)
}

// Lookup returns a pointer to the value stored under name, or nil when
// the column is absent.
func (r *Row) Lookup(name string) *string {
	v, ok := r.fields.Get(name)
	if !ok {
		return nil
	}
	return &v
}

// Len returns the number of columns in the row.
func (r *Row) Len() int {
	return r.fields.Len()
}

// Names returns the column names in order.
func (r *Row) Names() []string {
	names := make([]string, 0, r.fields.Len())
	for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// MarshalJSON encodes the row as a JSON object in column order.
func (r *Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		if err := writeMember(&buf, pair.Key, pair.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// OptionList is the list of data rows of a lookup table.
type OptionList []*Row
