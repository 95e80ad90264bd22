package model

import (
	"bytes"
)

// Field is one named output value. A nil Value is written as JSON null.
type Field struct {
	Name  string
	Value *string
}

// Record is a single entry of the metadata dictionary.
type Record struct {
	Fields []Field

	// Options is the option list resolved for the entry. It is nil when no
	// lookup table matched, in which case the "options" key is omitted.
	Options OptionList
}

// NewRecord copies the named columns out of row. Columns missing from the
// row get a nil value.
func NewRecord(row *Row, columns []string) *Record {
	rec := &Record{Fields: make([]Field, 0, len(columns))}
	for _, name := range columns {
		rec.Fields = append(rec.Fields, Field{Name: name, Value: row.Lookup(name)})
	}
	return rec
}

// Get returns the value of the named field, or nil when the field is
// missing or null.
func (r *Record) Get(name string) *string {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value
		}
	}
	return nil
}

// HasOptions reports whether an option list was attached.
func (r *Record) HasOptions() bool {
	return r.Options != nil
}

// MarshalJSON encodes the record as a JSON object: the fields in order,
// followed by "options" when present.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeKey(&buf, f.Name); err != nil {
			return nil, err
		}
		if f.Value == nil {
			buf.WriteString("null")
			continue
		}
		if err := writeString(&buf, *f.Value); err != nil {
			return nil, err
		}
	}
	if r.Options != nil {
		if len(r.Fields) > 0 {
			buf.WriteByte(',')
		}
		if err := writeKey(&buf, "options"); err != nil {
			return nil, err
		}
		if err := writeOptions(&buf, r.Options); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeOptions appends the option list as a JSON array. Rows are encoded
// directly so their text is not HTML-escaped.
func writeOptions(buf *bytes.Buffer, opts OptionList) error {
	buf.WriteByte('[')
	for i, row := range opts {
		if i > 0 {
			buf.WriteByte(',')
		}
		if row == nil {
			buf.WriteString("null")
			continue
		}
		b, err := row.MarshalJSON()
		if err != nil {
			return err
		}
		buf.Write(b)
	}
	buf.WriteByte(']')
	return nil
}
