package model

import (
	"bytes"
	"encoding/json"
	"io"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Dictionary maps technical names to records in insertion order.
// Setting an existing name replaces the record but keeps its position.
type Dictionary struct {
	entries *orderedmap.OrderedMap[string, *Record]
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{entries: orderedmap.New[string, *Record]()}
}

// Set stores rec under name and reports whether an earlier record was
// replaced.
func (d *Dictionary) Set(name string, rec *Record) bool {
	_, replaced := d.entries.Set(name, rec)
	return replaced
}

// Get returns the record stored under name.
func (d *Dictionary) Get(name string) (*Record, bool) {
	return d.entries.Get(name)
}

// Len returns the number of records.
func (d *Dictionary) Len() int {
	return d.entries.Len()
}

// Keys returns the technical names in insertion order.
func (d *Dictionary) Keys() []string {
	keys := make([]string, 0, d.entries.Len())
	for pair := d.entries.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// MarshalJSON encodes the dictionary as a JSON object in insertion order.
func (d *Dictionary) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for pair := d.entries.Oldest(); pair != nil; pair = pair.Next() {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		if err := writeKey(&buf, pair.Key); err != nil {
			return nil, err
		}
		b, err := pair.Value.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// WriteJSON writes the dictionary to w as indented JSON followed by a
// newline.
func (d *Dictionary) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// JSON returns the indented JSON encoding written by WriteJSON.
func (d *Dictionary) JSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.WriteJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
