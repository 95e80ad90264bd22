package model

import (
	"bytes"
	"encoding/json"
)

// writeString appends s to buf as a JSON string without HTML escaping.
func writeString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}

// writeKey appends `"key":` to buf.
func writeKey(buf *bytes.Buffer, key string) error {
	if err := writeString(buf, key); err != nil {
		return err
	}
	buf.WriteByte(':')
	return nil
}

// writeMember appends `"key":"value"` to buf.
func writeMember(buf *bytes.Buffer, key, value string) error {
	if err := writeKey(buf, key); err != nil {
		return err
	}
	return writeString(buf, value)
}
