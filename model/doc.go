// Package model provides the output representation of a metadata
// dictionary.
//
// # Rows
//
// A [Row] is an ordered record built by pairing a table header with one
// row of cells by position:
//
//	row := model.ZipRow([]string{"code", "label"}, []string{"1", "ชาย"})
//	label, ok := row.Get("label")
//
// Cells beyond the header are ignored; header columns without a cell are
// absent from the row. An [OptionList] is the list of rows of one lookup
// table.
//
// # Records and dictionaries
//
// A [Record] holds the fixed output fields of one metadata entry plus an
// optional [OptionList]. A [Dictionary] maps technical names to records
// and keeps insertion order:
//
//	dict := model.NewDictionary()
//	dict.Set("sex_type", rec)
//	err := dict.WriteJSON(os.Stdout)
//
// JSON output keeps non-ASCII text as is, does not escape HTML characters
// and uses two-space indentation, so the same dictionary always produces
// the same bytes.
package model
