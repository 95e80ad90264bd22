package catalog

// Default table, marker and column names of the metadata standard export.
const (
	DefaultPrimaryTable        = "Table1"
	DefaultLookupMarker        = "รายการที่"
	DefaultTechnicalNameColumn = "ชื่อทางเทคนิค"
	DefaultOptionsColumn       = "ตัวเลือก/รูปแบบ"
)

// DefaultOutputColumns are the primary-table columns copied into every
// record, in output order.
var DefaultOutputColumns = []string{
	"ลำดับ",
	"ชื่อรายการไทย",
	"คำอธิบาย",
	"ตัวเลือก/รูปแบบ",
	"ตัวอย่าง",
}

// Config names the tables and columns the assembler works with.
type Config struct {
	// PrimaryTable is the table:name of the master field table.
	PrimaryTable string

	// LookupMarker must appear in a caption for its table to be treated
	// as a lookup table.
	LookupMarker string

	// TechnicalNameColumn holds the key of each record.
	TechnicalNameColumn string

	// OptionsColumn holds the free text searched for a quoted lookup
	// reference.
	OptionsColumn string

	// OutputColumns are copied into each record in this order.
	OutputColumns []string
}

// DefaultConfig returns the configuration for the metadata standard export.
func DefaultConfig() Config {
	return Config{
		PrimaryTable:        DefaultPrimaryTable,
		LookupMarker:        DefaultLookupMarker,
		TechnicalNameColumn: DefaultTechnicalNameColumn,
		OptionsColumn:       DefaultOptionsColumn,
		OutputColumns:       append([]string(nil), DefaultOutputColumns...),
	}
}
