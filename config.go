package metadict

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig is the YAML form of the conversion options. Empty values keep
// the defaults.
//
//	primary_table: Table1
//	lookup_marker: รายการที่
//	technical_name_column: ชื่อทางเทคนิค
//	options_column: ตัวเลือก/รูปแบบ
//	output_columns: [ลำดับ, ชื่อรายการไทย, คำอธิบาย, ตัวเลือก/รูปแบบ, ตัวอย่าง]
//	continue_numbering: false
type FileConfig struct {
	PrimaryTable        string   `yaml:"primary_table,omitempty"`
	LookupMarker        string   `yaml:"lookup_marker,omitempty"`
	TechnicalNameColumn string   `yaml:"technical_name_column,omitempty"`
	OptionsColumn       string   `yaml:"options_column,omitempty"`
	OutputColumns       []string `yaml:"output_columns,omitempty"`
	ContinueNumbering   bool     `yaml:"continue_numbering,omitempty"`
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML configuration held in memory.
func ParseConfig(data []byte) (*FileConfig, error) {
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	return &cfg, nil
}

// apply returns a copy of o with the non-empty values of cfg applied.
func (o Options) apply(cfg *FileConfig) Options {
	newOpts := o.clone()
	if cfg == nil {
		return newOpts
	}
	if cfg.PrimaryTable != "" {
		newOpts.primaryTable = cfg.PrimaryTable
	}
	if cfg.LookupMarker != "" {
		newOpts.lookupMarker = cfg.LookupMarker
	}
	if cfg.TechnicalNameColumn != "" {
		newOpts.technicalNameColumn = cfg.TechnicalNameColumn
	}
	if cfg.OptionsColumn != "" {
		newOpts.optionsColumn = cfg.OptionsColumn
	}
	if len(cfg.OutputColumns) > 0 {
		newOpts.outputColumns = append([]string(nil), cfg.OutputColumns...)
	}
	if cfg.ContinueNumbering {
		newOpts.continueNumbering = true
	}
	return newOpts
}
