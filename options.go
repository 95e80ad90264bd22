package metadict

import "github.com/tsawler/metadict/catalog"

// Options holds the table and column names used during conversion.
type Options struct {
	primaryTable        string
	lookupMarker        string
	technicalNameColumn string
	optionsColumn       string
	outputColumns       []string

	// Continue numbered lists across cells that ask for it.
	continueNumbering bool
}

// defaultOptions returns the options for the metadata standard export.
func defaultOptions() Options {
	cfg := catalog.DefaultConfig()
	return Options{
		primaryTable:        cfg.PrimaryTable,
		lookupMarker:        cfg.LookupMarker,
		technicalNameColumn: cfg.TechnicalNameColumn,
		optionsColumn:       cfg.OptionsColumn,
		outputColumns:       cfg.OutputColumns,
		continueNumbering:   false,
	}
}

// clone creates a deep copy of Options.
func (o Options) clone() Options {
	newOpts := o
	if o.outputColumns != nil {
		newOpts.outputColumns = make([]string, len(o.outputColumns))
		copy(newOpts.outputColumns, o.outputColumns)
	}
	return newOpts
}

// catalogConfig converts the options for the assembler.
func (o Options) catalogConfig() catalog.Config {
	return catalog.Config{
		PrimaryTable:        o.primaryTable,
		LookupMarker:        o.lookupMarker,
		TechnicalNameColumn: o.technicalNameColumn,
		OptionsColumn:       o.optionsColumn,
		OutputColumns:       append([]string(nil), o.outputColumns...),
	}
}
