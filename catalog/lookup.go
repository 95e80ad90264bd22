package catalog

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/metadict/model"
)

// Lookups maps lookup keys to option lists in insertion order. A table is
// registered under several keys that all share one option list. Setting
// an existing key replaces its list but keeps the key's position.
type Lookups struct {
	lists *orderedmap.OrderedMap[string, model.OptionList]
}

// NewLookups creates an empty lookup dictionary.
func NewLookups() *Lookups {
	return &Lookups{lists: orderedmap.New[string, model.OptionList]()}
}

// Set stores opts under key and reports whether an earlier list was
// replaced.
func (l *Lookups) Set(key string, opts model.OptionList) bool {
	_, replaced := l.lists.Set(key, opts)
	return replaced
}

// Get returns the option list stored under key.
func (l *Lookups) Get(key string) (model.OptionList, bool) {
	return l.lists.Get(key)
}

// Len returns the number of keys.
func (l *Lookups) Len() int {
	return l.lists.Len()
}

// Keys returns the keys in insertion order.
func (l *Lookups) Keys() []string {
	keys := make([]string, 0, l.lists.Len())
	for pair := l.lists.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// MatchReference returns the list of the first key, in insertion order,
// whose parenthesis-free, whitespace-collapsed form equals ref. The first
// match wins even if a later key would match as well.
func (l *Lookups) MatchReference(ref string) (model.OptionList, bool) {
	want := norm.NFC.String(collapseSpace(ref))
	for pair := l.lists.Oldest(); pair != nil; pair = pair.Next() {
		if matchKey(pair.Key) == want {
			return pair.Value, true
		}
	}
	return nil, false
}

// Resolve finds the option list for a record. A key equal to the
// technical name is preferred; otherwise the first quoted reference in
// optionsText is matched against the keys.
func (l *Lookups) Resolve(technicalName, optionsText string) (model.OptionList, bool) {
	if opts, ok := l.Get(technicalName); ok {
		return opts, true
	}
	ref, ok := QuotedReference(optionsText)
	if !ok {
		return nil, false
	}
	return l.MatchReference(ref)
}

// BuildLookups registers every table whose caption contains the lookup
// marker and that has a header plus at least one data row. Tables are
// processed in order, so a later table wins a key collision.
func (a *Assembler) BuildLookups(tables []Table) *Lookups {
	lookups := NewLookups()

	for i := range tables {
		tbl := &tables[i]
		if tbl.Title == "" || !strings.Contains(tbl.Title, a.cfg.LookupMarker) {
			continue
		}
		if tbl.Parsed.RowCount() < 2 {
			a.log.Debug("Skipping lookup table without data rows",
				zap.String("table", tbl.Name),
				zap.String("title", tbl.Title))
			continue
		}

		header := tbl.Parsed.Header()
		body := tbl.Parsed.Body()
		opts := make(model.OptionList, 0, len(body))
		for _, cells := range body {
			opts = append(opts, model.ZipRow(header, cells))
		}

		keys := LookupKeys(tbl.Title)
		for _, key := range keys {
			lookups.Set(key, opts)
		}

		a.log.Debug("Registered lookup table",
			zap.String("table", tbl.Name),
			zap.Strings("keys", keys),
			zap.Int("options", len(opts)))
	}

	return lookups
}
