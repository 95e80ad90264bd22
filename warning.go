package metadict

import (
	"fmt"
	"strings"
)

// WarningCode identifies the kind of a non-fatal issue.
type WarningCode int

const (
	// WarningDuplicateTechnicalName means two primary-table rows share a
	// technical name. The later row replaced the earlier record.
	WarningDuplicateTechnicalName WarningCode = iota + 1

	// WarningDuplicateTableName means two tables share a table:name. The
	// later table replaced the earlier one.
	WarningDuplicateTableName
)

// String returns a short name for the code.
func (c WarningCode) String() string {
	switch c {
	case WarningDuplicateTechnicalName:
		return "duplicate-technical-name"
	case WarningDuplicateTableName:
		return "duplicate-table-name"
	default:
		return "unknown"
	}
}

// Warning is a non-fatal issue found during conversion.
type Warning struct {
	Code    WarningCode
	Name    string // the technical name or table name involved
	Message string
}

// String formats the warning for display.
func (w Warning) String() string {
	return fmt.Sprintf("[%s] %s", w.Code, w.Message)
}

func duplicateTechnicalName(name string) Warning {
	return Warning{
		Code:    WarningDuplicateTechnicalName,
		Name:    name,
		Message: fmt.Sprintf("technical name %q appears more than once; the last row was kept", name),
	}
}

func duplicateTableName(name string) Warning {
	return Warning{
		Code:    WarningDuplicateTableName,
		Name:    name,
		Message: fmt.Sprintf("table name %q appears more than once; the last table was kept", name),
	}
}

// FormatWarnings joins warnings into a single string, one per line.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
