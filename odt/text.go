package odt

import (
	"strings"

	"github.com/beevik/etree"
)

// ElementText returns the text content of e and all of its descendants,
// concatenated in document order and trimmed. A nil element yields "".
func ElementText(e *etree.Element) string {
	if e == nil {
		return ""
	}
	var sb strings.Builder
	writeText(&sb, e)
	return strings.TrimSpace(sb.String())
}

// writeText appends the character data below e to sb.
func writeText(sb *strings.Builder, e *etree.Element) {
	for _, token := range e.Child {
		switch t := token.(type) {
		case *etree.CharData:
			sb.WriteString(t.Data)
		case *etree.Element:
			writeText(sb, t)
		}
	}
}
