package odt

import (
	"github.com/beevik/etree"
)

// ODF XML namespaces
const (
	nsOffice = "urn:oasis:names:tc:opendocument:xmlns:office:1.0"
	nsStyle  = "urn:oasis:names:tc:opendocument:xmlns:style:1.0"
	nsText   = "urn:oasis:names:tc:opendocument:xmlns:text:1.0"
	nsTable  = "urn:oasis:names:tc:opendocument:xmlns:table:1.0"
)

// Document is a parsed OpenDocument text export.
type Document struct {
	tree       *etree.Document
	body       *etree.Element // <office:text>
	listStyles ListStyleMap
}

// Root returns the document's root element.
func (d *Document) Root() *etree.Element {
	return d.tree.Root()
}

// Body returns the <office:text> element holding the document content.
func (d *Document) Body() *etree.Element {
	return d.body
}

// ListStyles returns the numbered list styles declared by the document.
func (d *Document) ListStyles() ListStyleMap {
	return d.listStyles
}

// isElement reports whether e is the element {space}local.
func isElement(e *etree.Element, space, local string) bool {
	return e != nil && e.Tag == local && e.NamespaceURI() == space
}

// attrValue returns the value of the attribute {space}local on e.
func attrValue(e *etree.Element, space, local string) (string, bool) {
	if e == nil {
		return "", false
	}
	for i := range e.Attr {
		a := &e.Attr[i]
		if a.Key == local && a.NamespaceURI() == space {
			return a.Value, true
		}
	}
	return "", false
}

// childElements returns the direct children of e named {space}local.
func childElements(e *etree.Element, space, local string) []*etree.Element {
	var result []*etree.Element
	for _, child := range e.ChildElements() {
		if isElement(child, space, local) {
			result = append(result, child)
		}
	}
	return result
}

// firstChild returns the first direct child of e named {space}local.
func firstChild(e *etree.Element, space, local string) *etree.Element {
	for _, child := range e.ChildElements() {
		if isElement(child, space, local) {
			return child
		}
	}
	return nil
}

// descendants calls fn for every element below e in document order.
// Returning false from fn stops the walk.
func descendants(e *etree.Element, fn func(*etree.Element) bool) bool {
	for _, child := range e.ChildElements() {
		if !fn(child) {
			return false
		}
		if !descendants(child, fn) {
			return false
		}
	}
	return true
}
