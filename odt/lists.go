package odt

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// ListStyleMap maps a list style name to the start value declared by its
// numbered level.
type ListStyleMap map[string]int

// ResolveListStyles collects every <text:list-style> below root that
// declares a numeric start value. Styles without a name, without a
// numbered level, or with a start value that is not an integer are
// skipped; not every list in a document is auto-numbered.
func ResolveListStyles(root *etree.Element) ListStyleMap {
	styles := make(ListStyleMap)
	if root == nil {
		return styles
	}
	mergeListStyles(styles, root)
	return styles
}

// mergeListStyles adds the list styles found below root to styles.
// Later definitions replace earlier ones with the same name.
func mergeListStyles(styles ListStyleMap, root *etree.Element) {
	descendants(root, func(e *etree.Element) bool {
		if !isElement(e, nsText, "list-style") {
			return true
		}
		name, ok := attrValue(e, nsStyle, "name")
		if !ok || name == "" {
			return true
		}
		if start, ok := listStartValue(e); ok {
			styles[name] = start
		}
		return true
	})
}

// listStartValue returns the start value of the first numbered level of a
// list style that declares one.
func listStartValue(style *etree.Element) (int, bool) {
	for _, level := range childElements(style, nsText, "list-level-style-number") {
		raw, ok := attrValue(level, nsText, "start-value")
		if !ok {
			continue
		}
		start, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			continue
		}
		return start, true
	}
	return 0, false
}

// listCounter tracks the last number handed out per list style so that
// lists continuing an earlier list keep counting.
type listCounter struct {
	last map[string]int
}

func newListCounter() *listCounter {
	return &listCounter{last: make(map[string]int)}
}

// next returns the number for a list of the given style. A list that
// continues numbering gets the previous number plus one; any other list
// restarts at start.
func (lc *listCounter) next(styleName string, start int, continues bool) int {
	n := start
	if prev, ok := lc.last[styleName]; ok && continues {
		n = prev + 1
	}
	lc.last[styleName] = n
	return n
}

// continuesNumbering reports whether a <text:list> picks up the numbering
// of an earlier list.
func continuesNumbering(list *etree.Element) bool {
	if v, ok := attrValue(list, nsText, "continue-numbering"); ok && v == "true" {
		return true
	}
	if v, ok := attrValue(list, nsText, "continue-list"); ok && v != "" {
		return true
	}
	return false
}
