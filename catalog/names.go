package catalog

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	// first parenthesized segment of a caption
	parenInnerRe = regexp.MustCompile(`\((.*?)\)`)
	// every parenthesized segment with the whitespace before it
	parenSegmentRe = regexp.MustCompile(`[\s\p{Zs}]*\([^)]*\)`)
	// first segment between curly double quotes
	quotedRe = regexp.MustCompile(`“([^”]+)”`)
)

// NormalizeTechnicalName removes every whitespace character from name.
// Applying it twice gives the same result as applying it once.
func NormalizeTechnicalName(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, name)
}

// LookupKeys returns the keys a lookup table with the given caption is
// registered under, in insertion order: the trimmed text of the first
// parenthesized segment (if any), the caption itself, and the caption
// with parenthesized segments removed.
//
// For "รายการที่ 3 (ประเภทเพศ)" the keys are "ประเภทเพศ",
// "รายการที่ 3 (ประเภทเพศ)" and "รายการที่ 3".
func LookupKeys(title string) []string {
	var keys []string
	if m := parenInnerRe.FindStringSubmatch(title); m != nil {
		keys = append(keys, strings.TrimSpace(m[1]))
	}
	keys = append(keys, title, stripParenthetical(title))
	return keys
}

// stripParenthetical removes parenthesized segments and trims the result.
func stripParenthetical(s string) string {
	return strings.TrimSpace(parenSegmentRe.ReplaceAllString(s, ""))
}

// collapseSpace trims s and replaces each run of whitespace with a single
// space.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// QuotedReference returns the first “…” segment of text with whitespace
// collapsed. Later quoted segments are not considered.
func QuotedReference(text string) (string, bool) {
	m := quotedRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return collapseSpace(m[1]), true
}

// matchKey is the form of a lookup key compared against a quoted
// reference.
func matchKey(key string) string {
	return norm.NFC.String(collapseSpace(stripParenthetical(key)))
}
