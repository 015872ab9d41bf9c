// core/logtable/tokenize.go
package logtable

import (
	"strings"
	"unicode"
)

// Unicycler prints "none found" in the Starting gene column; it is
// joined here so it survives whitespace splitting as a single field.
const (
	noneFoundPhrase = "none found"
	noneFoundToken  = "none_found"
)

// headerRewrites joins the two-word column labels so every output column
// is a whitespace-free identifier.
var headerRewrites = [][2]string{
	{"Longest segment", "Longest_segment"},
	{"Starting gene", "Starting_gene"},
}

// Tokenize splits a raw log line into its column values: the "none
// found" phrase is joined, leading/trailing space stripped, and every
// interior whitespace run collapsed to one delimiter. Any input is
// accepted; an empty line yields a single empty token. Idempotent on
// already-normalized lines.
func Tokenize(line string) []string {
	line = strings.ReplaceAll(line, noneFoundPhrase, noneFoundToken)
	return strings.Split(collapseSpace(strings.TrimSpace(line)), "\t")
}

// ParseHeader converts a table's header line into its ordered column
// list, applying the label rewrites first.
func ParseHeader(line string) HeaderSet {
	for _, rw := range headerRewrites {
		line = strings.ReplaceAll(line, rw[0], rw[1])
	}
	return HeaderSet(Tokenize(line))
}

// collapseSpace rewrites each maximal whitespace run to a single tab.
func collapseSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inSpace = true
			continue
		}
		if inSpace {
			b.WriteByte('\t')
			inSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
