// core/section/align.go
package section

import (
	"fmt"
	"strings"
	"unicode"

	"unilog-core/logio"
	"unilog-core/logtable"
)

// AlignmentFieldCount is the number of value rows a complete read
// alignment summary carries.
const AlignmentFieldCount = 6

// ParseAlignmentSummary reads label/value rows until the blank
// sentinel, skipping "--" separator rows, and collects the value column
// (index 1) of each. Multi-word labels are kept as one token by joining
// single interior spaces with underscores before splitting, so only the
// wide gap in front of the value column separates fields. The result
// may hold fewer than AlignmentFieldCount values; callers validate the
// length before indexing.
func ParseAlignmentSummary(src *logio.Source) (vals, warns []string) {
	for src.Next() {
		line := src.Text()
		if line == "" {
			break
		}
		if strings.Contains(line, "--") {
			continue
		}
		f := logtable.Tokenize(joinLabelWords(line))
		if len(f) < 2 {
			warns = append(warns, fmt.Sprintf("alignment row %q has no value column", line))
			continue
		}
		vals = append(vals, f[1])
	}
	return vals, warns
}

// joinLabelWords rewrites each single whitespace rune flanked by
// non-space runes to an underscore.
func joinLabelWords(s string) string {
	r := []rune(s)
	for i := 1; i+1 < len(r); i++ {
		if unicode.IsSpace(r[i]) && !unicode.IsSpace(r[i-1]) && !unicode.IsSpace(r[i+1]) {
			r[i] = '_'
		}
	}
	return string(r)
}
