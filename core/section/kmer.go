// core/section/kmer.go
package section

import (
	"fmt"
	"strings"

	"unilog-core/logio"
	"unilog-core/logtable"
)

// BestKmer is the row of the K-mer trial table that Unicycler marks
// with "best": the parameter set chosen for the final assembly. Fields
// are kept verbatim as printed.
type BestKmer struct {
	Kmer     string
	Contigs  string
	DeadEnds string
	Score    string
}

// ParseBestKmer scans the table body for the first row containing
// "best" and returns its four leading fields. The blank line ending the
// table bounds the scan: reaching it (or the end of the source) without
// a marked row reports ok=false, not an error, and leaves the cursor
// just past the table so later sections still parse. A marked row with
// fewer than four fields is skipped with a warning and the scan
// continues.
func ParseBestKmer(src *logio.Source) (best BestKmer, ok bool, warns []string) {
	for src.Next() {
		line := src.Text()
		if line == "" {
			break
		}
		if !strings.Contains(line, "best") {
			continue
		}
		f := logtable.Tokenize(line)
		if len(f) < 4 {
			warns = append(warns, fmt.Sprintf("short best K-mer row %q: want 4 fields, got %d", line, len(f)))
			continue
		}
		return BestKmer{Kmer: f[0], Contigs: f[1], DeadEnds: f[2], Score: f[3]}, true, warns
	}
	return BestKmer{}, false, warns
}
