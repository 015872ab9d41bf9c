// core/logtable/extract.go
package logtable

import (
	"fmt"

	"unilog-core/logio"
)

// Extract consumes the body of a table positioned immediately after its
// header line: rows up to the first blank line. The blank sentinel is
// consumed but excluded. Rows whose first column is not a plain
// non-negative integer are dropped, as are rows with no Length column;
// drops are reported as warnings, never as errors.
func Extract(src *logio.Source, hs HeaderSet) (Table, []string) {
	t := NewTable()
	var warns []string
	for src.Next() {
		line := src.Text()
		if line == "" {
			break
		}
		fields := Tokenize(line)
		if !allDigits(fields[0]) {
			warns = append(warns, fmt.Sprintf("dropped row %q: first column %q is not a count", line, fields[0]))
			continue
		}
		row, extra := zip(hs, fields)
		if extra > 0 {
			warns = append(warns, fmt.Sprintf("row %q: %d field(s) beyond the %d headers ignored", line, extra, len(hs)))
		}
		key, ok := row.Get(KeyColumn)
		if !ok {
			warns = append(warns, fmt.Sprintf("dropped row %q: no %s column", line, KeyColumn))
			continue
		}
		if t.Put(key, row) {
			warns = append(warns, fmt.Sprintf("duplicate %s %q: keeping the later row", KeyColumn, key))
		}
	}
	return t, warns
}

// zip pairs headers with fields positionally. Headers past the end of
// the fields stay absent; fields past the end of the headers are
// counted and dropped.
func zip(hs HeaderSet, fields []string) (Row, int) {
	row := make(Row, len(hs))
	n := len(fields)
	if n > len(hs) {
		n = len(hs)
	}
	for i := 0; i < n; i++ {
		row[hs[i]] = fields[i]
	}
	return row, len(fields) - n
}

// allDigits gates data rows: ASCII decimal digits only, so a
// comma-formatted number like "1,234" does not qualify. The first
// column of both Unicycler tables holds small plain integers, which is
// what this check is calibrated for.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
