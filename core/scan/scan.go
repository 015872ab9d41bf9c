// core/scan/scan.go

// Package scan drives the single forward pass over one run's log,
// dispatching each recognized section header to its parser.
package scan

import (
	"unilog-core/logio"
	"unilog-core/logtable"
	"unilog-core/section"
)

// Result carries everything one pass extracts from a run's log.
type Result struct {
	Status    logtable.Table
	Depth     logtable.Table
	Best      section.BestKmer
	HasBest   bool
	Alignment []string
	Warnings  []string
}

// Scan classifies every line with section.Detect and lets the matching
// parser consume the section body before scanning resumes, so section
// bodies can never interleave. Headers may appear in any order;
// unrecognized lines are skipped. The returned error is the underlying
// read error only; parse trouble accumulates in Result.Warnings.
func Scan(src *logio.Source) (Result, error) {
	res := Result{Status: logtable.NewTable(), Depth: logtable.NewTable()}
	for src.Next() {
		line := src.Text()
		switch kind := section.Detect(line); kind {
		case section.Status:
			t, warns := logtable.Extract(src, logtable.ParseHeader(line))
			res.Status = t
			res.warn(kind, warns)
		case section.Depth:
			t, warns := logtable.Extract(src, logtable.ParseHeader(line))
			res.Depth = t
			res.warn(kind, warns)
		case section.KmerBest:
			best, ok, warns := section.ParseBestKmer(src)
			res.Best, res.HasBest = best, ok
			res.warn(kind, warns)
		case section.AlignmentSummary:
			vals, warns := section.ParseAlignmentSummary(src)
			res.Alignment = vals
			res.warn(kind, warns)
		}
	}
	return res, src.Err()
}

func (r *Result) warn(kind section.Kind, warns []string) {
	for _, w := range warns {
		r.Warnings = append(r.Warnings, kind.String()+": "+w)
	}
}
