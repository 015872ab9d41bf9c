// internal/csvout/csvout.go

// Package csvout appends the two summary CSVs. Each writer puts its
// header row down once per invocation and then appends data rows batch
// by batch; files are opened only for the duration of a batch and never
// rewritten, so re-running the tool against the same directory repeats
// headers and rows. Null fields become empty cells.
package csvout

import (
	"encoding/csv"
	"os"
)

const (
	MoleculesFile  = "molecules_summary.csv"
	AssembliesFile = "assemblies_summary.csv"
)

func appendRows(path string, rows [][]string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			_ = f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
