// internal/csvout/molecules.go
package csvout

import (
	"path/filepath"

	"unilog-core/summary"
)

var moleculeColumns = []string{
	"Folder_name", "Component", "Segments", "Links", "Length", "N50",
	"Longest_segment", "Status", "Depth", "Starting_gene", "Position",
	"Strand", "Identity", "Coverage",
}

// MoleculesWriter appends molecule rows to molecules_summary.csv in a
// fixed 14-column order.
type MoleculesWriter struct {
	path string
}

// NewMoleculesWriter appends the header row immediately.
func NewMoleculesWriter(dir string) (*MoleculesWriter, error) {
	w := &MoleculesWriter{path: filepath.Join(dir, MoleculesFile)}
	return w, appendRows(w.path, [][]string{moleculeColumns})
}

// Append writes one run's merged records. A nil depth block renders as
// six empty cells.
func (w *MoleculesWriter) Append(recs []summary.MoleculeRecord) error {
	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		d := r.Depth
		if d == nil {
			d = &summary.DepthInfo{}
		}
		rows = append(rows, []string{
			r.Folder, r.Component, r.Segments, r.Links, r.Length, r.N50,
			r.LongestSegment, r.Status, d.Depth, d.StartingGene, d.Position,
			d.Strand, d.Identity, d.Coverage,
		})
	}
	return appendRows(w.path, rows)
}
