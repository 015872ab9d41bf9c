// internal/csvout/assemblies.go
package csvout

import (
	"path/filepath"

	"unilog-core/summary"
)

var assemblyColumns = []string{
	"Folder_name", "K-mer_best", "Contigs_best", "Dead_ends_best",
	"Score_best", "Total_read_count", "Fully_aligned_reads",
	"Partially_aligned_reads", "Unaligned_reads", "Total_bases_aligned",
	"Mean_alignment_identity",
}

// AssembliesWriter appends one 11-column row per run to
// assemblies_summary.csv.
type AssembliesWriter struct {
	path string
}

// NewAssembliesWriter appends the header row immediately.
func NewAssembliesWriter(dir string) (*AssembliesWriter, error) {
	w := &AssembliesWriter{path: filepath.Join(dir, AssembliesFile)}
	return w, appendRows(w.path, [][]string{assemblyColumns})
}

func (w *AssembliesWriter) Append(rec summary.AssemblyRecord) error {
	return appendRows(w.path, [][]string{{
		rec.Folder, rec.KmerBest, rec.ContigsBest, rec.DeadEndsBest,
		rec.ScoreBest, rec.TotalReadCount, rec.FullyAlignedReads,
		rec.PartiallyAlignedReads, rec.UnalignedReads,
		rec.TotalBasesAligned, rec.MeanAlignmentIdentity,
	}})
}
