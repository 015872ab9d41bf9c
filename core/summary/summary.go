// core/summary/summary.go

// Package summary joins the extracted sections of one run into the flat
// records the two CSV summaries are built from.
package summary

import (
	"fmt"

	"unilog-core/logtable"
	"unilog-core/section"
)

// DepthInfo is the block of fields sourced from the Depth table. The
// six fields are present or absent together: a molecule with no Depth
// row carries a nil *DepthInfo, never a partially filled one.
type DepthInfo struct {
	Depth        string
	StartingGene string
	Position     string
	Strand       string
	Identity     string
	Coverage     string
}

// MoleculeRecord is one output row of the molecules summary.
type MoleculeRecord struct {
	Folder         string
	Component      string
	Segments       string
	Links          string
	Length         string
	N50            string
	LongestSegment string
	Status         string
	Depth          *DepthInfo
}

// MergeMolecules left-joins the Status and Depth tables on the molecule
// Length: one record per Status key, in Status row order. Depth rows
// whose Length never appears in Status are dropped. Field values are
// copied verbatim, thousands separators included.
func MergeMolecules(folder string, status, depth logtable.Table) []MoleculeRecord {
	var out []MoleculeRecord
	for _, key := range status.Keys() {
		row, _ := status.Get(key)
		rec := MoleculeRecord{
			Folder:         folder,
			Component:      row["Component"],
			Segments:       row["Segments"],
			Links:          row["Links"],
			Length:         row["Length"],
			N50:            row["N50"],
			LongestSegment: row["Longest_segment"],
			Status:         row["Status"],
		}
		if drow, ok := depth.Get(key); ok {
			rec.Depth = &DepthInfo{
				Depth:        drow["Depth"],
				StartingGene: drow["Starting_gene"],
				Position:     drow["Position"],
				Strand:       drow["Strand"],
				Identity:     drow["Identity"],
				Coverage:     drow["Coverage"],
			}
		}
		out = append(out, rec)
	}
	return out
}

// AssemblyRecord is the single output row a run contributes to the
// assemblies summary.
type AssemblyRecord struct {
	Folder                string
	KmerBest              string
	ContigsBest           string
	DeadEndsBest          string
	ScoreBest             string
	TotalReadCount        string
	FullyAlignedReads     string
	PartiallyAlignedReads string
	UnalignedReads        string
	TotalBasesAligned     string
	MeanAlignmentIdentity string
}

// BuildAssembly pairs a run's best K-mer row with its alignment
// summary. A run with no best row contributes nothing: ok=false and no
// warning. A best row with fewer than the six expected alignment values
// also yields ok=false, but with a warning, since the pairing would
// otherwise reach past the section's end.
func BuildAssembly(folder string, best section.BestKmer, hasBest bool, align []string) (AssemblyRecord, bool, []string) {
	if !hasBest {
		return AssemblyRecord{}, false, nil
	}
	if len(align) < section.AlignmentFieldCount {
		return AssemblyRecord{}, false, []string{fmt.Sprintf(
			"alignment summary has %d of %d values; run %s left out of the assemblies summary",
			len(align), section.AlignmentFieldCount, folder)}
	}
	return AssemblyRecord{
		Folder:                folder,
		KmerBest:              best.Kmer,
		ContigsBest:           best.Contigs,
		DeadEndsBest:          best.DeadEnds,
		ScoreBest:             best.Score,
		TotalReadCount:        align[0],
		FullyAlignedReads:     align[1],
		PartiallyAlignedReads: align[2],
		UnalignedReads:        align[3],
		TotalBasesAligned:     align[4],
		MeanAlignmentIdentity: align[5],
	}, true, nil
}
