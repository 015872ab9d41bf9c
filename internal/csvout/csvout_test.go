package csvout

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unilog-core/summary"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	require.NoError(t, err)
	return rows
}

func TestMoleculesWriterHeaderAndRows(t *testing.T) {
	dir := t.TempDir()
	w, err := NewMoleculesWriter(dir)
	require.NoError(t, err)

	recs := []summary.MoleculeRecord{
		{
			Folder: "SW0001", Component: "1", Segments: "1", Links: "0",
			Length: "5,179,485", N50: "5,179,485", LongestSegment: "5,179,485",
			Status: "complete",
			Depth: &summary.DepthInfo{
				Depth: "1.00x", StartingGene: "dnaA", Position: "1",
				Strand: "+", Identity: "98.7%", Coverage: "100.0%",
			},
		},
		{
			Folder: "SW0001", Component: "2", Segments: "1", Links: "0",
			Length: "4,074", N50: "4,074", LongestSegment: "4,074",
			Status: "complete",
		},
	}
	require.NoError(t, w.Append(recs))

	rows := readCSV(t, filepath.Join(dir, MoleculesFile))
	require.Len(t, rows, 3)
	assert.Equal(t, moleculeColumns, rows[0])
	assert.Equal(t, "5,179,485", rows[1][4])
	assert.Equal(t, "dnaA", rows[1][9])
	// Nil depth block renders as six empty cells.
	assert.Equal(t, []string{"", "", "", "", "", ""}, rows[2][8:])
}

func TestAssembliesWriterRow(t *testing.T) {
	dir := t.TempDir()
	w, err := NewAssembliesWriter(dir)
	require.NoError(t, err)

	require.NoError(t, w.Append(summary.AssemblyRecord{
		Folder: "SW0001", KmerBest: "127", ContigsBest: "50",
		DeadEndsBest: "3", ScoreBest: "0.75", TotalReadCount: "10,000",
		FullyAlignedReads: "9,500", PartiallyAlignedReads: "400",
		UnalignedReads: "100", TotalBasesAligned: "940,000",
		MeanAlignmentIdentity: "99.1%",
	}))

	rows := readCSV(t, filepath.Join(dir, AssembliesFile))
	require.Len(t, rows, 2)
	assert.Equal(t, assemblyColumns, rows[0])
	assert.Equal(t, []string{
		"SW0001", "127", "50", "3", "0.75", "10,000", "9,500", "400",
		"100", "940,000", "99.1%",
	}, rows[1])
}

// Creating a writer against a non-empty file appends a second header:
// the files are append-only across invocations.
func TestWriterAppendsAcrossInvocations(t *testing.T) {
	dir := t.TempDir()

	_, err := NewMoleculesWriter(dir)
	require.NoError(t, err)
	_, err = NewMoleculesWriter(dir)
	require.NoError(t, err)

	rows := readCSV(t, filepath.Join(dir, MoleculesFile))
	require.Len(t, rows, 2)
	assert.Equal(t, rows[0], rows[1])
}

func TestCommaValuesAreQuoted(t *testing.T) {
	dir := t.TempDir()
	w, err := NewMoleculesWriter(dir)
	require.NoError(t, err)
	require.NoError(t, w.Append([]summary.MoleculeRecord{
		{Folder: "SW0001", Component: "1", Length: "5,179,485"},
	}))

	raw, err := os.ReadFile(filepath.Join(dir, MoleculesFile))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), `"5,179,485"`))
}
