// core/section/section.go

// Package section classifies the embedded sections of a unicycler.log
// and parses the two that are not plain Length-keyed tables: the best
// K-mer row and the read alignment summary.
package section

import "strings"

// Kind tags the recognized section headers.
type Kind int

const (
	None Kind = iota
	Status
	Depth
	KmerBest
	AlignmentSummary
)

func (k Kind) String() string {
	switch k {
	case Status:
		return "status"
	case Depth:
		return "depth"
	case KmerBest:
		return "k-mer"
	case AlignmentSummary:
		return "alignment summary"
	default:
		return "none"
	}
}

// Detect classifies a single log line as a section header. A line
// matching no pattern is None; callers keep scanning.
func Detect(line string) Kind {
	switch {
	case strings.HasPrefix(line, "Component") && strings.Contains(line, "Status"):
		return Status
	case strings.HasPrefix(line, "Segment") && strings.Contains(line, "Depth"):
		return Depth
	case strings.HasPrefix(line, "K-mer") && containsInOrder(line, "Contigs", "Dead ends", "Score"):
		return KmerBest
	case strings.Contains(line, "Read alignment summary"):
		return AlignmentSummary
	}
	return None
}

func containsInOrder(s string, subs ...string) bool {
	for _, sub := range subs {
		i := strings.Index(s, sub)
		if i < 0 {
			return false
		}
		s = s[i+len(sub):]
	}
	return true
}
