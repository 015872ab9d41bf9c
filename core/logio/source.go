// core/logio/source.go
package logio

import (
	"bufio"
	"io"
)

// Source is a forward-only line cursor over a run's log. The scan loop
// and every section parser advance the same Source, so each section body
// is consumed exactly once and never revisited.
type Source struct {
	sc *bufio.Scanner
}

func NewSource(r io.Reader) *Source {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Source{sc: sc}
}

// Next advances to the following line; false at end of input or on a
// read error (see Err).
func (s *Source) Next() bool { return s.sc.Scan() }

// Text returns the current line without its trailing newline.
func (s *Source) Text() string { return s.sc.Text() }

func (s *Source) Err() error { return s.sc.Err() }
