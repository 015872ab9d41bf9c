// internal/runs/discover.go
package runs

import (
	"fmt"
	"os"
	"path/filepath"
)

// Run is one sequencing run: the name of its folder and the path to the
// assembly log inside it.
type Run struct {
	Name    string
	LogPath string
}

// Discover lists the immediate subdirectories of dir that contain
// logName, in sorted folder-name order so downstream output is
// deterministic. Folders without the log become notices, not errors;
// loose files in dir are ignored. The error covers an unreadable dir
// only.
func Discover(dir, logName string) ([]Run, []string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}
	var out []Run
	var notices []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		p := filepath.Join(dir, e.Name(), logName)
		if _, err := os.Stat(p); err != nil {
			notices = append(notices, fmt.Sprintf("folder %s does not have %s", e.Name(), logName))
			continue
		}
		out = append(out, Run{Name: e.Name(), LogPath: p})
	}
	return out, notices, nil
}
