// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"unilog/internal/version"
)

// DefaultLogName is the file looked up inside every run folder.
const DefaultLogName = "unicycler.log"

// Options holds all CLI flags.
type Options struct {
	Input   string
	Output  string
	LogName string
	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: summarize Unicycler assembly logs

Walks the --input directory, parses the %s file of every run
subfolder, and appends two summaries to the --output directory:
molecules_summary.csv (one row per assembled molecule) and
assemblies_summary.csv (one row per run).

Version: %s

Usage of %s:
`, name, DefaultLogName, version.Version, name)
		fs.PrintDefaults()
		fmt.Fprintf(fs.Output(), `
The input directory holds one subfolder per run, for example:

    results/
        SW0001/
            unicycler.log
        SW0002/
            unicycler.log

The first column of every output row carries the subfolder name
(SW0001, SW0002, ...). Run subfolders may contain other files; only
the log is read. Output files are appended to, so clear them before
re-running against the same directory.

Examples:
    %s -i ~/Documents/results -o ~/Documents/results
    %s --input . --output .
`, name, name)
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Input, "input", "", "directory with one run subfolder per assembly [*]")
	fs.StringVar(&opt.Input, "i", "", "alias of --input")
	fs.StringVar(&opt.Output, "output", "", "directory receiving the two summary CSV files [*]")
	fs.StringVar(&opt.Output, "o", "", "alias of --output")
	fs.StringVar(&opt.LogName, "log-name", DefaultLogName, "log file name looked up in each run folder ["+DefaultLogName+"]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress skipped-folder and dropped-row notices [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "v", false, "alias of --version")
	fs.BoolVar(&help, "h", false, "show this help message [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	// Validation
	switch {
	case opt.Input == "" && opt.Output == "":
		return opt, errors.New("missing arguments: provide the --input and --output directories")
	case opt.Input == "":
		return opt, errors.New("missing argument: provide the --input directory")
	case opt.Output == "":
		return opt, errors.New("missing argument: provide the --output directory")
	}
	if opt.LogName == "" {
		return opt, errors.New("--log-name must not be empty")
	}
	return opt, nil
}
