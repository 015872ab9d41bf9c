// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"unilog-core/logio"
	"unilog-core/scan"
	"unilog-core/summary"
	"unilog/internal/cli"
	"unilog/internal/csvout"
	"unilog/internal/runs"
	"unilog/internal/version"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("unilog")
	fs.SetOutput(io.Discard)

	// Empty argv falls through to ParseArgs validation: the required
	// paths are missing, which is a usage error, not a help request.
	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "unilog version %s\n", version.Version)
		return 0
	}

	if err := mustDir(opts.Input); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: input directory does not exist: %s\n", opts.Input)
		return 1
	}
	if err := mustDir(opts.Output); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: output directory does not exist: %s\n", opts.Output)
		return 1
	}

	list, notices, err := runs.Discover(opts.Input, opts.LogName)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	if !opts.Quiet {
		for _, n := range notices {
			_, _ = fmt.Fprintln(stderr, n)
		}
	}

	mw, err := csvout.NewMoleculesWriter(opts.Output)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	aw, err := csvout.NewAssembliesWriter(opts.Output)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 1
	}

	for _, run := range list {
		if parent.Err() != nil {
			_, _ = fmt.Fprintln(stderr, "error: canceled")
			return 1
		}
		if err := processRun(run, mw, aw, stderr, opts.Quiet); err != nil {
			_, _ = fmt.Fprintf(stderr, "error: %s: %v\n", run.Name, err)
			return 1
		}
	}

	abs, err := filepath.Abs(opts.Output)
	if err != nil {
		abs = opts.Output
	}
	_, _ = fmt.Fprintf(outw, "The %s and %s files are in:\n", csvout.AssembliesFile, csvout.MoleculesFile)
	_, _ = fmt.Fprintln(outw, abs)
	_, _ = fmt.Fprintln(outw, "unilog is done!")
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// processRun parses one run's log and appends its rows to both
// summaries. An unopenable log skips the run (notice only); scan and
// write failures abort the whole invocation.
func processRun(r runs.Run, mw *csvout.MoleculesWriter, aw *csvout.AssembliesWriter, stderr io.Writer, quiet bool) error {
	f, err := os.Open(r.LogPath)
	if err != nil {
		if !quiet {
			_, _ = fmt.Fprintf(stderr, "skipping %s: %v\n", r.Name, err)
		}
		return nil
	}
	res, scanErr := scan.Scan(logio.NewSource(f))
	_ = f.Close()
	if scanErr != nil {
		return scanErr
	}
	if !quiet {
		for _, w := range res.Warnings {
			_, _ = fmt.Fprintf(stderr, "%s: %s\n", r.Name, w)
		}
	}

	if err := mw.Append(summary.MergeMolecules(r.Name, res.Status, res.Depth)); err != nil {
		return err
	}

	rec, ok, warns := summary.BuildAssembly(r.Name, res.Best, res.HasBest, res.Alignment)
	if !quiet {
		for _, w := range warns {
			_, _ = fmt.Fprintf(stderr, "%s: %s\n", r.Name, w)
		}
	}
	if !ok {
		return nil
	}
	return aw.Append(rec)
}

func mustDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}
