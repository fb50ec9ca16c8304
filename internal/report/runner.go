// Package report drives batch conversion and renders the console report.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/texforge/ctex-extract/pkg/ctex"
)

const rule = 40

// Runner converts every container file under Root and reports progress
// and outcomes to Out.
type Runner struct {
	Root      string
	OutputDir string
	Out       io.Writer
	Logger    hclog.Logger
}

// Summary aggregates the outcome counts for one batch run.
type Summary struct {
	Found     int
	Succeeded int
	Failed    int
}

// Run discovers container files, converts each one sequentially, and
// prints the report. Per-file failures never abort the batch; they are
// tallied in the summary.
func (r *Runner) Run() (Summary, error) {
	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	logger := r.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	fmt.Fprintln(out, "CTEX to Image Converter")
	fmt.Fprintln(out, strings.Repeat("=", rule))
	fmt.Fprintf(out, "Searching for CTEX files in: %s\n", r.Root)

	files, err := ctex.Discover(r.Root)
	if err != nil {
		return Summary{}, fmt.Errorf("discovery failed: %w", err)
	}

	if len(files) == 0 {
		fmt.Fprintln(out, "No CTEX files found in current directory and subdirectories.")
		return Summary{}, nil
	}

	fmt.Fprintf(out, "Found %d CTEX files:\n", len(files))
	for i, file := range files {
		fmt.Fprintf(out, "  %d. %s\n", i+1, r.relPath(file))
	}

	fmt.Fprintln(out, "\nConverting files...")
	fmt.Fprintln(out, strings.Repeat("-", rule))

	summary := Summary{Found: len(files)}

	for _, file := range files {
		fmt.Fprintf(out, "Processing: %s\n", r.relPath(file))

		result := ctex.ConvertWithLogger(file, r.OutputDir, logger)

		if result.Ok() {
			summary.Succeeded++
			fmt.Fprintf(out, "  ✓ Converted to: %s\n", r.relPath(result.Output))
			fmt.Fprintf(out, "    %s\n", result.Message())
		} else {
			summary.Failed++
			logger.Warn("Conversion failed", "path", file, "error", result.Err)
			fmt.Fprintf(out, "  ✗ Failed: %s\n", result.Message())
		}

		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, strings.Repeat("=", rule))
	fmt.Fprintln(out, "Conversion completed!")
	fmt.Fprintln(out, renderSummary(summary, styledWriter(out)))

	if summary.Failed > 0 {
		fmt.Fprintln(out, "\nNote: Some files may not be standard CTEX format or may be corrupted.")
	}

	return summary, nil
}

func (r *Runner) relPath(path string) string {
	rel, err := filepath.Rel(r.Root, path)
	if err != nil {
		return path
	}
	return rel
}

// styledWriter reports whether out is an interactive terminal, which
// selects the fancier summary table style.
func styledWriter(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isTerminal(f)
}
