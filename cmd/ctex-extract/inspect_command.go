package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/texforge/ctex-extract/internal/report"
)

// newInspectCommand shows header information without writing any output.
func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>...",
		Short: "Show CTEX header information without converting",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := make([]report.InspectInfo, 0, len(args))
			for _, path := range args {
				infos = append(infos, report.Inspect(path))
			}

			styled := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
			fmt.Fprintln(cmd.OutOrStdout(), report.RenderInspect(infos, styled))
			return nil
		},
	}
}
