package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sizuichu/SuperFaPiao/internal/export"
)

func inspectCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <pdf>",
		Short: "Print the page count and page sizes of a PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := g.logger()
			log.Debug("Analyzing PDF: %s", args[0])

			count, err := export.PageCount(args[0])
			if err != nil {
				return fmt.Errorf("error reading page count: %w", err)
			}
			dims, err := export.PageDims(args[0])
			if err != nil {
				return fmt.Errorf("error getting page dimensions: %w", err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s: %d page(s)\n", args[0], count)
			for i, dim := range dims {
				fmt.Fprintf(w, "Page %d: %.1f x %.1f mm\n", i+1, dim.Width, dim.Height)
			}
			return nil
		},
	}
}
