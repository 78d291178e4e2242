package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sizuichu/SuperFaPiao/internal/layout"
	"github.com/sizuichu/SuperFaPiao/internal/ticket"
	"github.com/sizuichu/SuperFaPiao/pkg/models"
)

func sizesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sizes",
		Short: "List ticket types, paper sizes and layouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			fmt.Fprintln(w, "TICKET\tWIDTH MM\tHEIGHT MM\tLANDSCAPE\tFOUR-UP")
			for _, t := range ticket.Types() {
				size := ticket.SizeFor(t)
				fmt.Fprintf(w, "%s\t%g\t%g\t%t\t%t\n", t, size.Width, size.Height, size.IsLandscape, ticket.AllowsQuadruple(t))
			}
			fmt.Fprintln(w)

			fmt.Fprintln(w, "PAPER\tWIDTH MM\tHEIGHT MM")
			for _, p := range layout.Papers {
				fmt.Fprintf(w, "%s\t%g\t%g\n", p.Name, p.Size.Width, p.Size.Height)
			}
			fmt.Fprintln(w)

			fmt.Fprintln(w, "LAYOUT\tORIENTATION\tSLOTS")
			for _, m := range models.LayoutModes() {
				slots := fmt.Sprint(layout.SlotCount(m))
				if m == models.Custom {
					slots = "auto"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", m, m.Orientation(), slots)
			}
			return w.Flush()
		},
	}
}
