package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sizuichu/SuperFaPiao/internal/export"
	"github.com/sizuichu/SuperFaPiao/internal/pipeline"
	"github.com/sizuichu/SuperFaPiao/internal/session"
)

func exportCmd(g *globalFlags) *cobra.Command {
	var (
		page   pageFlags
		rf     renderFlags
		format string
		out    string
		copies int
	)

	cmd := &cobra.Command{
		Use:   "export <files|dirs...>",
		Short: "Lay out every document and write the pages as PDF or PNG",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, g, &page)
			if err != nil {
				return err
			}
			rf.apply(cmd, cfg)
			if cmd.Flags().Changed("format") {
				cfg.Export.Format = format
			}
			if cmd.Flags().Changed("copies") {
				cfg.Copies = copies
			}

			f, err := export.ParseFormat(cfg.Export.Format)
			if err != nil {
				return err
			}
			if out == "" {
				out = filepath.Join(cfg.Export.OutputDir, fmt.Sprintf("tickets.%s", f))
			}

			return run(cmd.Context(), cfg, args, g.logger(), func(_ *session.Session, svc *pipeline.Service) (*pipeline.Report, error) {
				return svc.Export(cmd.Context(), f, out)
			})
		},
	}
	page.register(cmd)
	rf.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "pdf", "output format: pdf|png")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path (default <output_dir>/tickets.<format>)")
	cmd.Flags().IntVar(&copies, "copies", 1, "number of copies in the PDF (1-99)")
	return cmd
}
