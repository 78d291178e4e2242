package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sizuichu/SuperFaPiao/internal/pipeline"
	"github.com/sizuichu/SuperFaPiao/internal/session"
	"github.com/sizuichu/SuperFaPiao/pkg/utils"
)

func previewCmd(g *globalFlags) *cobra.Command {
	var (
		page     pageFlags
		rf       renderFlags
		out      string
		selected int
		zoom     string
		fit      string
	)

	cmd := &cobra.Command{
		Use:   "preview <files|dirs...>",
		Short: "Render the page starting at one document to a PNG",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, g, &page)
			if err != nil {
				return err
			}
			rf.apply(cmd, cfg)

			if out == "" {
				out = filepath.Join(utils.GetDefaultOutputDir(), "preview.png")
			}

			return run(cmd.Context(), cfg, args, g.logger(), func(sess *session.Session, svc *pipeline.Service) (*pipeline.Report, error) {
				if cmd.Flags().Changed("select") {
					if err := sess.Select(selected); err != nil {
						return nil, err
					}
				}
				if zoom != "" {
					if err := sess.SetZoomPercent(zoom); err != nil {
						return nil, err
					}
				}
				if fit != "" {
					w, h, err := parseViewport(fit)
					if err != nil {
						return nil, err
					}
					sess.FitZoom(w, h)
				}
				return svc.Preview(cmd.Context(), out)
			})
		},
	}
	page.register(cmd)
	rf.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output PNG path (default: a new temp directory)")
	cmd.Flags().IntVar(&selected, "select", 0, "index of the document the page starts at")
	cmd.Flags().StringVar(&zoom, "zoom", "", `preview zoom, e.g. "150%" (10%-200%)`)
	cmd.Flags().StringVar(&fit, "fit", "", `zoom so the page fits a viewport, e.g. "1280x800"`)
	return cmd
}

func parseViewport(s string) (float64, float64, error) {
	parts := strings.Split(strings.ToLower(s), "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("viewport %q: expected WIDTHxHEIGHT", s)
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("viewport %q: %w", s, err)
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("viewport %q: %w", s, err)
	}
	return w, h, nil
}
