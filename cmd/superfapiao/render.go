package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sizuichu/SuperFaPiao/internal/config"
	"github.com/sizuichu/SuperFaPiao/internal/export"
	"github.com/sizuichu/SuperFaPiao/internal/pipeline"
	"github.com/sizuichu/SuperFaPiao/internal/render"
	"github.com/sizuichu/SuperFaPiao/internal/scanner"
	"github.com/sizuichu/SuperFaPiao/internal/session"
	"github.com/sizuichu/SuperFaPiao/pkg/logger"
)

type renderFlags struct {
	dpi          int
	border       bool
	noBackground bool
	jpegQuality  int
}

func (r *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&r.dpi, "dpi", 0, "output resolution (default from config, 300)")
	cmd.Flags().BoolVar(&r.border, "border", false, "outline each slot")
	cmd.Flags().BoolVar(&r.noBackground, "no-background", false, "leave the page transparent instead of white")
	cmd.Flags().IntVar(&r.jpegQuality, "jpeg-quality", 0, "embed PDF pages as JPEG at this quality (0 keeps PNG)")
}

func (r *renderFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("dpi") {
		cfg.Render.DPI = r.dpi
	}
	if cmd.Flags().Changed("border") {
		cfg.Render.Border = r.border
	}
	if cmd.Flags().Changed("no-background") {
		background := !r.noBackground
		cfg.Render.Background = &background
	}
	if cmd.Flags().Changed("jpeg-quality") {
		cfg.Export.JPEGQuality = r.jpegQuality
	}
}

// run wires a session over the given inputs to a pipeline service and hands
// it to fn. Temporary files are removed afterwards.
func run(ctx context.Context, cfg *config.Config, inputs []string, log *logger.Logger, fn func(*session.Session, *pipeline.Service) (*pipeline.Report, error)) error {
	sess, err := newSession(cfg, log)
	if err != nil {
		return err
	}

	paths, err := scanner.New(log).ExpandInputs(ctx, inputs)
	if err != nil {
		return err
	}
	result := sess.Import(paths)
	log.Info("Imported %d document(s), %d duplicate(s), %d unsupported", len(result.Added), len(result.Duplicates), len(result.Unsupported))

	tempDir, err := os.MkdirTemp("", "superfapiao-temp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	exporter, err := export.NewExporter(tempDir, cfg.Export.JPEGQuality, log)
	if err != nil {
		os.RemoveAll(tempDir)
		return err
	}
	defer exporter.Cleanup()

	rasterizer := render.NewFileRasterizer(cfg.Render.DPI, log)
	defer rasterizer.Close()

	service := pipeline.NewService(sess, rasterizer, exporter, render.Options{
		DPI:        cfg.Render.DPI,
		Background: cfg.Background(),
		Border:     cfg.Render.Border,
	}, log)

	report, err := fn(sess, service)
	if err != nil {
		return err
	}
	report.Print(log)
	return nil
}
