// Package pipeline renders the pages a session describes and hands them to an
// output sink.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sizuichu/SuperFaPiao/internal/export"
	"github.com/sizuichu/SuperFaPiao/internal/render"
	"github.com/sizuichu/SuperFaPiao/internal/session"
	"github.com/sizuichu/SuperFaPiao/pkg/logger"
	"github.com/sizuichu/SuperFaPiao/pkg/utils"
)

var ErrNoDocuments = errors.New("no documents imported")

type Service struct {
	session    *session.Session
	rasterizer render.Rasterizer
	opts       render.Options
	composer   *render.Composer
	exporter   *export.Exporter
	logger     *logger.Logger
}

func NewService(sess *session.Session, rasterizer render.Rasterizer, exporter *export.Exporter, opts render.Options, logger *logger.Logger) *Service {
	return &Service{
		session:    sess,
		rasterizer: rasterizer,
		opts:       opts,
		composer:   render.NewComposer(rasterizer, opts, logger),
		exporter:   exporter,
		logger:     logger,
	}
}

// Preview renders the page that starts at the selected document to a PNG at
// out. The preview is drawn at screen resolution scaled by the session zoom.
func (s *Service) Preview(ctx context.Context, out string) (*Report, error) {
	report := &Report{StartTime: time.Now(), Copies: 1}

	page, ok := s.session.CurrentPage()
	if !ok {
		return nil, ErrNoDocuments
	}

	opts := s.opts
	opts.DPI = max(1, int(math.Round(utils.ScreenDPI*s.session.Zoom())))
	composer := render.NewComposer(s.rasterizer, opts, s.logger)

	s.logger.Debug("Previewing %d document(s) from index %d at %d%%", len(page.Documents), page.Start, int(math.Round(s.session.Zoom()*100)))
	result, err := composer.ComposePage(ctx, s.session.PageSize(), page.Slots, page.Documents)
	if err != nil {
		return nil, fmt.Errorf("failed to render preview: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := export.WritePNG(result.Image, out); err != nil {
		return nil, fmt.Errorf("failed to write preview: %w", err)
	}

	report.Pages = 1
	report.Placed = len(result.Placed)
	report.Skipped = result.Skipped
	report.Outputs = []string{out}
	report.EndTime = time.Now()
	return report, nil
}

// Export renders every page of the plan. For PDF, out is the document path
// and the page sequence is repeated once per copy. For PNG, out names the
// first page image; the rest follow as <base>_page<N>.png beside it. Each
// page is written out as soon as it is composed, so only one page is held in
// memory. On failure nothing is left at the output paths.
func (s *Service) Export(ctx context.Context, format export.Format, out string) (*Report, error) {
	report := &Report{StartTime: time.Now(), Copies: 1}

	if format != export.FormatPDF && format != export.FormatPNG {
		return nil, fmt.Errorf("unsupported export format %q", format)
	}

	plan := s.session.Plan()
	if len(plan) == 0 {
		return nil, ErrNoDocuments
	}

	dir := filepath.Dir(out)
	base := strings.TrimSuffix(filepath.Base(out), filepath.Ext(out))
	if format == export.FormatPNG {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	size := s.session.PageSize()
	written := make([]string, 0, len(plan))
	ok := false
	defer func() {
		// Staged PDF pages are scratch files; PNG pages are kept on success.
		if format == export.FormatPDF || !ok {
			s.exporter.Discard(written...)
		}
	}()

	for _, p := range plan {
		s.logger.Info("Rendering page %d/%d", p.Index+1, len(plan))
		result, err := s.composer.ComposePage(ctx, size, p.Slots, p.Documents)
		if err != nil {
			return nil, fmt.Errorf("failed to render page %d: %w", p.Index+1, err)
		}
		report.Placed += len(result.Placed)
		report.Skipped = append(report.Skipped, result.Skipped...)

		var path string
		if format == export.FormatPDF {
			path, err = s.exporter.StagePage(result.Image)
		} else {
			path = export.PNGPagePath(dir, base, p.Index+1)
			err = export.WritePNG(result.Image, path)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to write page %d: %w", p.Index+1, err)
		}
		written = append(written, path)
	}
	report.Pages = len(written)

	if format == export.FormatPDF {
		copies := s.session.Copies()
		sequence := make([]string, 0, len(written)*copies)
		for i := 0; i < copies; i++ {
			sequence = append(sequence, written...)
		}
		if err := s.exporter.WritePDF(sequence, size, out); err != nil {
			return nil, err
		}
		report.Copies = copies
		report.Outputs = []string{out}
	} else {
		s.logger.Info("Wrote %d page image(s) to %s", len(written), dir)
		report.Outputs = written
	}

	ok = true
	report.EndTime = time.Now()
	return report, nil
}
