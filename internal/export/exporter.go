// Package export writes composed pages to PNG files or a PDF document.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/sizuichu/SuperFaPiao/pkg/logger"
	"github.com/sizuichu/SuperFaPiao/pkg/models"
)

var ErrNoPages = errors.New("nothing to export")

type Format string

const (
	FormatPDF Format = "pdf"
	FormatPNG Format = "png"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatPDF:
		return FormatPDF, nil
	case FormatPNG:
		return FormatPNG, nil
	}
	return "", fmt.Errorf("unsupported export format %q (want pdf or png)", s)
}

var disableConfigOnce sync.Once

type Exporter struct {
	tempDir     string
	jpegQuality int
	logger      *logger.Logger
}

// NewExporter prepares a scratch directory for intermediate page images.
// A jpegQuality between 1 and 100 embeds pages in the PDF as JPEG at that
// quality; zero keeps them lossless PNG.
func NewExporter(tempDir string, jpegQuality int, logger *logger.Logger) (*Exporter, error) {
	if err := os.MkdirAll(tempDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}
	if jpegQuality < 0 || jpegQuality > 100 {
		return nil, fmt.Errorf("jpeg quality %d out of range [0,100]", jpegQuality)
	}

	// pdfcpu would otherwise install a config file under the user's config dir.
	disableConfigOnce.Do(api.DisableConfigDir)

	return &Exporter{
		tempDir:     tempDir,
		jpegQuality: jpegQuality,
		logger:      logger,
	}, nil
}

// ExportPDF writes one PDF page of the given physical size per image. An
// existing file at out is replaced only once the new document is complete.
func (e *Exporter) ExportPDF(pages []image.Image, size models.PageDimensions, out string) error {
	if len(pages) == 0 {
		return ErrNoPages
	}

	files := make([]string, 0, len(pages))
	defer func() { e.Discard(files...) }()

	for i, page := range pages {
		path, err := e.StagePage(page)
		if err != nil {
			return fmt.Errorf("failed to encode page %d: %w", i+1, err)
		}
		files = append(files, path)
	}

	return e.WritePDF(files, size, out)
}

// StagePage encodes a page into the scratch directory and returns its path,
// so the caller can drop the decoded image before composing the next one.
func (e *Exporter) StagePage(img image.Image) (string, error) {
	if e.jpegQuality > 0 {
		path := filepath.Join(e.tempDir, uuid.NewString()+".jpg")
		return path, WriteJPEG(img, path, e.jpegQuality)
	}
	path := filepath.Join(e.tempDir, uuid.NewString()+".png")
	return path, WritePNG(img, path)
}

// WritePDF assembles staged page files into a PDF at out. Every page gets a
// MediaBox of the given size with the image stretched across it; a file may
// appear more than once.
func (e *Exporter) WritePDF(files []string, size models.PageDimensions, out string) error {
	if len(files) == 0 {
		return ErrNoPages
	}
	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	w, h := size.Points()
	imp := pdfcpu.DefaultImportConfig()
	imp.PageDim = &types.Dim{Width: w, Height: h}
	imp.PageSize = ""
	imp.UserDim = true
	// Full would size the MediaBox from the image pixels. A centred image at
	// relative scale 1 fills a page of PageDim, since pages share its aspect.
	imp.Pos = types.Center
	imp.Scale = 1.0
	imp.ScaleAbs = false

	partial := out + ".partial-" + uuid.NewString()
	if err := api.ImportImagesFile(files, partial, imp, nil); err != nil {
		os.Remove(partial)
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	if err := os.Rename(partial, out); err != nil {
		os.Remove(partial)
		return fmt.Errorf("failed to move PDF into place: %w", err)
	}

	e.logger.Info("Wrote %d page(s) to %s", len(files), out)
	return nil
}

// Discard removes staged page files.
func (e *Exporter) Discard(files ...string) {
	for _, f := range files {
		os.Remove(f)
	}
}

// PNGPagePath names page n (1-based) of a PNG export.
func PNGPagePath(dir, base string, n int) string {
	return filepath.Join(dir, fmt.Sprintf("%s_page%d.png", base, n))
}

// ExportPNG writes <base>_page<N>.png into dir for every page and returns the paths.
func (e *Exporter) ExportPNG(pages []image.Image, dir, base string) ([]string, error) {
	if len(pages) == 0 {
		return nil, ErrNoPages
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	paths := make([]string, 0, len(pages))
	for i, page := range pages {
		path := PNGPagePath(dir, base, i+1)
		if err := WritePNG(page, path); err != nil {
			return paths, fmt.Errorf("failed to write page %d: %w", i+1, err)
		}
		e.logger.Debug("Wrote %s", path)
		paths = append(paths, path)
	}

	e.logger.Info("Wrote %d page image(s) to %s", len(paths), dir)
	return paths, nil
}

func (e *Exporter) Cleanup() error {
	return os.RemoveAll(e.tempDir)
}

func WritePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return err
	}
	return f.Close()
}

func WriteJPEG(img image.Image, path string, quality int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: quality}); err != nil {
		return err
	}
	return f.Close()
}
