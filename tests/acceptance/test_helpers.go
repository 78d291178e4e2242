package acceptance

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/sizuichu/SuperFaPiao/internal/export"
	"github.com/sizuichu/SuperFaPiao/pkg/logger"
	"github.com/sizuichu/SuperFaPiao/pkg/models"
	"github.com/sizuichu/SuperFaPiao/pkg/utils"
)

// Fixtures builds ticket files for end-to-end runs: solid-colour images, and
// single-page PDFs wrapping them, sized like the real documents.
type Fixtures struct {
	dir      string
	exporter *export.Exporter
}

func NewFixtures(dir string, log *logger.Logger) (*Fixtures, error) {
	exporter, err := export.NewExporter(filepath.Join(dir, ".fixtures-temp"), 0, log)
	if err != nil {
		return nil, err
	}
	return &Fixtures{dir: dir, exporter: exporter}, nil
}

func (f *Fixtures) Cleanup() error {
	return f.exporter.Cleanup()
}

// TicketImage renders a ticket of the given size at 96 DPI.
func TicketImage(size models.TicketSize, c color.Color) *image.RGBA {
	w := int(size.Width * utils.MMToPixel)
	h := int(size.Height * utils.MMToPixel)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func (f *Fixtures) PNG(name string, size models.TicketSize, c color.Color) (string, error) {
	path := filepath.Join(f.dir, name)
	if err := export.WritePNG(TicketImage(size, c), path); err != nil {
		return "", fmt.Errorf("failed to write fixture %s: %w", name, err)
	}
	return path, nil
}

func (f *Fixtures) PDF(name string, size models.TicketSize, c color.Color) (string, error) {
	path := filepath.Join(f.dir, name)
	page := models.PageDimensions{Width: size.Width, Height: size.Height}
	if err := f.exporter.ExportPDF([]image.Image{TicketImage(size, c)}, page, path); err != nil {
		return "", fmt.Errorf("failed to write fixture %s: %w", name, err)
	}
	return path, nil
}

// Broken writes a file with a supported extension that no decoder accepts.
func (f *Fixtures) Broken(name string) (string, error) {
	path := filepath.Join(f.dir, name)
	return path, os.WriteFile(path, []byte("this is not a ticket"), 0644)
}
