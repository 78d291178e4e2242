package render

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"

	"github.com/gen2brain/go-fitz"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/sizuichu/SuperFaPiao/internal/selection"
	"github.com/sizuichu/SuperFaPiao/pkg/logger"
	"github.com/sizuichu/SuperFaPiao/pkg/models"
)

const DefaultDPI = 300

// FileRasterizer reads images directly and renders the first page of a PDF
// with MuPDF. Decoded images are cached per path for the lifetime of the
// rasterizer.
type FileRasterizer struct {
	dpi    int
	logger *logger.Logger

	mu    sync.Mutex
	cache map[string]image.Image
}

func NewFileRasterizer(dpi int, logger *logger.Logger) *FileRasterizer {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return &FileRasterizer{
		dpi:    dpi,
		logger: logger,
		cache:  make(map[string]image.Image),
	}
}

func (r *FileRasterizer) Rasterize(ctx context.Context, path string) (image.Image, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if img, ok := r.cache[path]; ok {
		r.logger.Trace("Cache hit: %s", path)
		return img, nil
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}

	var (
		img image.Image
		err error
	)
	if selection.KindOf(path) == models.KindPDF {
		img, err = r.rasterizePDF(path)
	} else {
		img, err = decodeImage(path)
	}
	if err != nil {
		return nil, err
	}

	r.logger.Debug("Rasterized %s: %dx%d", path, img.Bounds().Dx(), img.Bounds().Dy())
	r.cache[path] = img
	return img, nil
}

// rasterizePDF renders only the first page; a ticket PDF holds one document.
func (r *FileRasterizer) rasterizePDF(path string) (image.Image, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open PDF %s: %v", ErrUnreadable, path, err)
	}
	defer doc.Close()

	if doc.NumPage() < 1 {
		return nil, fmt.Errorf("%w: PDF %s has no pages", ErrUnreadable, path)
	}
	if doc.NumPage() > 1 {
		r.logger.Debug("PDF %s has %d pages, using the first", path, doc.NumPage())
	}

	img, err := doc.ImageDPI(0, float64(r.dpi))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to render PDF %s: %v", ErrUnreadable, path, err)
	}
	return img, nil
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode image %s: %v", ErrUnreadable, path, err)
	}
	return img, nil
}

func (r *FileRasterizer) DPI() int {
	return r.dpi
}

func (r *FileRasterizer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = make(map[string]image.Image)
	return nil
}
