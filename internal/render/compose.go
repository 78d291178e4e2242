package render

import (
	"context"
	"errors"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"github.com/sizuichu/SuperFaPiao/internal/layout"
	"github.com/sizuichu/SuperFaPiao/pkg/logger"
	"github.com/sizuichu/SuperFaPiao/pkg/models"
	"github.com/sizuichu/SuperFaPiao/pkg/utils"
)

var BorderColor = color.RGBA{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff}

type Options struct {
	// DPI of the composed page. Slot geometry is in 96 DPI rendering units
	// and is scaled up by DPI/96.
	DPI        int
	Background bool
	Border     bool
}

type SkippedDocument struct {
	Document models.ImportedDocument
	Err      error
}

type PageResult struct {
	Image   *image.RGBA
	Placed  []models.ImportedDocument
	Skipped []SkippedDocument
}

type Composer struct {
	rasterizer Rasterizer
	opts       Options
	logger     *logger.Logger
}

func NewComposer(rasterizer Rasterizer, opts Options, logger *logger.Logger) *Composer {
	if opts.DPI <= 0 {
		opts.DPI = DefaultDPI
	}
	return &Composer{
		rasterizer: rasterizer,
		opts:       opts,
		logger:     logger,
	}
}

// ComposePage draws docs into slots on a page of the given physical size.
// A document that cannot be rasterized is skipped and reported in the
// result; the documents after it move up into the free slot. Only context
// cancellation aborts the page.
func (c *Composer) ComposePage(ctx context.Context, page models.PageDimensions, slots []models.Rect, docs []models.ImportedDocument) (*PageResult, error) {
	scale := utils.PixelScale(c.opts.DPI)
	pw, ph := page.Pixels()
	canvas := image.NewRGBA(image.Rect(0, 0, int(math.Round(pw*scale)), int(math.Round(ph*scale))))

	if c.opts.Background {
		draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)
	}

	result := &PageResult{Image: canvas}
	next := 0
	for _, doc := range docs {
		if next >= len(slots) {
			c.logger.Debug("No slot left for %s", doc.DisplayName)
			break
		}

		img, err := c.rasterizer.Rasterize(ctx, doc.SourcePath)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			c.logger.Warn("Skipping %s: %v", doc.DisplayName, err)
			result.Skipped = append(result.Skipped, SkippedDocument{Document: doc, Err: err})
			continue
		}

		slot := slots[next].Scale(scale)
		target := layout.FitUniform(slot, img.Bounds().Dx(), img.Bounds().Dy())
		dst := toImageRect(target)
		if !dst.Empty() {
			draw.CatmullRom.Scale(canvas, dst, img, img.Bounds(), draw.Over, nil)
		}
		if c.opts.Border {
			strokeRect(canvas, toImageRect(slot), BorderColor, max(1, int(math.Round(scale))))
		}

		c.logger.Trace("Placed %s in slot %d at %v", doc.DisplayName, next, dst)
		result.Placed = append(result.Placed, doc)
		next++
	}

	return result, nil
}

func toImageRect(r models.Rect) image.Rectangle {
	return image.Rect(
		int(math.Round(r.X)),
		int(math.Round(r.Y)),
		int(math.Round(r.Right())),
		int(math.Round(r.Bottom())),
	)
}

func strokeRect(dst *image.RGBA, r image.Rectangle, c color.Color, width int) {
	src := image.NewUniform(c)
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width),
		image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+width, r.Max.Y),
		image.Rect(r.Max.X-width, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(dst, e.Intersect(dst.Bounds()), src, image.Point{}, draw.Src)
	}
}
