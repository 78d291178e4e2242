package render

import (
	"context"
	"errors"
	"image"
)

// ErrUnreadable marks a source document that could not be turned into an image.
var ErrUnreadable = errors.New("document unreadable")

// Rasterizer resolves a source file to a renderable image. Implementations
// may block; the layout code never depends on how the image was produced.
type Rasterizer interface {
	Rasterize(ctx context.Context, path string) (image.Image, error)
	Close() error
}
