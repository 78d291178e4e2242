package models

import (
	"fmt"

	"github.com/sizuichu/SuperFaPiao/pkg/utils"
)

// PageDimensions is a physical size in millimetres.
type PageDimensions struct {
	Width  float64 `json:"width_mm" yaml:"width"`
	Height float64 `json:"height_mm" yaml:"height"`
}

func (d PageDimensions) Pixels() (width, height float64) {
	return d.Width * utils.MMToPixel, d.Height * utils.MMToPixel
}

func (d PageDimensions) Points() (width, height float64) {
	return d.Width * utils.MMToPoint, d.Height * utils.MMToPoint
}

func (d PageDimensions) Rotated() PageDimensions {
	return PageDimensions{Width: d.Height, Height: d.Width}
}

func (d PageDimensions) IsLandscape() bool {
	return d.Width > d.Height
}

func (d PageDimensions) String() string {
	return fmt.Sprintf("%gx%gmm", d.Width, d.Height)
}

// Rect is a placement rectangle in rendering units. A slot on a page is a Rect.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Overlaps reports whether the interiors of r and o intersect.
// Rectangles that only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

func (r Rect) Scale(f float64) Rect {
	return Rect{X: r.X * f, Y: r.Y * f, Width: r.Width * f, Height: r.Height * f}
}
