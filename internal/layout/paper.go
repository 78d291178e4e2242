package layout

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sizuichu/SuperFaPiao/pkg/models"
	"github.com/sizuichu/SuperFaPiao/pkg/utils"
)

type Paper struct {
	Name string
	Size models.PageDimensions
}

// Label formats the paper the way the size selector lists it, e.g. "A4 (210×297)".
func (p Paper) Label() string {
	return fmt.Sprintf("%s (%g×%g)", p.Name, p.Size.Width, p.Size.Height)
}

var (
	A4 = Paper{Name: "A4", Size: models.PageDimensions{Width: utils.A4_WIDTH_MM, Height: utils.A4_HEIGHT_MM}}

	Papers = []Paper{
		{Name: "A3", Size: models.PageDimensions{Width: 297, Height: 420}},
		A4,
		{Name: "A5", Size: models.PageDimensions{Width: 148, Height: 210}},
		{Name: "B5", Size: models.PageDimensions{Width: 176, Height: 250}},
		{Name: "Letter", Size: models.PageDimensions{Width: 215.9, Height: 279.4}},
		{Name: "Legal", Size: models.PageDimensions{Width: 215.9, Height: 355.6}},
	}
)

func PaperByName(name string) (Paper, bool) {
	for _, p := range Papers {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, true
		}
	}
	return Paper{}, false
}

// ParsePaperLabel reads a selector label such as "A4 (210×297)" or
// "Custom (100x150)". Both the multiplication sign and a plain x are accepted.
// The size is clamped like a custom size, so a label never yields an empty or
// inverted page.
func ParsePaperLabel(label string) (Paper, error) {
	open := strings.IndexRune(label, '(')
	closing := strings.IndexRune(label, ')')
	if open < 0 || closing <= open+1 {
		if p, ok := PaperByName(label); ok {
			return p, nil
		}
		return Paper{}, fmt.Errorf("paper label %q has no size", label)
	}

	inner := strings.NewReplacer("×", "x", "X", "x", "*", "x").Replace(label[open+1 : closing])
	parts := strings.Split(inner, "x")
	if len(parts) != 2 {
		return Paper{}, fmt.Errorf("paper label %q: expected WIDTHxHEIGHT", label)
	}

	width, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Paper{}, fmt.Errorf("paper label %q: bad width: %w", label, err)
	}
	height, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Paper{}, fmt.Errorf("paper label %q: bad height: %w", label, err)
	}

	return Paper{
		Name: strings.TrimSpace(label[:open]),
		Size: ClampCustomSize(width, height),
	}, nil
}

// ClampCustomSize bounds each axis to [MIN_CUSTOM_MM, MAX_CUSTOM_MM].
// Out-of-range values are clamped, never rejected. NaN becomes the minimum.
func ClampCustomSize(width, height float64) models.PageDimensions {
	return models.PageDimensions{
		Width:  clampMM(width),
		Height: clampMM(height),
	}
}

func clampMM(v float64) float64 {
	if math.IsNaN(v) {
		return utils.MIN_CUSTOM_MM
	}
	return math.Max(utils.MIN_CUSTOM_MM, math.Min(v, utils.MAX_CUSTOM_MM))
}

// PageFor resolves the physical page for a mode. Landscape modes turn the
// paper on its side; Custom uses the custom size. Both sizes are clamped.
func PageFor(mode models.LayoutMode, paper Paper, custom models.PageDimensions) models.PageDimensions {
	if mode == models.Custom {
		return ClampCustomSize(custom.Width, custom.Height)
	}

	size := ClampCustomSize(paper.Size.Width, paper.Size.Height)
	if size.IsLandscape() {
		size = size.Rotated()
	}
	if mode.Orientation() == models.Landscape {
		return size.Rotated()
	}
	return size
}
