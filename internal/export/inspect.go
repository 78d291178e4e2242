package export

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/sizuichu/SuperFaPiao/pkg/models"
	"github.com/sizuichu/SuperFaPiao/pkg/utils"
)

func PageCount(path string) (int, error) {
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to count pages of %s: %w", path, err)
	}
	return n, nil
}

// PageDims returns the size of every page in millimetres.
func PageDims(path string) ([]models.PageDimensions, error) {
	dims, err := api.PageDimsFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get page dimensions of %s: %w", path, err)
	}

	out := make([]models.PageDimensions, len(dims))
	for i, d := range dims {
		out[i] = models.PageDimensions{
			Width:  d.Width / utils.MMToPoint,
			Height: d.Height / utils.MMToPoint,
		}
	}
	return out, nil
}
