// Package selection decides which imported documents land on a page and
// owns the import ordering rule.
package selection

import (
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/sizuichu/SuperFaPiao/pkg/models"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".tif":  true,
	".tiff": true,
	".bmp":  true,
	".gif":  true,
}

var fold = cases.Fold()

func KindOf(path string) models.DocumentKind {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return models.KindPDF
	}
	return models.KindImage
}

func IsSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".pdf" || imageExtensions[ext]
}

// DocumentsForPage returns the contiguous run of at most n documents starting
// at start. An out-of-range start yields an empty slice, never an error.
func DocumentsForPage(docs []models.ImportedDocument, start, n int) []models.ImportedDocument {
	if start < 0 || start >= len(docs) || n <= 0 {
		return []models.ImportedDocument{}
	}
	end := min(start+n, len(docs))
	out := make([]models.ImportedDocument, end-start)
	copy(out, docs[start:end])
	return out
}

// SortImportBatch orders a batch of paths: PDFs before images, each group by
// case-folded file name. Ties keep their input order.
func SortImportBatch(paths []string) []string {
	sorted := make([]string, len(paths))
	copy(sorted, paths)

	sort.SliceStable(sorted, func(i, j int) bool {
		ki, kj := KindOf(sorted[i]), KindOf(sorted[j])
		if ki != kj {
			return ki == models.KindPDF
		}
		return fold.String(filepath.Base(sorted[i])) < fold.String(filepath.Base(sorted[j]))
	})
	return sorted
}

// PageStarts returns the first index of every page when total documents are
// laid out perPage at a time.
func PageStarts(total, perPage int) []int {
	if total <= 0 {
		return nil
	}
	if perPage <= 0 {
		perPage = 1
	}
	starts := make([]int, 0, (total+perPage-1)/perPage)
	for i := 0; i < total; i += perPage {
		starts = append(starts, i)
	}
	return starts
}
