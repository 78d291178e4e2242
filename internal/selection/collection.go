package selection

import (
	"path/filepath"

	"github.com/sizuichu/SuperFaPiao/pkg/models"
)

// Collection is the ordered list of imported documents. Source paths are unique.
// It is not safe for concurrent use; the session serialises access.
type Collection struct {
	docs  []models.ImportedDocument
	paths map[string]struct{}
}

func NewCollection() *Collection {
	return &Collection{paths: make(map[string]struct{})}
}

type ImportResult struct {
	Added       []models.ImportedDocument
	Duplicates  []string
	Unsupported []string
}

// AcceptImportBatch orders the batch with SortImportBatch and appends every
// supported path not already present. Duplicates and unsupported paths are
// reported in the result instead of added.
func (c *Collection) AcceptImportBatch(paths []string) ImportResult {
	var result ImportResult

	for _, path := range SortImportBatch(paths) {
		if !IsSupported(path) {
			result.Unsupported = append(result.Unsupported, path)
			continue
		}
		if _, exists := c.paths[path]; exists {
			result.Duplicates = append(result.Duplicates, path)
			continue
		}

		doc := models.ImportedDocument{
			DisplayName: filepath.Base(path),
			SourcePath:  path,
			Kind:        KindOf(path),
		}
		c.docs = append(c.docs, doc)
		c.paths[path] = struct{}{}
		result.Added = append(result.Added, doc)
	}

	return result
}

func (c *Collection) Remove(path string) bool {
	idx := c.IndexOf(path)
	if idx < 0 {
		return false
	}
	c.docs = append(c.docs[:idx], c.docs[idx+1:]...)
	delete(c.paths, path)
	return true
}

func (c *Collection) IndexOf(path string) int {
	for i, doc := range c.docs {
		if doc.SourcePath == path {
			return i
		}
	}
	return -1
}

func (c *Collection) At(i int) (models.ImportedDocument, bool) {
	if i < 0 || i >= len(c.docs) {
		return models.ImportedDocument{}, false
	}
	return c.docs[i], true
}

// Items returns a copy; callers cannot mutate the collection through it.
func (c *Collection) Items() []models.ImportedDocument {
	out := make([]models.ImportedDocument, len(c.docs))
	copy(out, c.docs)
	return out
}

func (c *Collection) Len() int {
	return len(c.docs)
}

func (c *Collection) Clear() {
	c.docs = nil
	c.paths = make(map[string]struct{})
}
