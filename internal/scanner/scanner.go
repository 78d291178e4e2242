package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sizuichu/SuperFaPiao/internal/selection"
	"github.com/sizuichu/SuperFaPiao/pkg/logger"
)

type DocumentFile struct {
	AbsolutePath string
	RelativePath string
}

type DirectoryScanner struct {
	logger *logger.Logger
}

func New(logger *logger.Logger) *DirectoryScanner {
	return &DirectoryScanner{logger: logger}
}

// FindDocuments walks dir and returns every supported PDF or image file.
func (s *DirectoryScanner) FindDocuments(ctx context.Context, dir string) ([]DocumentFile, error) {
	var docs []DocumentFile

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			return fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if info.IsDir() {
			s.logger.Debug("Scanning directory: %s", path)
			return nil
		}

		if !selection.IsSupported(path) {
			s.logger.Trace("Ignoring %s", path)
			return nil
		}

		absPath, err := filepath.Abs(path)
		if err != nil {
			absPath = path
		}
		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			relPath = path
		}

		docs = append(docs, DocumentFile{AbsolutePath: absPath, RelativePath: relPath})
		return nil
	})

	if err != nil {
		return nil, err
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("no supported documents found in %s or its subdirectories", dir)
	}

	return docs, nil
}

// ExpandInputs turns command-line arguments into document paths. Directories
// are walked; files are passed through as given so the import step can report
// anything unsupported.
func (s *DirectoryScanner) ExpandInputs(ctx context.Context, inputs []string) ([]string, error) {
	var paths []string
	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			return nil, fmt.Errorf("cannot read input %s: %w", input, err)
		}

		if !info.IsDir() {
			abs, err := filepath.Abs(input)
			if err != nil {
				abs = input
			}
			paths = append(paths, abs)
			continue
		}

		docs, err := s.FindDocuments(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, doc := range docs {
			paths = append(paths, doc.AbsolutePath)
		}
	}
	return paths, nil
}
