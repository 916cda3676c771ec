package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalFileStorage implements the Storage interface for the local filesystem.
type LocalFileStorage struct {
	outputDir string
}

// NewLocalFileStorage creates a local file storage rooted at outputDir.
func NewLocalFileStorage(outputDir string) (*LocalFileStorage, error) {
	if outputDir == "" {
		outputDir = "."
	}
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", outputDir, err)
	}
	return &LocalFileStorage{outputDir: outputDir}, nil
}

// GetWriter creates the named file, and any missing parent directories, under
// the output directory. Absolute names are used as given.
func (s *LocalFileStorage) GetWriter(_ context.Context, name string) (io.WriteCloser, error) {
	path := s.Location(name)
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return f, nil
}

func (s *LocalFileStorage) Location(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.outputDir, name)
}

func (s *LocalFileStorage) Close() error { return nil }
