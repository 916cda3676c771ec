// Package storage writes rendered charts to their destination.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"gantt2svg/config"
)

// Storage defines where rendered SVG files are written.
type Storage interface {
	// GetWriter returns a writer for the named output. The output is
	// committed when the writer is closed.
	GetWriter(ctx context.Context, name string) (io.WriteCloser, error)

	// Location describes where name ends up, for log messages.
	Location(name string) string

	Close() error
}

// New builds the storage selected by cfg.Type.
func New(ctx context.Context, cfg config.StorageConfig) (Storage, error) {
	switch cfg.Type {
	case "", "local":
		return NewLocalFileStorage(cfg.OutputDir)
	case "gcs":
		return NewGCSStorage(ctx, cfg.Bucket, cfg.ObjectPrefix, cfg.CredentialsFile)
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Type)
	}
}

// ParseGCSURL splits gs://bucket/path into bucket and object path.
func ParseGCSURL(url string) (bucket, object string, ok bool) {
	rest, found := strings.CutPrefix(url, "gs://")
	if !found || rest == "" {
		return "", "", false
	}
	bucket, object, _ = strings.Cut(rest, "/")
	if bucket == "" {
		return "", "", false
	}
	return bucket, object, true
}
