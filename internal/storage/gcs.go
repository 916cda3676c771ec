package storage

import (
	"context"
	"fmt"
	"io"
	"path"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSStorage implements the Storage interface for Google Cloud Storage.
type GCSStorage struct {
	client       *storage.Client
	bucket       string
	objectPrefix string
}

// NewGCSStorage creates a new GCSStorage instance. Without a credentials file
// the application default credentials are used.
func NewGCSStorage(ctx context.Context, bucketName, objectPrefix, credentialsFile string) (*GCSStorage, error) {
	if bucketName == "" {
		return nil, fmt.Errorf("gcs storage requires a bucket")
	}

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	return &GCSStorage{
		client:       client,
		bucket:       bucketName,
		objectPrefix: objectPrefix,
	}, nil
}

// GetWriter opens an object writer. The upload completes on Close.
func (s *GCSStorage) GetWriter(ctx context.Context, name string) (io.WriteCloser, error) {
	w := s.client.Bucket(s.bucket).Object(s.objectName(name)).NewWriter(ctx)
	w.ContentType = "image/svg+xml"
	return w, nil
}

func (s *GCSStorage) Location(name string) string {
	return fmt.Sprintf("gs://%s/%s", s.bucket, s.objectName(name))
}

func (s *GCSStorage) objectName(name string) string {
	if s.objectPrefix == "" {
		return name
	}
	return path.Join(s.objectPrefix, name)
}

func (s *GCSStorage) Close() error {
	return s.client.Close()
}
