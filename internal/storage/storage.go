package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage abstracts where uploaded images live.
type Storage interface {
	// Save stores a file under the given name.
	Save(ctx context.Context, name string, reader io.Reader, contentType string) error

	// Get retrieves a stored file.
	Get(ctx context.Context, name string) (io.ReadCloser, error)

	// Delete removes a stored file. Deleting a missing file is not an error.
	Delete(ctx context.Context, name string) error

	// Exists checks whether a file is present.
	Exists(ctx context.Context, name string) (bool, error)
}

// Config holds storage configuration.
type Config struct {
	Type      string // local, s3
	BasePath  string // for local storage
	BaseURL   string // public URL base
	Bucket    string // for S3
	Region    string // for S3
	AccessKey string // for S3
	SecretKey string // for S3
	Endpoint  string // for S3-compatible stores
}

// NewStorage creates a storage backend based on configuration.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local", "":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
