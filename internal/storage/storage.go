package storage

import (
	"context"
	"io"
)

// Storage abstracts where uploaded profile photos live.
type Storage interface {
	// Save stores a file at the given path.
	Save(ctx context.Context, path string, reader io.Reader) error

	// Delete removes a file at the given path; absent files are a no-op.
	Delete(ctx context.Context, path string) error

	// Exists checks if a file exists at the given path.
	Exists(ctx context.Context, path string) (bool, error)

	// GetURL returns the public URL for the file.
	GetURL(path string) string
}

// Config holds storage configuration.
type Config struct {
	BasePath string // filesystem directory for uploads
	BaseURL  string // public URL prefix, e.g. /uploads
}

// NewStorage creates a storage instance. Only local disk is supported;
// the interface keeps object stores pluggable.
func NewStorage(cfg Config) (Storage, error) {
	return NewLocalStorage(cfg)
}
