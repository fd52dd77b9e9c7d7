package storage

import (
	"context"
)

// StorageClient stores rendered chart artifacts.
// Paths are slash-separated and relative to the client's root.
type StorageClient interface {
	// Close closes the storage client
	Close() error

	// StoreFile writes data to the path, creating parent folders as needed
	StoreFile(ctx context.Context, filePath string, fileData []byte) error

	// GetFile retrieves a file from the path
	GetFile(ctx context.Context, filePath string) ([]byte, error)

	// ListFiles lists file paths under the prefix, sorted
	ListFiles(ctx context.Context, prefix string) ([]string, error)

	// FileExists checks if a file exists at the path
	FileExists(ctx context.Context, filePath string) (bool, error)

	// Location returns a user-facing address for the path (file path or gs:// URL)
	Location(filePath string) string

	// IsLocal reports whether Location points at the local filesystem
	IsLocal() bool
}
