package storage

import (
	"context"
	"fmt"

	"giniplot/internal/config"
)

// Mode selects where chart artifacts are written
type Mode string

const (
	ModeLocal Mode = "local"
	ModeGCS   Mode = "gcs"
)

// NewStorageClient creates a storage client for the configured mode
func NewStorageClient(ctx context.Context, cfg *config.Config) (StorageClient, error) {
	switch Mode(cfg.StorageMode) {
	case ModeLocal, "":
		outputDir := cfg.OutputDir
		if outputDir == "" {
			outputDir = "charts"
		}

		localClient, err := NewLocalStorageClient(outputDir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local storage client: %w", err)
		}
		return localClient, nil

	case ModeGCS:
		gcsClient, err := NewGCSClient(ctx, cfg.GCSBucket)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize GCS client: %w", err)
		}
		return gcsClient, nil

	default:
		return nil, fmt.Errorf("unsupported storage mode: %s", cfg.StorageMode)
	}
}
