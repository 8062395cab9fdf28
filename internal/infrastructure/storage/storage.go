// Package storage provides the object-storage adapters the evidence
// pipeline writes through. The aggregate only ever sees the returned URL.
package storage

import (
	"fmt"
	"strings"

	"sitecheck/internal/bootstrap/config"
	"sitecheck/internal/ports"
)

const (
	ProviderGCS        = "gcs"
	ProviderFilesystem = "fs"
)

// New selects the configured adapter.
func New(cfg config.StorageConfig) (ports.ObjectStorage, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case ProviderGCS:
		return NewGCSStorage(cfg.Bucket, cfg.BaseURL, cfg.CredentialsJSON)
	case ProviderFilesystem, "":
		return NewFilesystemStorage(cfg.Root, cfg.BaseURL)
	default:
		return nil, fmt.Errorf("unsupported storage provider %q", cfg.Provider)
	}
}
