package storage

import "sitecheck/internal/bootstrap/config"

func configFor(provider string, root string) config.StorageConfig {
	return config.StorageConfig{
		Provider: provider,
		Root:     root,
		Bucket:   "test-bucket",
	}
}
