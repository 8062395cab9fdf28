package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"sitecheck/internal/errs"
)

// FilesystemStorage keeps evidence objects on local disk, for development
// and tests. Keys map to paths under the root directory.
type FilesystemStorage struct {
	root    string
	baseURL string
}

func NewFilesystemStorage(root string, baseURL string) (*FilesystemStorage, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return nil, errors.New("filesystem storage root is required")
	}
	return &FilesystemStorage{
		root:    root,
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
	}, nil
}

func (s *FilesystemStorage) Put(ctx context.Context, key string, data []byte, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errs.Wrap(err, "check context")
	}
	if strings.Contains(key, "..") {
		return "", errors.New("object key must not contain path traversal")
	}

	path := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", errs.Wrap(err, "create object directory")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errs.Wrap(err, "write object file")
	}

	if s.baseURL != "" {
		return s.baseURL + "/" + key, nil
	}
	return key, nil
}

// Root exposes the storage directory so the HTTP server can serve it.
func (s *FilesystemStorage) Root() string {
	return s.root
}
