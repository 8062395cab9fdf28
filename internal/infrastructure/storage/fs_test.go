package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFilesystemStoragePut(t *testing.T) {
	root := t.TempDir()
	fs, err := NewFilesystemStorage(root, "http://localhost:8080/evidence")
	if err != nil {
		t.Fatalf("NewFilesystemStorage() error = %v", err)
	}

	url, err := fs.Put(context.Background(), "alice/a1/q1/photo.jpg", []byte("payload"), "image/jpeg")
	if err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if url != "http://localhost:8080/evidence/alice/a1/q1/photo.jpg" {
		t.Fatalf("Put() url = %q", url)
	}

	data, err := os.ReadFile(filepath.Join(root, "alice", "a1", "q1", "photo.jpg"))
	if err != nil {
		t.Fatalf("read stored object: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("stored bytes = %q", data)
	}
}

func TestFilesystemStorageRejectsTraversal(t *testing.T) {
	fs, err := NewFilesystemStorage(t.TempDir(), "")
	if err != nil {
		t.Fatalf("NewFilesystemStorage() error = %v", err)
	}

	if _, err := fs.Put(context.Background(), "../escape.jpg", []byte("x"), "image/jpeg"); err == nil {
		t.Fatal("Put() accepted a traversal key")
	}
}

func TestNewSelectsProvider(t *testing.T) {
	cfgRoot := t.TempDir()

	adapter, err := New(configFor("fs", cfgRoot))
	if err != nil {
		t.Fatalf("New(fs) error = %v", err)
	}
	if _, ok := adapter.(*FilesystemStorage); !ok {
		t.Fatalf("New(fs) = %T, want *FilesystemStorage", adapter)
	}

	if _, err := New(configFor("tape", cfgRoot)); err == nil {
		t.Fatal("New() accepted an unknown provider")
	}
}
