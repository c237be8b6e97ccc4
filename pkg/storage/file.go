package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileBlobStore persists each key as a JSON file under a base directory.
type FileBlobStore struct {
	baseDir string
}

// NewFileBlobStore ensures the base directory exists and returns a handle.
func NewFileBlobStore(baseDir string) (*FileBlobStore, error) {
	if baseDir == "" {
		baseDir = "./data"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	return &FileBlobStore{baseDir: baseDir}, nil
}

// Get reads the file for key.
func (s *FileBlobStore) Get(_ context.Context, key string) (string, bool, error) {
	data, err := os.ReadFile(s.Path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read blob %s: %w", key, err)
	}
	return string(data), true, nil
}

// Set replaces the file for key atomically via a temp file and rename.
func (s *FileBlobStore) Set(_ context.Context, key, value string) error {
	path := s.Path(key)
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp blob: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err := tmp.WriteString(value); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write blob %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close blob %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("commit blob %s: %w", key, err)
	}
	return nil
}

// Remove deletes the file for key if present.
func (s *FileBlobStore) Remove(_ context.Context, key string) error {
	if err := os.Remove(s.Path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete blob %s: %w", key, err)
	}
	return nil
}

// Close is a no-op.
func (s *FileBlobStore) Close() error { return nil }

// Path exposes the file backing key (useful for debugging).
func (s *FileBlobStore) Path(key string) string {
	name := strings.NewReplacer(":", "_", "/", "_", "\\", "_").Replace(key)
	return filepath.Join(s.baseDir, name+".json")
}
