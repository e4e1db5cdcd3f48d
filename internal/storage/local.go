package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalUploader stores case files on the local filesystem. It is the default
// driver for development and tests.
type LocalUploader struct {
	dir string
}

// NewLocalUploader creates an uploader rooted at dir, creating it if needed
func NewLocalUploader(dir string) (*LocalUploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}
	return &LocalUploader{dir: dir}, nil
}

// Upload writes the content to a file under the root directory and returns
// a file:// reference
func (u *LocalUploader) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	path := filepath.Join(u.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating dir for %s: %w", key, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", key, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("writing %s: %w", key, err)
	}

	return "file://" + path, nil
}

// Delete removes the stored file. A missing file is not an error.
func (u *LocalUploader) Delete(ctx context.Context, key string) error {
	path := filepath.Join(u.dir, filepath.FromSlash(key))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return nil
}
