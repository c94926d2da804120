// Package imagex imports captured or picked images into the application's
// local image directory. The rest of the system treats the returned path as
// an opaque reference and never interprets image contents.
package imagex

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// EnsureDir creates dir (and parents) if missing and returns its path.
func EnsureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}

// Import copies the file at srcPath into destDir under a fresh UUID name,
// keeping the original extension, and returns the stored file's path.
func Import(srcPath, destDir string) (string, error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("open source image: %w", err)
	}
	defer src.Close()

	dir, err := EnsureDir(destDir)
	if err != nil {
		return "", err
	}

	name := uuid.NewString() + filepath.Ext(srcPath)
	destPath := filepath.Join(dir, name)

	dest, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer dest.Close()

	if _, err := io.Copy(dest, src); err != nil {
		return "", fmt.Errorf("copy image: %w", err)
	}
	return destPath, nil
}
