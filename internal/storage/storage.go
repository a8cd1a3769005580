// Package storage is the object storage used for member logos.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ErrInvalidFileType is returned for uploads outside the image allow-list.
var ErrInvalidFileType = errors.New("invalid file type")

var allowedImageExts = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"webp": true,
}

// ImageExt returns the lower-cased extension of filename (without the dot)
// when it is an allowed image type, or ErrInvalidFileType.
func ImageExt(filename string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if !allowedImageExts[ext] {
		return "", ErrInvalidFileType
	}
	return ext, nil
}

// Uploader stores an object under a slash-separated key and returns its public URL.
// Uploading to an existing key replaces the object.
type Uploader interface {
	Upload(ctx context.Context, key string, r io.Reader) (string, error)
}

// LocalStore keeps objects on disk under Dir; they are served at BaseURL + PublicPrefix.
type LocalStore struct {
	Dir          string
	BaseURL      string
	PublicPrefix string
}

func NewLocalStore(dir, baseURL string) *LocalStore {
	return &LocalStore{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/"), PublicPrefix: "/uploads"}
}

func (s *LocalStore) Upload(ctx context.Context, key string, r io.Reader) (string, error) {
	clean := path.Clean("/" + key)
	if clean == "/" || strings.HasSuffix(key, "/") {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// 1. Create the target directory if it doesn't exist
	target := filepath.Join(s.Dir, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	// 2. Write to a temp file, then move it into place
	tmp, err := os.CreateTemp(filepath.Dir(target), ".upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write object: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close object: %w", err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return "", fmt.Errorf("store object: %w", err)
	}

	// 3. Return the public URL
	return s.BaseURL + s.PublicPrefix + clean, nil
}
