// Package upload stores uploaded dataset files on the local filesystem under
// collision-free names.
package upload

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"tablescrub/internal/errors"
)

// unsafeChars matches everything stripped from client-supplied filenames.
var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// LocalStorage implements ports.FileStorage on a local directory.
type LocalStorage struct {
	baseDir     string
	maxBytes    int64
	allowedExts map[string]bool
}

// NewLocalStorage creates storage rooted at baseDir. Only .csv uploads are
// accepted and files larger than maxBytes are rejected.
func NewLocalStorage(baseDir string, maxBytes int64) *LocalStorage {
	return &LocalStorage{
		baseDir:     baseDir,
		maxBytes:    maxBytes,
		allowedExts: map[string]bool{".csv": true},
	}
}

// Store saves the content under a sanitized unique name and returns its path.
// The unique name combines the sanitized base name, a timestamp and a short
// uuid fragment, so concurrent uploads of the same file never collide.
func (s *LocalStorage) Store(ctx context.Context, content io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !s.allowedExts[ext] {
		return "", errors.InvalidInput("file type not allowed (use CSV)")
	}
	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return "", errors.IOError("cannot create upload directory", err)
	}

	base := sanitizeBaseName(filename)
	unique := base + "_" + time.Now().Format("20060102_150405") + "_" + uuid.New().String()[:8] + ext
	path := filepath.Join(s.baseDir, unique)

	dest, err := os.Create(path)
	if err != nil {
		return "", errors.IOError("cannot create upload file", err)
	}
	defer dest.Close()

	n, err := io.Copy(dest, io.LimitReader(content, s.maxBytes+1))
	if err != nil {
		os.Remove(path)
		return "", errors.IOError("cannot save upload", err)
	}
	if n > s.maxBytes {
		os.Remove(path)
		return "", errors.InvalidInput("uploaded file exceeds the size limit")
	}
	return path, nil
}

// Open returns a reader for a stored file.
func (s *LocalStorage) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.IOError("cannot open stored file", err)
	}
	return f, nil
}

// Delete removes a stored file; a missing file is not an error.
func (s *LocalStorage) Delete(ctx context.Context, path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.IOError("cannot delete stored file", err)
	}
	return nil
}

// Exists checks whether a stored file is present.
func (s *LocalStorage) Exists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.IOError("cannot stat stored file", err)
	}
	return true, nil
}

func sanitizeBaseName(filename string) string {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = unsafeChars.ReplaceAllString(base, "_")
	base = strings.Trim(base, "._-")
	if base == "" {
		base = "dataset"
	}
	return base
}
