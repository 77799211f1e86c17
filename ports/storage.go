package ports

import (
	"context"
	"io"
)

// FileStorage stores uploaded dataset files and hands back stable paths.
// The local-disk implementation lives in internal/upload; a cloud-backed
// implementation only needs to satisfy this interface.
type FileStorage interface {
	// Store persists the content under a unique name derived from filename
	// and returns the stored path.
	Store(ctx context.Context, content io.Reader, filename string) (string, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)
}
