package storage

import (
	"context"
	"io"
)

// Store persists uploaded files and serves them back as static assets.
type Store interface {
	// Save writes r under subdir/filename and returns the storage-relative
	// path recorded on the Media row.
	Save(ctx context.Context, subdir, filename string, r io.Reader) (string, error)
	// Remove deletes a previously saved file by its relative path.
	Remove(relPath string) error
	// Exists reports whether the relative path is present on disk.
	Exists(relPath string) bool
}
