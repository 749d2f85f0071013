package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DiskStore keeps uploads under a single root, partitioned by type-specific
// subdirectories (images/, documents/). Paths returned to callers are always
// slash-separated and relative to the parent of root so they double as URLs.
type DiskStore struct {
	root string // e.g. "./uploads"
}

func NewDiskStore(root string) (*DiskStore, error) {
	if root == "" {
		root = "./uploads"
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("disk store: create root: %w", err)
	}
	return &DiskStore{root: root}, nil
}

func (s *DiskStore) Root() string { return s.root }

func (s *DiskStore) Save(ctx context.Context, subdir, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir := filepath.Join(s.root, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("disk store: create dir: %w", err)
	}

	dst := filepath.Join(dir, filename)
	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("disk store: open: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(dst) // no partial files left behind
		return "", fmt.Errorf("disk store: write: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("disk store: close: %w", err)
	}

	rel := filepath.ToSlash(filepath.Join(filepath.Base(s.root), subdir, filename))
	return rel, nil
}

func (s *DiskStore) Remove(relPath string) error {
	return os.Remove(s.abs(relPath))
}

func (s *DiskStore) Exists(relPath string) bool {
	_, err := os.Stat(s.abs(relPath))
	return err == nil
}

// abs resolves a stored relative path ("uploads/documents/x.pdf") back under
// root, refusing traversal outside it.
func (s *DiskStore) abs(relPath string) string {
	rel := filepath.FromSlash(relPath)
	base := filepath.Base(s.root)
	if strings.HasPrefix(rel, base+string(filepath.Separator)) {
		rel = rel[len(base)+1:]
	}
	rel = filepath.Clean(rel)
	if strings.HasPrefix(rel, "..") {
		rel = filepath.Base(rel)
	}
	return filepath.Join(s.root, rel)
}
