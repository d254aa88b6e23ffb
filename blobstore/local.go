package blobstore

import (
	"context"
	"path/filepath"

	"github.com/hupe1980/polycrc/internal/mmap"
)

// LocalStore implements Store using the local file system.
type LocalStore struct {
	root string
}

// NewLocalStore creates a LocalStore rooted at root.
// An empty root resolves names against the working directory.
func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root}
}

// Open maps the named file read-only.
func (s *LocalStore) Open(_ context.Context, name string) (Blob, error) {
	path := name
	if s.root != "" {
		path = filepath.Join(s.root, name)
	}

	m, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	// Checksums read front to back exactly once.
	_ = m.Advise(mmap.AccessSequential)

	return &localBlob{m: m}, nil
}

type localBlob struct {
	m *mmap.Mapping
}

func (b *localBlob) ReadAt(_ context.Context, p []byte, off int64) (int, error) {
	return b.m.ReadAt(p, off)
}

func (b *localBlob) Close() error {
	return b.m.Close()
}

func (b *localBlob) Size() int64 {
	return b.m.Size()
}

func (b *localBlob) Bytes() ([]byte, error) {
	data := b.m.Bytes()
	if data == nil && b.m.Size() > 0 {
		return nil, mmap.ErrClosed
	}
	return data, nil
}
