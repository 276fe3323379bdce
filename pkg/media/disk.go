package media

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// DiskStore stores media objects on the local filesystem, fingerprinting
// filenames with a content hash so published names are cache-safe.
type DiskStore struct {
	dir     string
	maxSize int64

	mu   sync.RWMutex
	meta map[string]*diskMeta
}

type diskMeta struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// NewDiskStore creates a DiskStore rooted at dir. maxSize of 0 disables the
// size limit.
func NewDiskStore(dir string, maxSize int64) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &DiskStore{
		dir:     dir,
		maxSize: maxSize,
		meta:    make(map[string]*diskMeta),
	}, nil
}

// Put stores the object and returns its fingerprinted published filename.
func (s *DiskStore) Put(name, contentType string, size int64, r io.Reader) (string, error) {
	if s.maxSize > 0 && size > s.maxSize {
		return "", ErrTooLarge
	}

	tmp, err := os.CreateTemp(s.dir, ".put-*")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	hash := sha256.New()
	written, err := io.Copy(io.MultiWriter(tmp, hash), r)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return "", err
	}
	if s.maxSize > 0 && written > s.maxSize {
		return "", ErrTooLarge
	}

	published := fingerprint(name, hex.EncodeToString(hash.Sum(nil))[:8])
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, published)); err != nil {
		return "", err
	}

	s.mu.Lock()
	s.meta[published] = &diskMeta{Name: name, ContentType: contentType, Size: written}
	s.mu.Unlock()

	return published, nil
}

// Open retrieves a stored object by published filename.
func (s *DiskStore) Open(published string) (*Object, error) {
	s.mu.RLock()
	m, ok := s.meta[published]
	s.mu.RUnlock()

	path := filepath.Join(s.dir, filepath.Base(published))
	info, err := os.Stat(path)
	if err != nil {
		return nil, ErrNotFound
	}

	obj := &Object{Published: published, Path: path, Size: info.Size()}
	if ok {
		obj.Name = m.Name
		obj.ContentType = m.ContentType
	}
	return obj, nil
}

// Remove deletes a stored object.
func (s *DiskStore) Remove(published string) error {
	s.mu.Lock()
	delete(s.meta, published)
	s.mu.Unlock()

	err := os.Remove(filepath.Join(s.dir, filepath.Base(published)))
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	return err
}

// Dir returns the store's root directory, for static file serving.
func (s *DiskStore) Dir() string {
	return s.dir
}

// fingerprint inserts a content hash before the filename extension:
// plant.png + a1b2c3d4 → plant.a1b2c3d4.png.
func fingerprint(name, hash string) string {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + "." + hash + ext
}
