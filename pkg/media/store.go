package media

import (
	"errors"
	"io"
)

// ErrNotFound is returned when a media object doesn't exist.
var ErrNotFound = errors.New("media: object not found")

// ErrTooLarge is returned when an object exceeds the store's size limit.
var ErrTooLarge = errors.New("media: object too large")

// Store is the interface for illustration media backends. The disk store is
// the default; remote backends (S3, CDN origin) implement the same
// interface.
type Store interface {
	// Put stores a media object under its source name and returns the
	// published filename to record in the manifest.
	Put(name string, contentType string, size int64, r io.Reader) (published string, err error)

	// Open retrieves a stored object by published filename.
	Open(published string) (*Object, error)

	// Remove deletes a stored object by published filename.
	Remove(published string) error
}

// Object is one stored media object.
type Object struct {
	// Name is the source filename the object was stored under.
	Name string

	// Published is the filename the object is served as.
	Published string

	// ContentType is the MIME type.
	ContentType string

	// Size is the object size in bytes.
	Size int64

	// Path is the local filesystem path (disk store only).
	Path string

	// Reader provides the object contents. May be nil for disk-backed
	// objects; use Path instead.
	Reader io.ReadCloser
}

// Close closes the object reader if open.
func (o *Object) Close() error {
	if o.Reader != nil {
		return o.Reader.Close()
	}
	return nil
}
