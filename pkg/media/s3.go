//go:build s3media
// +build s3media

// S3-backed media store. Excluded from regular builds; enable with the
// s3media build tag and configure an aws-sdk-go-v2 client:
//
//	cfg, _ := config.LoadDefaultConfig(context.Background())
//	store := media.NewS3Store(s3.NewFromConfig(cfg), "my-bucket", "media/", 0)

package media

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store stores media objects in an S3 bucket.
type S3Store struct {
	client  *s3.Client
	bucket  string
	prefix  string
	maxSize int64
}

// NewS3Store creates an S3 media store. Objects are written under
// prefix+published. maxSize of 0 disables the size limit.
func NewS3Store(client *s3.Client, bucket, prefix string, maxSize int64) *S3Store {
	return &S3Store{
		client:  client,
		bucket:  bucket,
		prefix:  prefix,
		maxSize: maxSize,
	}
}

// Put uploads the object and returns its fingerprinted published filename.
func (s *S3Store) Put(name, contentType string, size int64, r io.Reader) (string, error) {
	if s.maxSize > 0 && size > s.maxSize {
		return "", ErrTooLarge
	}

	var buf bytes.Buffer
	hash := sha256.New()
	written, err := io.Copy(io.MultiWriter(&buf, hash), r)
	if err != nil {
		return "", err
	}
	if s.maxSize > 0 && written > s.maxSize {
		return "", ErrTooLarge
	}

	published := fingerprint(name, hex.EncodeToString(hash.Sum(nil))[:8])
	_, err = s.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.prefix + published),
		Body:          bytes.NewReader(buf.Bytes()),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(written),
	})
	if err != nil {
		return "", err
	}
	return published, nil
}

// Open retrieves a stored object by published filename.
func (s *S3Store) Open(published string) (*Object, error) {
	out, err := s.client.GetObject(context.Background(), &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.prefix + published),
	})
	if err != nil {
		return nil, ErrNotFound
	}

	obj := &Object{Published: published, Reader: out.Body}
	if out.ContentType != nil {
		obj.ContentType = *out.ContentType
	}
	if out.ContentLength != nil {
		obj.Size = *out.ContentLength
	}
	return obj, nil
}

// Remove deletes a stored object.
func (s *S3Store) Remove(published string) error {
	_, err := s.client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.prefix + published),
	})
	return err
}
