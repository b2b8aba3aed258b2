package storage

import (
	"context"

	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	// Registered bucket URL schemes: file://, mem://, s3://.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

type blobStore struct {
	bucket  *blob.Bucket
	baseURL string
}

// NewBlobStore opens a gocloud.dev bucket URL such as "file:///var/media" or "s3://bucket?region=x".
func NewBlobStore(ctx context.Context, bucketURL, baseURL string) (*blobStore, error) {
	if bucketURL == "" {
		return nil, errors.New("storage blobUrl is required for blob provider")
	}

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", bucketURL)
	}

	return &blobStore{bucket: bucket, baseURL: baseURL}, nil
}

func (s *blobStore) Upload(ctx context.Context, upload service.Upload) (*service.StoredObject, error) {
	obj, err := prepare(upload)
	if err != nil {
		return nil, err
	}

	if err := s.bucket.WriteAll(ctx, obj.key, obj.data, &blob.WriterOptions{ContentType: obj.contentType}); err != nil {
		return nil, errors.Wrap(err, "write object")
	}

	return &service.StoredObject{URL: publicURL(s.baseURL, obj.key), Key: obj.key}, nil
}

// Delete removes the object; a missing object is not an error.
func (s *blobStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "delete object")
	}

	return nil
}

// Close releases the bucket.
func (s *blobStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}
