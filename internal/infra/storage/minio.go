package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"marketplace/config"
	"marketplace/internal/domain/service"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

// minioAPI is the subset of *minio.Client the store uses, so tests can run without a server.
type minioAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

type minioStore struct {
	api     minioAPI
	bucket  string
	baseURL string
}

// NewMinioStore connects to an S3-compatible endpoint and makes sure the bucket exists.
func NewMinioStore(ctx context.Context, cfg *config.StorageConfig) (service.ObjectStorage, error) {
	if cfg.Endpoint == "" || cfg.Bucket == "" {
		return nil, errors.New("storage endpoint and bucket are required for minio provider")
	}

	endpoint := cfg.Endpoint
	useSSL := cfg.UseSSL
	if strings.HasPrefix(endpoint, "http") {
		u, err := url.Parse(endpoint)
		if err != nil {
			return nil, errors.Wrap(err, "parse storage endpoint")
		}
		endpoint = u.Host
		useSSL = u.Scheme == "https"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: useSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, errors.Wrap(err, "init minio")
	}

	baseURL := cfg.PublicBaseURL
	if baseURL == "" {
		scheme := "http"
		if useSSL {
			scheme = "https"
		}
		baseURL = fmt.Sprintf("%s://%s/%s", scheme, endpoint, cfg.Bucket)
	}

	return newMinioStoreWithAPI(ctx, client, cfg.Bucket, cfg.Region, baseURL)
}

func newMinioStoreWithAPI(ctx context.Context, api minioAPI, bucket, region, baseURL string) (*minioStore, error) {
	exists, err := api.BucketExists(ctx, bucket)
	if err != nil {
		return nil, errors.Wrap(err, "check bucket existence")
	}
	if !exists {
		if err := api.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			return nil, errors.Wrap(err, "create bucket")
		}
	}

	return &minioStore{api: api, bucket: bucket, baseURL: baseURL}, nil
}

func (s *minioStore) Upload(ctx context.Context, upload service.Upload) (*service.StoredObject, error) {
	obj, err := prepare(upload)
	if err != nil {
		return nil, err
	}

	_, err = s.api.PutObject(ctx, s.bucket, obj.key, bytes.NewReader(obj.data), int64(len(obj.data)), minio.PutObjectOptions{
		ContentType: obj.contentType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "put object")
	}

	return &service.StoredObject{URL: publicURL(s.baseURL, obj.key), Key: obj.key}, nil
}

// Delete removes the object; a missing object is not an error.
func (s *minioStore) Delete(ctx context.Context, key string) error {
	err := s.api.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	if err != nil && minio.ToErrorResponse(err).Code != "NoSuchKey" {
		return errors.Wrap(err, "remove object")
	}

	return nil
}
