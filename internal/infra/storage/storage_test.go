package storage

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"marketplace/config"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"

	minioLib "github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func imageUpload() service.Upload {
	return service.Upload{
		Folder:      "vendors/profile/",
		Filename:    "me.PNG",
		ContentType: "application/octet-stream",
		Data:        pngHeader,
	}
}

func TestPrepare(t *testing.T) {
	obj, err := prepare(imageUpload())
	require.NoError(t, err)
	assert.Equal(t, "image/png", obj.contentType)
	assert.True(t, strings.HasPrefix(obj.key, "vendors/profile/"))
	assert.True(t, strings.HasSuffix(obj.key, ".png"))

	other, err := prepare(imageUpload())
	require.NoError(t, err)
	assert.NotEqual(t, obj.key, other.key)
}

func TestPrepare_RejectsNonImages(t *testing.T) {
	for name, data := range map[string][]byte{
		"empty": nil,
		"text":  []byte("hello world"),
		"pdf":   []byte("%PDF-1.4\n%âãÏÓ\n"),
	} {
		t.Run(name, func(t *testing.T) {
			upload := imageUpload()
			upload.Data = data
			_, err := prepare(upload)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedMedia))
		})
	}
}

type fakeMinio struct {
	bucketExists bool
	madeBucket   bool
	putKey       string
	putOpts      minioLib.PutObjectOptions
	putData      []byte
	putErr       error
	removedKey   string
	removeErr    error
}

func (f *fakeMinio) BucketExists(context.Context, string) (bool, error) { return f.bucketExists, nil }

func (f *fakeMinio) MakeBucket(context.Context, string, minioLib.MakeBucketOptions) error {
	f.madeBucket = true

	return nil
}

func (f *fakeMinio) PutObject(_ context.Context, _, objectName string, reader io.Reader, _ int64, opts minioLib.PutObjectOptions) (minioLib.UploadInfo, error) {
	f.putKey = objectName
	f.putOpts = opts
	f.putData, _ = io.ReadAll(reader)

	return minioLib.UploadInfo{Key: objectName}, f.putErr
}

func (f *fakeMinio) RemoveObject(_ context.Context, _, objectName string, _ minioLib.RemoveObjectOptions) error {
	f.removedKey = objectName

	return f.removeErr
}

func TestMinioStore_CreatesMissingBucket(t *testing.T) {
	api := &fakeMinio{}
	_, err := newMinioStoreWithAPI(context.Background(), api, "media", "", "http://cdn")
	require.NoError(t, err)
	assert.True(t, api.madeBucket)

	api = &fakeMinio{bucketExists: true}
	_, err = newMinioStoreWithAPI(context.Background(), api, "media", "", "http://cdn")
	require.NoError(t, err)
	assert.False(t, api.madeBucket)
}

func TestMinioStore_UploadAndDelete(t *testing.T) {
	api := &fakeMinio{bucketExists: true}
	store, err := newMinioStoreWithAPI(context.Background(), api, "media", "", "http://cdn/media/")
	require.NoError(t, err)

	obj, err := store.Upload(context.Background(), imageUpload())
	require.NoError(t, err)
	assert.Equal(t, api.putKey, obj.Key)
	assert.Equal(t, "http://cdn/media/"+obj.Key, obj.URL)
	assert.Equal(t, "image/png", api.putOpts.ContentType)
	assert.True(t, bytes.Equal(pngHeader, api.putData))

	require.NoError(t, store.Delete(context.Background(), obj.Key))
	assert.Equal(t, obj.Key, api.removedKey)
}

func TestMinioStore_Errors(t *testing.T) {
	api := &fakeMinio{bucketExists: true, putErr: errors.New("503"), removeErr: errors.New("denied")}
	store, err := newMinioStoreWithAPI(context.Background(), api, "media", "", "http://cdn")
	require.NoError(t, err)

	_, err = store.Upload(context.Background(), imageUpload())
	require.Error(t, err)

	require.Error(t, store.Delete(context.Background(), "k"))

	api.removeErr = minioLib.ErrorResponse{Code: "NoSuchKey"}
	require.NoError(t, store.Delete(context.Background(), "k"))
}

func TestBlobStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewBlobStore(ctx, "mem://", "https://media.example.com")
	require.NoError(t, err)
	defer store.Close()

	obj, err := store.Upload(ctx, imageUpload())
	require.NoError(t, err)
	assert.Equal(t, "https://media.example.com/"+obj.Key, obj.URL)

	data, err := store.bucket.ReadAll(ctx, obj.Key)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, data)

	attrs, err := store.bucket.Attributes(ctx, obj.Key)
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)

	require.NoError(t, store.Delete(ctx, obj.Key))
	exists, err := store.bucket.Exists(ctx, obj.Key)
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting again is fine.
	require.NoError(t, store.Delete(ctx, obj.Key))
}

func TestNew(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	t.Run("blob", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		cfg := &config.Config{Storage: &config.StorageConfig{Provider: "blob", BlobURL: "mem://", Timeout: time.Second}}
		store, err := New(Params{Lc: lc, Ctx: context.Background(), Config: cfg, Logger: logger})
		require.NoError(t, err)
		assert.IsType(t, &timeoutStorage{}, store)
		lc.RequireStart().RequireStop()
	})

	t.Run("minio requires endpoint", func(t *testing.T) {
		cfg := &config.Config{Storage: &config.StorageConfig{Provider: "minio"}}
		_, err := New(Params{Lc: fxtest.NewLifecycle(t), Ctx: context.Background(), Config: cfg, Logger: logger})
		require.Error(t, err)
	})

	t.Run("unknown", func(t *testing.T) {
		cfg := &config.Config{Storage: &config.StorageConfig{Provider: "ftp"}}
		_, err := New(Params{Lc: fxtest.NewLifecycle(t), Ctx: context.Background(), Config: cfg, Logger: logger})
		require.Error(t, err)
	})
}
