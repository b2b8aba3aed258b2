// Package storage keeps uploaded media in MinIO/S3 or any gocloud.dev blob bucket.
package storage

import (
	"path"
	"strings"

	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
	"github.com/segmentio/ksuid"
)

// preparedObject is an upload that passed content checks and has a storage key.
type preparedObject struct {
	key         string
	contentType string
	data        []byte
}

// prepare sniffs the payload, rejects anything that is not an image and assigns a
// collision-free key under the upload's folder.
func prepare(upload service.Upload) (*preparedObject, error) {
	if len(upload.Data) == 0 {
		return nil, errors.Wrap(domainerrors.ErrUnsupportedMedia, "empty file")
	}

	detected := mimetype.Detect(upload.Data)
	if !strings.HasPrefix(detected.String(), "image/") {
		return nil, errors.Wrapf(domainerrors.ErrUnsupportedMedia, "detected %s", detected.String())
	}

	ext := detected.Extension()
	if ext == "" {
		ext = strings.ToLower(path.Ext(upload.Filename))
	}

	folder := strings.Trim(upload.Folder, "/")
	key := ksuid.New().String() + ext
	if folder != "" {
		key = folder + "/" + key
	}

	return &preparedObject{
		key:         key,
		contentType: detected.String(),
		data:        upload.Data,
	}, nil
}

func publicURL(baseURL, key string) string {
	return strings.TrimRight(baseURL, "/") + "/" + key
}
