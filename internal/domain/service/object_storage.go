package service

import "context"

// Upload is a file handed to object storage.
type Upload struct {
	Folder      string // Key prefix, e.g. "vendors/profile".
	Filename    string // Original client filename; only its extension is kept.
	ContentType string
	Data        []byte
}

// StoredObject locates an uploaded object.
type StoredObject struct {
	URL string
	Key string
}

// ObjectStorage stores binary media.
type ObjectStorage interface {
	Upload(ctx context.Context, upload Upload) (*StoredObject, error)
	Delete(ctx context.Context, key string) error
}
