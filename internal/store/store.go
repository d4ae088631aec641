package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Upload is the metadata recorded for one stored blob. The chat core never
// reads these rows; they back the upload endpoint and the admin listing.
type Upload struct {
	ID         int64
	Name       string // original filename as uploaded
	StoredName string // unique on-disk name under the upload dir
	Kind       string // image, video, or file
	MIME       string
	Size       int64
	CreatedAt  time.Time
}

// Store persists upload metadata.
type Store interface {
	RecordUpload(ctx context.Context, up *Upload) (*Upload, error)
	GetUploadByStoredName(ctx context.Context, storedName string) (*Upload, error)
	ListUploads(ctx context.Context, limit int) ([]Upload, error)
	Close() error
}
