package blob

import (
	"context"
	"io"

	"vitrine/internal/domain/model"
)

// Uploader transfers one blob to the store. onProgress, when non-nil, is
// invoked with a non-decreasing percentage in [0,100] before the call returns.
type Uploader interface {
	Upload(ctx context.Context, storagePath string, body io.Reader, size int64,
		contentType string, onProgress func(percent int)) (model.Asset, error)
}

// Lister enumerates the blobs under a folder prefix.
type Lister interface {
	List(ctx context.Context, folderPath string) ([]model.Asset, error)
}

// Remover deletes one blob by its storage path.
type Remover interface {
	Remove(ctx context.Context, storagePath string) error
}

// Getter opens one blob for reading. Callers close the returned body.
type Getter interface {
	Get(ctx context.Context, storagePath string) (io.ReadCloser, string, int64, error)
}
