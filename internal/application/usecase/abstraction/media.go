package abstraction

import (
	"context"
	"io"

	"vitrine/internal/domain/model"
)

// Media coordinates blob uploads, folder listings and URL-addressed deletions
// for one storage namespace.
type Media interface {
	Upload(ctx context.Context, folderKey, fileName, contentType string, size int64,
		body io.Reader, onProgress func(percent int)) (model.Asset, error)
	List(ctx context.Context, folderKey string) ([]model.Asset, error)
	DeleteByURL(ctx context.Context, rawURL string) error
}
