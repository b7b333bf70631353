package blob

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"vitrine/internal/domain/model"
	"vitrine/pkg/pathcodec"
)

type Lister struct {
	minioClient *minio.Client
	cfg         *StoreConfig
}

func NewLister(minioClient *minio.Client, cfg *StoreConfig) *Lister {
	return &Lister{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

// List enumerates every blob under folderPath and issues a download URL for
// each. The trailing separator keeps "gal1" from matching "gal10".
func (l *Lister) List(ctx context.Context, folderPath string) ([]model.Asset, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(l.cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	prefix := strings.TrimSuffix(folderPath, "/") + "/"

	assets := make([]model.Asset, 0)
	for object := range l.minioClient.ListObjects(ctx, l.cfg.Bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if object.Err != nil {
			return nil, object.Err
		}

		assets = append(assets, model.Asset{
			StoragePath: object.Key,
			DownloadURL: pathcodec.DownloadURL(l.cfg.PublicBaseURL, l.cfg.Bucket, object.Key, uuid.NewString()),
			Size:        object.Size,
			ContentType: object.ContentType,
		})
	}

	return assets, nil
}
