package blob

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
)

type Getter struct {
	minioClient *minio.Client
	cfg         *StoreConfig
}

func NewGetter(minioClient *minio.Client, cfg *StoreConfig) *Getter {
	return &Getter{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

// Get opens the blob for streaming. No timeout is applied here: the caller
// streams the body for as long as the download takes and closes it.
func (g *Getter) Get(ctx context.Context, storagePath string) (io.ReadCloser, string, int64, error) {
	object, err := g.minioClient.GetObject(ctx, g.cfg.Bucket, storagePath, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", 0, err
	}

	stat, err := object.Stat()
	if err != nil {
		object.Close()

		return nil, "", 0, err
	}

	return object, stat.ContentType, stat.Size, nil
}
