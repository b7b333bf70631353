package blob

import (
	"context"
	"time"

	"github.com/minio/minio-go/v7"
)

type Remover struct {
	minioClient *minio.Client
	cfg         *StoreConfig
}

func NewRemover(minioClient *minio.Client, cfg *StoreConfig) *Remover {
	return &Remover{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (r *Remover) Remove(ctx context.Context, storagePath string) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	return r.minioClient.RemoveObject(ctx, r.cfg.Bucket, storagePath, minio.RemoveObjectOptions{})
}
