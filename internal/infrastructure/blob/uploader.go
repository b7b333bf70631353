package blob

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"vitrine/internal/domain/model"
	"vitrine/pkg/pathcodec"
)

// sniffLen is how much of the body is buffered for content-type detection,
// matching what the mimetype package needs at most.
const sniffLen = 3072

type Uploader struct {
	minioClient *minio.Client
	cfg         *StoreConfig
}

func NewUploader(minioClient *minio.Client, cfg *StoreConfig) *Uploader {
	return &Uploader{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

// Upload transfers one blob and returns the stored asset with its issued
// download URL. When the caller declares no content type, the head of the body
// is sniffed. onProgress observes the transfer as a non-decreasing percentage.
func (u *Uploader) Upload(ctx context.Context, storagePath string, body io.Reader,
	size int64, contentType string, onProgress func(percent int),
) (model.Asset, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(u.cfg.UploadTimeout)*time.Millisecond)
	defer cancel()

	if contentType == "" {
		head := make([]byte, sniffLen)
		n, err := io.ReadFull(body, head)
		if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
			return model.Asset{}, err
		}
		head = head[:n]
		contentType = mimetype.Detect(head).String()
		body = io.MultiReader(bytes.NewReader(head), body)
	}

	reader := &progressReader{r: body, total: size, onProgress: onProgress}

	info, err := u.minioClient.PutObject(ctx, u.cfg.Bucket, storagePath, reader, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return model.Asset{}, err
	}

	if onProgress != nil {
		reader.finish()
	}

	return model.Asset{
		StoragePath: storagePath,
		DownloadURL: pathcodec.DownloadURL(u.cfg.PublicBaseURL, u.cfg.Bucket, storagePath, uuid.NewString()),
		Size:        info.Size,
		ContentType: contentType,
	}, nil
}

// progressReader reports transfer progress as the store drains the body.
// Percentages never decrease; the terminal 100 is emitted once the store call
// returns, covering bodies with unknown size.
type progressReader struct {
	r          io.Reader
	total      int64
	read       int64
	last       int
	onProgress func(percent int)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.read += int64(n)
		p.report()
	}

	return n, err
}

func (p *progressReader) report() {
	if p.onProgress == nil || p.total <= 0 {
		return
	}

	percent := int(p.read * 100 / p.total)
	if percent > 100 {
		percent = 100
	}
	if percent > p.last {
		p.last = percent
		p.onProgress(percent)
	}
}

func (p *progressReader) finish() {
	if p.last < 100 {
		p.last = 100
		p.onProgress(100)
	}
}
