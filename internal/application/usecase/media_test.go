package usecase

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine/internal/domain/model"
	"vitrine/pkg/pathcodec"
)

type fakeUploader struct {
	calls []string
}

func (u *fakeUploader) Upload(_ context.Context, storagePath string, body io.Reader,
	_ int64, contentType string, onProgress func(int),
) (model.Asset, error) {
	u.calls = append(u.calls, storagePath)

	data, _ := io.ReadAll(body)
	if onProgress != nil {
		onProgress(100)
	}

	return model.Asset{
		StoragePath: storagePath,
		DownloadURL: pathcodec.DownloadURL("http://host", "bucket", storagePath, "tok"),
		Size:        int64(len(data)),
		ContentType: contentType,
	}, nil
}

type fakeRemover struct {
	removed []string
}

func (r *fakeRemover) Remove(_ context.Context, storagePath string) error {
	r.removed = append(r.removed, storagePath)

	return nil
}

func videoMedia(uploader *fakeUploader, remover *fakeRemover) *Media {
	m := NewMedia(uploader, nil, remover, "videos/creatives", &TypePolicy{
		Extensions: []string{"mp4", "mov", "m4v"},
		MIMEPrefix: "video/",
	})
	m.now = func() time.Time { return time.UnixMilli(1700000000000) }

	return m
}

func TestUploadRejectsUnsupportedTypeWithoutTransfer(t *testing.T) {
	t.Parallel()

	uploader := &fakeUploader{}
	media := videoMedia(uploader, &fakeRemover{})

	_, err := media.Upload(context.Background(), "fashion", "logo.png", "image/png",
		4, strings.NewReader("data"), nil)
	assert.ErrorIs(t, err, ErrUnsupportedType)
	assert.Empty(t, uploader.calls, "no transfer may start for a rejected type")
}

func TestUploadBuildsCodecPath(t *testing.T) {
	t.Parallel()

	uploader := &fakeUploader{}
	media := videoMedia(uploader, &fakeRemover{})

	var progress []int
	asset, err := media.Upload(context.Background(), "fashion", "my clip.mp4", "video/mp4",
		4, strings.NewReader("data"), func(p int) { progress = append(progress, p) })
	require.NoError(t, err)

	assert.Equal(t, "videos/creatives/fashion/1700000000000_myclip.mp4", asset.StoragePath)
	assert.Equal(t, []string{asset.StoragePath}, uploader.calls)
	assert.Equal(t, []int{100}, progress)

	// The issued URL inverts back to the storage path.
	path, err := pathcodec.ResolveStoragePathFromURL(asset.DownloadURL)
	require.NoError(t, err)
	assert.Equal(t, asset.StoragePath, path)
}

func TestUploadEmptyFolderKey(t *testing.T) {
	t.Parallel()

	uploader := &fakeUploader{}
	media := videoMedia(uploader, &fakeRemover{})

	_, err := media.Upload(context.Background(), "", "clip.mp4", "video/mp4",
		4, strings.NewReader("data"), nil)
	assert.ErrorIs(t, err, pathcodec.ErrInvalidInput)
	assert.Empty(t, uploader.calls)
}

func TestDeleteByURL(t *testing.T) {
	t.Parallel()

	remover := &fakeRemover{}
	media := videoMedia(&fakeUploader{}, remover)

	url := "https://firebasestorage.googleapis.com/v0/b/bucket/o/videos%2Fcreatives%2Ffashion%2F123_clip.mp4?alt=media&token=abc"
	require.NoError(t, media.DeleteByURL(context.Background(), url))
	assert.Equal(t, []string{"videos/creatives/fashion/123_clip.mp4"}, remover.removed)
}

func TestDeleteByURLMalformed(t *testing.T) {
	t.Parallel()

	remover := &fakeRemover{}
	media := videoMedia(&fakeUploader{}, remover)

	err := media.DeleteByURL(context.Background(), "not-a-url")
	assert.ErrorIs(t, err, pathcodec.ErrMalformedURL)
	assert.Empty(t, remover.removed, "no delete may be attempted for an unparseable url")
}

func TestTypePolicyAllows(t *testing.T) {
	t.Parallel()

	video := &TypePolicy{Extensions: []string{"mp4", "mov", "m4v"}, MIMEPrefix: "video/"}

	tests := []struct {
		name        string
		policy      *TypePolicy
		fileName    string
		contentType string
		want        bool
	}{
		{"nil policy allows anything", nil, "anything.xyz", "application/octet-stream", true},
		{"allowed extension", video, "clip.mp4", "video/mp4", true},
		{"upper-case extension", video, "CLIP.MOV", "video/quicktime", true},
		{"wrong extension", video, "photo.png", "", false},
		{"wrong mime", video, "clip.mp4", "image/png", false},
		{"no declared type", video, "clip.m4v", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.policy.Allows(tt.fileName, tt.contentType))
		})
	}
}
