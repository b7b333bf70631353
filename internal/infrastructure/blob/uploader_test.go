package blob

import (
	"bytes"
	"context"
	"io"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"vitrine/pkg/pathcodec"
)

const (
	TestAccessKey = "minioadmin"
	TestSecretKey = "minioadmin"
	BucketName    = "temp-bucket-for-tests"
)

func setupMinio(t *testing.T) *Client {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "minio/minio:latest",
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     TestAccessKey,
			"MINIO_ROOT_PASSWORD": TestSecretKey,
		},
		Cmd:        []string{"server", "/data"},
		WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatal("Failed to start container:", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Fatal(err)
	}

	client, err := New(&ClientConfig{
		AccessKey: TestAccessKey,
		SecretKey: TestSecretKey,
		Endpoint:  endpoint,
		UseSSL:    false,
	})
	if err != nil {
		t.Fatal("Failed to create blob client:", err)
	}

	if err := client.EnsureBucket(ctx, BucketName); err != nil {
		t.Fatal("Failed to create bucket:", err)
	}

	return client
}

func storeConfig() *StoreConfig {
	return &StoreConfig{
		Bucket:        BucketName,
		PublicBaseURL: "http://localhost:7712",
		UploadTimeout: 30000,
		QueryTimeout:  30000,
	}
}

func TestUploadListRemove(t *testing.T) {
	client := setupMinio(t)
	cfg := storeConfig()
	ctx := context.Background()

	uploader := NewUploader(client.MinioClient, cfg)
	lister := NewLister(client.MinioClient, cfg)
	remover := NewRemover(client.MinioClient, cfg)

	content := []byte("hello, world!")
	asset, err := uploader.Upload(ctx, "videos/creatives/fashion/1_clip.mp4",
		bytes.NewReader(content), int64(len(content)), "video/mp4", nil)
	require.NoError(t, err)
	assert.Equal(t, "videos/creatives/fashion/1_clip.mp4", asset.StoragePath)
	assert.Equal(t, int64(len(content)), asset.Size)
	assert.Equal(t, "video/mp4", asset.ContentType)

	// The issued URL inverts back to the storage path.
	path, err := pathcodec.ResolveStoragePathFromURL(asset.DownloadURL)
	require.NoError(t, err)
	assert.Equal(t, asset.StoragePath, path)

	_, err = uploader.Upload(ctx, "videos/creatives/fashion/2_other.mp4",
		bytes.NewReader(content), int64(len(content)), "video/mp4", nil)
	require.NoError(t, err)
	_, err = uploader.Upload(ctx, "videos/creatives/fashion2/1_else.mp4",
		bytes.NewReader(content), int64(len(content)), "video/mp4", nil)
	require.NoError(t, err)

	// Listing a folder never leaks its prefix-sharing siblings.
	assets, err := lister.List(ctx, "videos/creatives/fashion")
	require.NoError(t, err)
	require.Len(t, assets, 2)

	keys := []string{assets[0].StoragePath, assets[1].StoragePath}
	sort.Strings(keys)
	assert.Equal(t, []string{
		"videos/creatives/fashion/1_clip.mp4",
		"videos/creatives/fashion/2_other.mp4",
	}, keys)

	require.NoError(t, remover.Remove(ctx, "videos/creatives/fashion/1_clip.mp4"))

	assets, err = lister.List(ctx, "videos/creatives/fashion")
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, "videos/creatives/fashion/2_other.mp4", assets[0].StoragePath)

	// Empty folders list as empty, not as an error.
	assets, err = lister.List(ctx, "videos/creatives/nothing-here")
	require.NoError(t, err)
	assert.Empty(t, assets)
}

func TestUploadSniffsContentType(t *testing.T) {
	client := setupMinio(t)
	uploader := NewUploader(client.MinioClient, storeConfig())

	// PNG magic bytes with no declared type.
	content := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...)
	asset, err := uploader.Upload(context.Background(), "images/design/gal1/1_pic.png",
		bytes.NewReader(content), int64(len(content)), "", nil)
	require.NoError(t, err)
	assert.Equal(t, "image/png", asset.ContentType)
}

func TestUploadProgressIsMonotonic(t *testing.T) {
	client := setupMinio(t)
	uploader := NewUploader(client.MinioClient, storeConfig())

	content := bytes.Repeat([]byte("x"), 1024*1024)

	var progress []int
	_, err := uploader.Upload(context.Background(), "videos/creatives/fashion/3_big.mp4",
		bytes.NewReader(content), int64(len(content)), "video/mp4", func(percent int) {
			progress = append(progress, percent)
		})
	require.NoError(t, err)

	require.NotEmpty(t, progress)
	for i := 1; i < len(progress); i++ {
		assert.Greater(t, progress[i], progress[i-1], "progress must never decrease")
	}
	assert.Equal(t, 100, progress[len(progress)-1])
}

func TestGetStreamsStoredBlob(t *testing.T) {
	client := setupMinio(t)
	cfg := storeConfig()
	ctx := context.Background()

	uploader := NewUploader(client.MinioClient, cfg)
	getter := NewGetter(client.MinioClient, cfg)

	content := "stored body"
	_, err := uploader.Upload(ctx, "images/sponsors/brand/1_logo.txt",
		strings.NewReader(content), int64(len(content)), "text/plain", nil)
	require.NoError(t, err)

	body, contentType, size, err := getter.Get(ctx, "images/sponsors/brand/1_logo.txt")
	require.NoError(t, err)
	defer body.Close()

	assert.Equal(t, "text/plain", contentType)
	assert.Equal(t, int64(len(content)), size)

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))

	_, _, _, err = getter.Get(ctx, "images/sponsors/brand/missing.txt")
	assert.Error(t, err)
}
