package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine/internal/application/usecase"
	"vitrine/internal/domain/dto"
	"vitrine/internal/domain/model"
	"vitrine/pkg/pathcodec"
)

type stubMedia struct {
	uploaded []string
	removed  []string

	uploadErr error
	deleteErr error
}

func (m *stubMedia) Upload(_ context.Context, folderKey, fileName, contentType string,
	size int64, body io.Reader, onProgress func(int),
) (model.Asset, error) {
	if m.uploadErr != nil {
		return model.Asset{}, m.uploadErr
	}
	m.uploaded = append(m.uploaded, folderKey+"/"+fileName)

	data, _ := io.ReadAll(body)
	if onProgress != nil {
		onProgress(100)
	}
	_ = size

	return model.Asset{
		StoragePath: "videos/creatives/" + folderKey + "/123_" + fileName,
		DownloadURL: "http://host/v0/b/bucket/o/x?alt=media&token=t",
		Size:        int64(len(data)),
		ContentType: contentType,
	}, nil
}

func (m *stubMedia) List(_ context.Context, folderKey string) ([]model.Asset, error) {
	return []model.Asset{
		{StoragePath: "videos/creatives/" + folderKey + "/1_a.mp4", Size: 10, ContentType: "video/mp4"},
		{StoragePath: "videos/creatives/" + folderKey + "/2_b.mp4", Size: 20, ContentType: "video/mp4"},
	}, nil
}

func (m *stubMedia) DeleteByURL(_ context.Context, rawURL string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.removed = append(m.removed, rawURL)

	return nil
}

func multipartBody(t *testing.T, fieldName, fileName, contentType, content string) (*bytes.Buffer, string) {
	t.Helper()

	buf := new(bytes.Buffer)
	w := multipart.NewWriter(buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+fieldName+`"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)

	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf, w.FormDataContentType()
}

func TestHandleUpload(t *testing.T) {
	t.Parallel()

	media := &stubMedia{}
	h := NewMediaHandler(media)

	body, contentType := multipartBody(t, "file", "clip.mp4", "video/mp4", "data")

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("folder")
	c.SetParamValues("fashion")

	require.NoError(t, h.HandleUpload(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"fashion/clip.mp4"}, media.uploaded)

	var descriptor dto.AssetDescriptor
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &descriptor))
	assert.Equal(t, "videos/creatives/fashion/123_clip.mp4", descriptor.Path)
	assert.Equal(t, int64(4), descriptor.Size)
}

func TestHandleUploadUnsupportedType(t *testing.T) {
	t.Parallel()

	media := &stubMedia{uploadErr: usecase.ErrUnsupportedType}
	h := NewMediaHandler(media)

	body, contentType := multipartBody(t, "file", "logo.png", "image/png", "data")

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("folder")
	c.SetParamValues("fashion")

	require.NoError(t, h.HandleUpload(c))
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestHandleUploadMissingFile(t *testing.T) {
	t.Parallel()

	h := NewMediaHandler(&stubMedia{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("folder")
	c.SetParamValues("fashion")

	require.NoError(t, h.HandleUpload(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleMediaList(t *testing.T) {
	t.Parallel()

	h := NewMediaHandler(&stubMedia{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("folder")
	c.SetParamValues("fashion")

	require.NoError(t, h.HandleList(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var descriptors []dto.AssetDescriptor
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &descriptors))
	require.Len(t, descriptors, 2)
	assert.Equal(t, "videos/creatives/fashion/1_a.mp4", descriptors[0].Path)
}

func TestHandleMediaDelete(t *testing.T) {
	t.Parallel()

	media := &stubMedia{}
	h := NewMediaHandler(media)

	raw := "https://firebasestorage.googleapis.com/v0/b/bucket/o/videos%2Fcreatives%2Ffashion%2F1_a.mp4?alt=media"

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/?url="+url.QueryEscape(raw), nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandleDelete(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{raw}, media.removed)
}

func TestHandleMediaDeleteMalformed(t *testing.T) {
	t.Parallel()

	media := &stubMedia{deleteErr: pathcodec.ErrMalformedURL}
	h := NewMediaHandler(media)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/?url=not-a-url", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandleDelete(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleMediaDeleteMissingURL(t *testing.T) {
	t.Parallel()

	h := NewMediaHandler(&stubMedia{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandleDelete(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
