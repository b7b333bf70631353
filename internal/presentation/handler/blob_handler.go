package handler

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"vitrine/internal/domain/repository/blob"
	"vitrine/internal/presentation"
)

// BlobHandler serves the objects behind issued download URLs:
// GET /v0/b/:bucket/o/:object. The object parameter arrives URL-escaped as a
// single segment and is the full storage path after decoding.
type BlobHandler struct {
	getter blob.Getter
	bucket string
}

func NewBlobHandler(getter blob.Getter, bucket string) *BlobHandler {
	return &BlobHandler{
		getter: getter,
		bucket: bucket,
	}
}

func (h *BlobHandler) Register(e *echo.Echo) {
	e.GET("/v0/b/:"+presentation.BucketParam+"/o/:"+presentation.ObjectParam, h.HandleGet)
}

func (h *BlobHandler) HandleGet(c echo.Context) error {
	if c.Param(presentation.BucketParam) != h.bucket {
		return c.NoContent(http.StatusNotFound)
	}

	storagePath := c.Param(presentation.ObjectParam)
	// The router may hand the parameter over still escaped when the request
	// carried %2F separators.
	if decoded, err := url.PathUnescape(storagePath); err == nil {
		storagePath = decoded
	}
	if storagePath == "" {
		return c.NoContent(http.StatusNotFound)
	}

	body, contentType, _, err := h.getter.Get(c.Request().Context(), storagePath)
	if err != nil {
		return c.NoContent(http.StatusNotFound)
	}
	defer body.Close()

	return c.Stream(http.StatusOK, contentType, body)
}
