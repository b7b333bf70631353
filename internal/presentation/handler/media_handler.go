package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"vitrine/internal/application/usecase"
	"vitrine/internal/application/usecase/abstraction"
	"vitrine/internal/domain/dto"
	"vitrine/internal/domain/model"
	"vitrine/internal/presentation"
	"vitrine/pkg/logger"
	"vitrine/pkg/pathcodec"
)

// MediaHandler exposes one media namespace: upload into a folder, list a
// folder, delete by download URL.
type MediaHandler struct {
	media abstraction.Media
}

func NewMediaHandler(media abstraction.Media) *MediaHandler {
	return &MediaHandler{media: media}
}

// Register mounts the media routes under base.
func (h *MediaHandler) Register(g *echo.Group, base string) {
	g.GET(base+"/:"+presentation.FolderParam, h.HandleList)
	g.POST(base+"/:"+presentation.FolderParam, h.HandleUpload)
	g.DELETE(base, h.HandleDelete)
}

func (h *MediaHandler) HandleUpload(c echo.Context) error {
	folder := c.Param(presentation.FolderParam)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.String(http.StatusBadRequest, "missing file form field")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.String(http.StatusBadRequest, "unreadable file form field")
	}
	defer src.Close()

	contentType := fileHeader.Header.Get("Content-Type")

	asset, err := h.media.Upload(c.Request().Context(), folder, fileHeader.Filename,
		contentType, fileHeader.Size, src, func(percent int) {
			logger.Debug("upload progress", "file", fileHeader.Filename, "percent", percent)
		})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnsupportedType):
			return c.String(http.StatusUnsupportedMediaType, err.Error())
		case errors.Is(err, pathcodec.ErrInvalidInput):
			return c.String(http.StatusBadRequest, err.Error())
		default:
			logger.Error("upload failed", "folder", folder, "file", fileHeader.Filename, "err", err)
			c.Response().Header().Set(presentation.ReasonTag, err.Error())

			return c.NoContent(http.StatusServiceUnavailable)
		}
	}

	return c.JSON(http.StatusOK, describe(asset))
}

func (h *MediaHandler) HandleList(c echo.Context) error {
	folder := c.Param(presentation.FolderParam)

	assets, err := h.media.List(c.Request().Context(), folder)
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(http.StatusServiceUnavailable)
	}

	descriptors := make([]dto.AssetDescriptor, 0, len(assets))
	for _, asset := range assets {
		descriptors = append(descriptors, describe(asset))
	}

	return c.JSON(http.StatusOK, descriptors)
}

// HandleDelete handles DELETE ?url= requests. A URL the codec cannot invert is
// rejected without touching the store.
func (h *MediaHandler) HandleDelete(c echo.Context) error {
	rawURL := c.QueryParam("url")
	if rawURL == "" {
		return c.String(http.StatusBadRequest, "missing url query parameter")
	}

	if err := h.media.DeleteByURL(c.Request().Context(), rawURL); err != nil {
		if errors.Is(err, pathcodec.ErrMalformedURL) {
			return c.String(http.StatusBadRequest, err.Error())
		}

		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}

func describe(asset model.Asset) dto.AssetDescriptor {
	return dto.AssetDescriptor{
		URL:      asset.DownloadURL,
		Path:     asset.StoragePath,
		Size:     asset.Size,
		FileType: asset.ContentType,
		Uploaded: time.Now().Unix(),
	}
}
