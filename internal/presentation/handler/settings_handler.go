package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"vitrine/internal/application/usecase"
	"vitrine/internal/application/usecase/abstraction"
	"vitrine/internal/presentation"
)

type SettingsHandler struct {
	settings abstraction.Settings
}

func NewSettingsHandler(settings abstraction.Settings) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

func (h *SettingsHandler) Register(g *echo.Group, base string) {
	g.GET(base+"/:"+presentation.PageParam, h.HandleGet)
	g.PUT(base+"/:"+presentation.PageParam, h.HandlePut)
}

func (h *SettingsHandler) HandleGet(c echo.Context) error {
	page := c.Param(presentation.PageParam)

	values, err := h.settings.Get(c.Request().Context(), page)
	if err != nil {
		if errors.Is(err, usecase.ErrValidation) {
			return c.String(http.StatusBadRequest, err.Error())
		}

		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.JSON(http.StatusOK, values)
}

func (h *SettingsHandler) HandlePut(c echo.Context) error {
	page := c.Param(presentation.PageParam)

	values := make(map[string]any)
	if err := c.Bind(&values); err != nil {
		return c.String(http.StatusBadRequest, "invalid request body")
	}

	if err := h.settings.Put(c.Request().Context(), page, values); err != nil {
		if errors.Is(err, usecase.ErrValidation) {
			return c.String(http.StatusBadRequest, err.Error())
		}

		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}
