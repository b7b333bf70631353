package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"vitrine/internal/application/usecase"
	"vitrine/internal/application/usecase/abstraction"
	"vitrine/internal/domain/dto"
	"vitrine/internal/presentation"
)

type AuthHandler struct {
	auth abstraction.Auth
}

func NewAuthHandler(auth abstraction.Auth) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// HandleLogin handles POST /auth/login requests.
func (h *AuthHandler) HandleLogin(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "invalid request body")
	}

	token, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			return c.String(http.StatusUnauthorized, "invalid credentials")
		}

		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}

// HandleLogout handles POST /auth/logout requests.
func (h *AuthHandler) HandleLogout(c echo.Context) error {
	header := c.Request().Header.Get(presentation.AuthKey)
	token := strings.TrimPrefix(header, presentation.BearerPrefix)
	if token == "" {
		return c.String(http.StatusBadRequest, "missing session token")
	}

	if err := h.auth.Logout(c.Request().Context(), token); err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}
