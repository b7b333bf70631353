package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"vitrine/internal/application/usecase"
	"vitrine/internal/application/usecase/abstraction"
	"vitrine/internal/presentation"
)

// Session guards a route group with the bearer-token session check. The
// authenticated identity is stored on the request context for handlers.
func Session(auth abstraction.Auth) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(presentation.AuthKey)
			if header == "" {
				return ctx.String(http.StatusUnauthorized, "missing Authorization header")
			}
			if !strings.HasPrefix(header, presentation.BearerPrefix) {
				return ctx.String(http.StatusUnauthorized, "missing Bearer prefix")
			}

			token := strings.TrimPrefix(header, presentation.BearerPrefix)

			identity, err := auth.Verify(ctx.Request().Context(), token)
			if err != nil {
				if errors.Is(err, usecase.ErrInvalidCredentials) {
					return ctx.String(http.StatusUnauthorized, "invalid or expired session")
				}

				ctx.Response().Header().Set(presentation.ReasonTag, err.Error())

				return ctx.NoContent(http.StatusServiceUnavailable)
			}

			ctx.Set(presentation.AdminKey, identity)

			return next(ctx)
		}
	}
}
