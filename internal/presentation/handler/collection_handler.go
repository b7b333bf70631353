package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"vitrine/internal/application/usecase"
	"vitrine/internal/application/usecase/abstraction"
	"vitrine/internal/domain/model"
	"vitrine/internal/presentation"
)

// CollectionHandler exposes one ordered collection over HTTP. All six content
// features register an instance of it; only the schema, the scope query
// parameter and the draft defaults differ.
type CollectionHandler[F model.Fields] struct {
	collection    abstraction.Collection[F]
	scopeQuery    string // query parameter carrying the scope, "" for top-level
	draftDefaults func() F
}

func NewCollectionHandler[F model.Fields](collection abstraction.Collection[F],
	scopeQuery string, draftDefaults func() F,
) *CollectionHandler[F] {
	if draftDefaults == nil {
		draftDefaults = func() F { var zero F; return zero }
	}

	return &CollectionHandler[F]{
		collection:    collection,
		scopeQuery:    scopeQuery,
		draftDefaults: draftDefaults,
	}
}

// Register mounts the collection routes under base.
func (h *CollectionHandler[F]) Register(g *echo.Group, base string) {
	g.GET(base, h.HandleList)
	g.GET(base+"/draft", h.HandleDraft)
	g.POST(base, h.HandleSave)
	g.DELETE(base+"/:"+presentation.IDParam, h.HandleDelete)
}

func (h *CollectionHandler[F]) HandleList(c echo.Context) error {
	scope, err := h.scope(c)
	if err != nil {
		return c.String(http.StatusBadRequest, err.Error())
	}

	records, err := h.collection.Load(c.Request().Context(), scope)
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.JSON(http.StatusOK, records)
}

func (h *CollectionHandler[F]) HandleDraft(c echo.Context) error {
	scope, err := h.scope(c)
	if err != nil {
		return c.String(http.StatusBadRequest, err.Error())
	}

	draft, err := h.collection.CreateDraft(c.Request().Context(), scope, h.draftDefaults())
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.JSON(http.StatusOK, draft)
}

func (h *CollectionHandler[F]) HandleSave(c echo.Context) error {
	var rec model.Record[F]
	if err := c.Bind(&rec); err != nil {
		return c.String(http.StatusBadRequest, "invalid request body")
	}

	saved, err := h.collection.Save(c.Request().Context(), rec)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrValidation):
			return c.String(http.StatusBadRequest, err.Error())
		case errors.Is(err, usecase.ErrFolderKeyTaken):
			return c.String(http.StatusConflict, err.Error())
		default:
			c.Response().Header().Set(presentation.ReasonTag, err.Error())

			return c.NoContent(http.StatusServiceUnavailable)
		}
	}

	return c.JSON(http.StatusOK, saved)
}

func (h *CollectionHandler[F]) HandleDelete(c echo.Context) error {
	id := c.Param(presentation.IDParam)
	if id == "" {
		return c.String(http.StatusBadRequest, "missing record id")
	}

	summary, err := h.collection.DeleteByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return c.String(http.StatusNotFound, err.Error())
		}

		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.JSON(http.StatusOK, summary)
}

func (h *CollectionHandler[F]) scope(c echo.Context) (string, error) {
	if h.scopeQuery == "" {
		return "", nil
	}

	scope := c.QueryParam(h.scopeQuery)
	if scope == "" {
		return "", errors.New("missing " + h.scopeQuery + " query parameter")
	}

	return scope, nil
}
