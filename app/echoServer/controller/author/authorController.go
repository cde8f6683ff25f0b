package author

import (
	authorsvc "catalog/service/author"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc authorsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /catalog/authors
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("author list error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"view": "author_list", "data": echo.Map{"title": "Author List", "authors": rows}})
}

// GET /catalog/author/:id
func (h *Controller) Detail(c echo.Context) error {
	id := c.Param("id")
	if err := h.V.Var(id, "required,uuid"); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	row, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("author detail error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if row == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"view": "author_detail", "data": echo.Map{"title": "Author: " + row.Name, "author": row}})
}
