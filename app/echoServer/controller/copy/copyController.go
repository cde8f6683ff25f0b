package copy

import (
	copysvc "catalog/service/copy"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc copysvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// render maps the service outcome onto HTTP. The three kinds are the whole
// contract; anything else is a bug upstream.
func render(c echo.Context, res copysvc.Result) error {
	switch res.Kind {
	case copysvc.KindRedirect:
		return c.Redirect(http.StatusSeeOther, res.Path)
	case copysvc.KindNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"message": "not found"})
	default:
		return c.JSON(http.StatusOK, echo.Map{"view": res.View, "data": res.Data})
	}
}

func (h *Controller) id(c echo.Context) (string, bool) {
	id := c.Param("id")
	if err := h.V.Var(id, "required,uuid"); err != nil {
		return "", false
	}
	return id, true
}

// GET /catalog/copies
func (h *Controller) List(c echo.Context) error {
	res, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("copy list error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return render(c, res)
}

// GET /catalog/copy/:id
func (h *Controller) Detail(c echo.Context) error {
	id, ok := h.id(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	res, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("copy detail error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return render(c, res)
}

// GET /catalog/copy/create
func (h *Controller) NewForm(c echo.Context) error {
	res, err := h.Svc.NewForm(c.Request().Context())
	if err != nil {
		h.Log.Error("copy form error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return render(c, res)
}

// POST /catalog/copy/create
func (h *Controller) Create(c echo.Context) error {
	var req CopyFormReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid payload"})
	}
	res, err := h.Svc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		h.Log.Error("copy create error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return render(c, res)
}

// GET /catalog/copy/:id/update
func (h *Controller) EditForm(c echo.Context) error {
	id, ok := h.id(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	res, err := h.Svc.EditForm(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("copy edit form error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return render(c, res)
}

// POST /catalog/copy/:id/update
func (h *Controller) Update(c echo.Context) error {
	id, ok := h.id(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req CopyFormReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid payload"})
	}
	res, err := h.Svc.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		h.Log.Error("copy update error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return render(c, res)
}

// GET /catalog/copy/:id/delete
func (h *Controller) DeleteForm(c echo.Context) error {
	id, ok := h.id(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	res, err := h.Svc.DeleteForm(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("copy delete form error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return render(c, res)
}

// POST /catalog/copy/:id/delete
func (h *Controller) Delete(c echo.Context) error {
	id, ok := h.id(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	res, err := h.Svc.Delete(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("copy delete error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return render(c, res)
}
