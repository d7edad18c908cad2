package handler

import (
	"net/http"
	"strconv"

	"github.com/Astemirdum/shareit/pkg/auth"
	"github.com/Astemirdum/shareit/shareit/internal/errs"
	"github.com/Astemirdum/shareit/shareit/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func (h *Handler) errorResponse(err error) error {
	var code int
	switch {
	case errors.Is(err, errs.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidRequest):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
	default:
		h.log.Error("internal", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return echo.NewHTTPError(code, err.Error())
}

func userID(c echo.Context) (int64, error) {
	id, err := auth.GetUserID(c.Request().Context())
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return id, nil
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be a positive integer")
	}
	return id, nil
}

// page reads from (offset, default 0) and size (limit, default unbounded).
func page(c echo.Context) (model.Page, error) {
	var p model.Page
	if raw := c.QueryParam("from"); raw != "" {
		from, err := strconv.Atoi(raw)
		if err != nil || from < 0 {
			return model.Page{}, echo.NewHTTPError(http.StatusBadRequest, "from must be a non-negative integer")
		}
		p.From = from
	}
	if raw := c.QueryParam("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size <= 0 {
			return model.Page{}, echo.NewHTTPError(http.StatusBadRequest, "size must be a positive integer")
		}
		p.Size = size
	}
	return p, nil
}
