package handler

import (
	"net/http"

	"github.com/Astemirdum/shareit/shareit/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) CreateUser(c echo.Context) error {
	var in model.CreateUser
	if err := c.Bind(&in); err != nil {
		return err
	}
	if err := c.Validate(in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	user, err := h.svc.CreateUser(c.Request().Context(), in)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) UpdateUser(c echo.Context) error {
	id, err := pathID(c, "userId")
	if err != nil {
		return err
	}
	var patch model.UserPatch
	if err = c.Bind(&patch); err != nil {
		return err
	}
	if err = c.Validate(patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	user, err := h.svc.UpdateUser(c.Request().Context(), id, patch)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) GetUser(c echo.Context) error {
	id, err := pathID(c, "userId")
	if err != nil {
		return err
	}
	user, err := h.svc.GetUser(c.Request().Context(), id)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *Handler) DeleteUser(c echo.Context) error {
	id, err := pathID(c, "userId")
	if err != nil {
		return err
	}
	if err = h.svc.DeleteUser(c.Request().Context(), id); err != nil {
		return h.errorResponse(err)
	}
	return c.NoContent(http.StatusOK)
}
