package handler

import (
	"github.com/Astemirdum/shareit/gateway/internal/model"
	"github.com/labstack/echo/v4"
)

// CreateUser godoc
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param user body model.CreateUser true "user"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} echo.HTTPError
// @Failure 409 {object} echo.HTTPError
// @Router /users [post]
func (h *Handler) CreateUser(c echo.Context) error {
	var req model.CreateUser
	body, err := bindBody(c, &req)
	if err != nil {
		return err
	}
	return h.forward(c, body)
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /users [get]
func (h *Handler) ListUsers(c echo.Context) error {
	return h.forward(c, nil)
}

// GetUser godoc
// @Summary Get user
// @Tags users
// @Produce json
// @Param userId path int true "user id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} echo.HTTPError
// @Router /users/{userId} [get]
func (h *Handler) GetUser(c echo.Context) error {
	if err := checkID(c, "userId"); err != nil {
		return err
	}
	return h.forward(c, nil)
}

// UpdateUser godoc
// @Summary Patch user
// @Tags users
// @Accept json
// @Produce json
// @Param userId path int true "user id"
// @Param user body model.UpdateUser true "patch"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} echo.HTTPError
// @Failure 409 {object} echo.HTTPError
// @Router /users/{userId} [patch]
func (h *Handler) UpdateUser(c echo.Context) error {
	if err := checkID(c, "userId"); err != nil {
		return err
	}
	var req model.UpdateUser
	body, err := bindBody(c, &req)
	if err != nil {
		return err
	}
	return h.forward(c, body)
}

// DeleteUser godoc
// @Summary Delete user
// @Tags users
// @Param userId path int true "user id"
// @Success 200
// @Router /users/{userId} [delete]
func (h *Handler) DeleteUser(c echo.Context) error {
	if err := checkID(c, "userId"); err != nil {
		return err
	}
	return h.forward(c, nil)
}
