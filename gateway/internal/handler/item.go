package handler

import (
	"github.com/Astemirdum/shareit/gateway/internal/model"
	"github.com/labstack/echo/v4"
)

// CreateItem godoc
// @Summary Create item
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "caller id"
// @Param item body model.CreateItem true "item"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Router /items [post]
func (h *Handler) CreateItem(c echo.Context) error {
	var req model.CreateItem
	body, err := bindBody(c, &req)
	if err != nil {
		return err
	}
	return h.forward(c, body)
}

// ListItems godoc
// @Summary List caller's items with booking windows
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "caller id"
// @Param from query int false "offset"
// @Param size query int false "page size"
// @Success 200 {array} map[string]interface{}
// @Router /items [get]
func (h *Handler) ListItems(c echo.Context) error {
	if err := checkPage(c); err != nil {
		return err
	}
	return h.forward(c, nil)
}

// SearchItems godoc
// @Summary Search available items
// @Tags items
// @Produce json
// @Param text query string false "search text"
// @Param from query int false "offset"
// @Param size query int false "page size"
// @Success 200 {array} map[string]interface{}
// @Router /items/search [get]
func (h *Handler) SearchItems(c echo.Context) error {
	if err := checkPage(c); err != nil {
		return err
	}
	return h.forward(c, nil)
}

// GetItem godoc
// @Summary Get item
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "caller id"
// @Param itemId path int true "item id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} echo.HTTPError
// @Router /items/{itemId} [get]
func (h *Handler) GetItem(c echo.Context) error {
	if err := checkID(c, "itemId"); err != nil {
		return err
	}
	return h.forward(c, nil)
}

// UpdateItem godoc
// @Summary Patch item
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "caller id"
// @Param itemId path int true "item id"
// @Param item body model.UpdateItem true "patch"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Router /items/{itemId} [patch]
func (h *Handler) UpdateItem(c echo.Context) error {
	if err := checkID(c, "itemId"); err != nil {
		return err
	}
	var req model.UpdateItem
	body, err := bindBody(c, &req)
	if err != nil {
		return err
	}
	return h.forward(c, body)
}

// AddComment godoc
// @Summary Comment an item after a finished booking
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "caller id"
// @Param itemId path int true "item id"
// @Param comment body model.CreateComment true "comment"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} echo.HTTPError
// @Router /items/{itemId}/comment [post]
func (h *Handler) AddComment(c echo.Context) error {
	if err := checkID(c, "itemId"); err != nil {
		return err
	}
	var req model.CreateComment
	body, err := bindBody(c, &req)
	if err != nil {
		return err
	}
	return h.forward(c, body)
}
