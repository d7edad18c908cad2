package handler

import (
	"github.com/Astemirdum/shareit/gateway/internal/model"
	"github.com/labstack/echo/v4"
)

// CreateRequest godoc
// @Summary Create item request
// @Tags requests
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "requestor id"
// @Param request body model.CreateItemRequest true "request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} echo.HTTPError
// @Router /requests [post]
func (h *Handler) CreateRequest(c echo.Context) error {
	var req model.CreateItemRequest
	body, err := bindBody(c, &req)
	if err != nil {
		return err
	}
	return h.forward(c, body)
}

// ListOwnRequests godoc
// @Summary List caller's requests with answers
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "requestor id"
// @Success 200 {array} map[string]interface{}
// @Router /requests [get]
func (h *Handler) ListOwnRequests(c echo.Context) error {
	return h.forward(c, nil)
}

// ListOtherRequests godoc
// @Summary List requests of other users
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "caller id"
// @Param from query int false "offset"
// @Param size query int false "page size"
// @Success 200 {array} map[string]interface{}
// @Router /requests/all [get]
func (h *Handler) ListOtherRequests(c echo.Context) error {
	if err := checkPage(c); err != nil {
		return err
	}
	return h.forward(c, nil)
}

// GetRequest godoc
// @Summary Get item request
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "caller id"
// @Param requestId path int true "request id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} echo.HTTPError
// @Router /requests/{requestId} [get]
func (h *Handler) GetRequest(c echo.Context) error {
	if err := checkID(c, "requestId"); err != nil {
		return err
	}
	return h.forward(c, nil)
}
