package handler

import (
	"net/http"

	"github.com/Astemirdum/shareit/shareit/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) CreateRequest(c echo.Context) error {
	id, err := userID(c)
	if err != nil {
		return err
	}
	var in model.CreateItemRequest
	if err = c.Bind(&in); err != nil {
		return err
	}
	request, err := h.svc.CreateRequest(c.Request().Context(), id, in)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, request)
}

func (h *Handler) ListOwnRequests(c echo.Context) error {
	id, err := userID(c)
	if err != nil {
		return err
	}
	requests, err := h.svc.ListOwnRequests(c.Request().Context(), id)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, requests)
}

func (h *Handler) ListOtherRequests(c echo.Context) error {
	id, err := userID(c)
	if err != nil {
		return err
	}
	p, err := page(c)
	if err != nil {
		return err
	}
	requests, err := h.svc.ListOtherRequests(c.Request().Context(), id, p)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, requests)
}

func (h *Handler) GetRequest(c echo.Context) error {
	id, err := userID(c)
	if err != nil {
		return err
	}
	requestID, err := pathID(c, "requestId")
	if err != nil {
		return err
	}
	request, err := h.svc.GetRequest(c.Request().Context(), id, requestID)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, request)
}
