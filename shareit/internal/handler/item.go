package handler

import (
	"net/http"

	"github.com/Astemirdum/shareit/shareit/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) CreateItem(c echo.Context) error {
	ownerID, err := userID(c)
	if err != nil {
		return err
	}
	var in model.CreateItem
	if err = c.Bind(&in); err != nil {
		return err
	}
	item, err := h.svc.CreateItem(c.Request().Context(), ownerID, in)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *Handler) UpdateItem(c echo.Context) error {
	ownerID, err := userID(c)
	if err != nil {
		return err
	}
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return err
	}
	var patch model.ItemPatch
	if err = c.Bind(&patch); err != nil {
		return err
	}
	if err = c.Validate(patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	item, err := h.svc.UpdateItem(c.Request().Context(), ownerID, itemID, patch)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *Handler) GetItem(c echo.Context) error {
	requesterID, err := userID(c)
	if err != nil {
		return err
	}
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return err
	}
	view, err := h.svc.GetItem(c.Request().Context(), requesterID, itemID)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *Handler) ListOwnerItems(c echo.Context) error {
	ownerID, err := userID(c)
	if err != nil {
		return err
	}
	views, err := h.svc.ListOwnerItems(c.Request().Context(), ownerID)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, views)
}

func (h *Handler) SearchItems(c echo.Context) error {
	items, err := h.svc.SearchItems(c.Request().Context(), c.QueryParam("text"))
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) AddComment(c echo.Context) error {
	authorID, err := userID(c)
	if err != nil {
		return err
	}
	itemID, err := pathID(c, "itemId")
	if err != nil {
		return err
	}
	var in model.CreateComment
	if err = c.Bind(&in); err != nil {
		return err
	}
	comment, err := h.svc.AddComment(c.Request().Context(), authorID, itemID, in)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, comment)
}
