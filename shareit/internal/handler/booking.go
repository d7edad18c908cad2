package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Astemirdum/shareit/shareit/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) CreateBooking(c echo.Context) error {
	bookerID, err := userID(c)
	if err != nil {
		return err
	}
	var in model.CreateBooking
	if err = c.Bind(&in); err != nil {
		return err
	}
	booking, err := h.svc.CreateBooking(c.Request().Context(), bookerID, in)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *Handler) ApproveBooking(c echo.Context) error {
	ownerID, err := userID(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "bookingId")
	if err != nil {
		return err
	}
	approved, err := strconv.ParseBool(c.QueryParam("approved"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "approved must be true or false")
	}
	booking, err := h.svc.ApproveBooking(c.Request().Context(), ownerID, bookingID, approved)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *Handler) GetBooking(c echo.Context) error {
	requesterID, err := userID(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "bookingId")
	if err != nil {
		return err
	}
	booking, err := h.svc.GetBooking(c.Request().Context(), requesterID, bookingID)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *Handler) ListBookerBookings(c echo.Context) error {
	return h.listBookings(c, h.svc.ListBookerBookings)
}

func (h *Handler) ListOwnerBookings(c echo.Context) error {
	return h.listBookings(c, h.svc.ListOwnerBookings)
}

type listBookingsFunc func(ctx context.Context, userID int64, state model.State, page model.Page) ([]model.BookingView, error)

func (h *Handler) listBookings(c echo.Context, list listBookingsFunc) error {
	id, err := userID(c)
	if err != nil {
		return err
	}
	state, err := model.ParseState(c.QueryParam("state"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p, err := page(c)
	if err != nil {
		return err
	}
	bookings, err := list(c.Request().Context(), id, state, p)
	if err != nil {
		return h.errorResponse(err)
	}
	return c.JSON(http.StatusOK, bookings)
}
