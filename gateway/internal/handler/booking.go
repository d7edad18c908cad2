package handler

import (
	"net/http"
	"strconv"

	"github.com/Astemirdum/shareit/gateway/internal/errs"
	"github.com/Astemirdum/shareit/gateway/internal/model"
	"github.com/labstack/echo/v4"
)

// CreateBooking godoc
// @Summary Book an item
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "caller id"
// @Param booking body model.CreateBooking true "booking"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} echo.HTTPError
// @Failure 404 {object} echo.HTTPError
// @Router /bookings [post]
func (h *Handler) CreateBooking(c echo.Context) error {
	var req model.CreateBooking
	body, err := bindBody(c, &req)
	if err != nil {
		return err
	}
	if !req.End.After(req.Start.Time) {
		return echo.NewHTTPError(http.StatusBadRequest, errs.ErrEndBeforeStart.Error())
	}
	return h.forward(c, body)
}

// ApproveBooking godoc
// @Summary Approve or reject a booking
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "owner id"
// @Param bookingId path int true "booking id"
// @Param approved query bool true "decision"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} echo.HTTPError
// @Failure 409 {object} echo.HTTPError
// @Router /bookings/{bookingId} [patch]
func (h *Handler) ApproveBooking(c echo.Context) error {
	if err := checkID(c, "bookingId"); err != nil {
		return err
	}
	if _, err := strconv.ParseBool(c.QueryParam("approved")); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "approved must be true or false")
	}
	return h.forward(c, nil)
}

// GetBooking godoc
// @Summary Get booking
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "booker or owner id"
// @Param bookingId path int true "booking id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} echo.HTTPError
// @Router /bookings/{bookingId} [get]
func (h *Handler) GetBooking(c echo.Context) error {
	if err := checkID(c, "bookingId"); err != nil {
		return err
	}
	return h.forward(c, nil)
}

// ListBookings godoc
// @Summary List caller's bookings
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "booker id"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING, REJECTED"
// @Param from query int false "offset"
// @Param size query int false "page size"
// @Success 200 {array} map[string]interface{}
// @Failure 400 {object} echo.HTTPError
// @Router /bookings [get]
func (h *Handler) ListBookings(c echo.Context) error {
	return h.listBookings(c)
}

// ListOwnerBookings godoc
// @Summary List bookings of caller's items
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "owner id"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING, REJECTED"
// @Param from query int false "offset"
// @Param size query int false "page size"
// @Success 200 {array} map[string]interface{}
// @Failure 400 {object} echo.HTTPError
// @Router /bookings/owner [get]
func (h *Handler) ListOwnerBookings(c echo.Context) error {
	return h.listBookings(c)
}

func (h *Handler) listBookings(c echo.Context) error {
	if err := checkState(c); err != nil {
		return err
	}
	if err := checkPage(c); err != nil {
		return err
	}
	return h.forward(c, nil)
}
