package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/Astemirdum/shareit/gateway/internal/model"
	"github.com/labstack/echo/v4"
)

// bindBody decodes and validates the JSON body into v and returns the raw bytes for forwarding.
func bindBody(c echo.Context, v interface{}) ([]byte, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err = json.Unmarshal(body, v); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid body: "+err.Error())
	}
	if err = c.Validate(v); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return body, nil
}

func checkID(c echo.Context, name string) error {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, name+" must be a positive integer")
	}
	return nil
}

func checkPage(c echo.Context) error {
	if raw := c.QueryParam("from"); raw != "" {
		if from, err := strconv.Atoi(raw); err != nil || from < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "from must be a non-negative integer")
		}
	}
	if raw := c.QueryParam("size"); raw != "" {
		if size, err := strconv.Atoi(raw); err != nil || size <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "size must be a positive integer")
		}
	}
	return nil
}

func checkState(c echo.Context) error {
	raw := c.QueryParam("state")
	if raw == "" {
		return nil
	}
	if !model.BookingState(raw).Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown state: "+raw)
	}
	return nil
}
