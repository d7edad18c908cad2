package handler

import (
	"net/http"

	"github.com/Astemirdum/shareit/gateway/config"
	"github.com/Astemirdum/shareit/gateway/internal/errs"
	"github.com/Astemirdum/shareit/gateway/internal/service/shareit"
	"github.com/Astemirdum/shareit/pkg/circuit_breaker"
	md "github.com/Astemirdum/shareit/pkg/middleware"
	"github.com/Astemirdum/shareit/pkg/tracing"
	"github.com/Astemirdum/shareit/pkg/validate"
	_ "github.com/Astemirdum/shareit/swagger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	shareitSvc ShareitService
	log        *zap.Logger
}

func New(log *zap.Logger, cfg config.Config) *Handler {
	return NewWithService(shareit.NewService(log, cfg), log)
}

func NewWithService(svc ShareitService, log *zap.Logger) *Handler {
	return &Handler{
		shareitSvc: svc,
		log:        log.Named("handler"),
	}
}

// @title ShareIt gateway API
// @version 1.0
// @description Validating gateway in front of the ShareIt service.
// @BasePath /
func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)
	base.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.Validator = validate.NewCustomValidator()

	api := e.Group("",
		md.RequestID(),
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		tracing.Middleware(),
		md.Metrics,
		md.NewRateLimiter(apiRPS),
	)
	sharer := md.SharerUserID

	api.POST("/users", h.CreateUser)
	api.GET("/users", h.ListUsers)
	api.GET("/users/:userId", h.GetUser)
	api.PATCH("/users/:userId", h.UpdateUser)
	api.DELETE("/users/:userId", h.DeleteUser)

	api.POST("/items", h.CreateItem, sharer)
	api.GET("/items", h.ListItems, sharer)
	api.GET("/items/search", h.SearchItems)
	api.GET("/items/:itemId", h.GetItem, sharer)
	api.PATCH("/items/:itemId", h.UpdateItem, sharer)
	api.POST("/items/:itemId/comment", h.AddComment, sharer)

	api.POST("/bookings", h.CreateBooking, sharer)
	api.GET("/bookings", h.ListBookings, sharer)
	api.GET("/bookings/owner", h.ListOwnerBookings, sharer)
	api.GET("/bookings/:bookingId", h.GetBooking, sharer)
	api.PATCH("/bookings/:bookingId", h.ApproveBooking, sharer)

	api.POST("/requests", h.CreateRequest, sharer)
	api.GET("/requests", h.ListOwnRequests, sharer)
	api.GET("/requests/all", h.ListOtherRequests, sharer)
	api.GET("/requests/:requestId", h.GetRequest, sharer)

	return e
}

// Health godoc
// @Summary Liveness probe
// @Tags manage
// @Success 200 {string} string "OK"
// @Router /manage/health [get]
func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// forward sends the validated request to the backend through the circuit breaker
// and writes the backend answer back unchanged.
func (h *Handler) forward(c echo.Context, body []byte) error {
	var (
		data []byte
		code int
	)
	if err := h.shareitSvc.CB().Call(func() error {
		var err error
		data, code, err = h.shareitSvc.Proxy(c, body)
		if err != nil {
			return echo.NewHTTPError(code, err.Error())
		}
		return nil
	}); err != nil {
		if errors.Is(err, circuit_breaker.ErrOpenCB) {
			return echo.NewHTTPError(http.StatusServiceUnavailable, errs.ErrUnavailable.Error())
		}
		return err
	}
	if len(data) == 0 {
		return c.NoContent(code)
	}
	return c.JSONBlob(code, data)
}
