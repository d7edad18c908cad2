package handler

import (
	"net/http"

	md "github.com/Astemirdum/shareit/pkg/middleware"
	"github.com/Astemirdum/shareit/pkg/tracing"
	"github.com/Astemirdum/shareit/pkg/validate"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Handler struct {
	svc ShareitService
	log *zap.Logger
}

func New(svc ShareitService, log *zap.Logger) *Handler {
	return &Handler{
		svc: svc,
		log: log.Named("handler"),
	}
}

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
	api.GET("/items", h.ListOwnerItems, sharer)
	api.GET("/items/search", h.SearchItems)
	api.GET("/items/:itemId", h.GetItem, sharer)
	api.PATCH("/items/:itemId", h.UpdateItem, sharer)
	api.POST("/items/:itemId/comment", h.AddComment, sharer)

	api.POST("/bookings", h.CreateBooking, sharer)
	api.GET("/bookings", h.ListBookerBookings, sharer)
	api.GET("/bookings/owner", h.ListOwnerBookings, sharer)
	api.GET("/bookings/:bookingId", h.GetBooking, sharer)
	api.PATCH("/bookings/:bookingId", h.ApproveBooking, sharer)

	api.POST("/requests", h.CreateRequest, sharer)
	api.GET("/requests", h.ListOwnRequests, sharer)
	api.GET("/requests/all", h.ListOtherRequests, sharer)
	api.GET("/requests/:requestId", h.GetRequest, sharer)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
