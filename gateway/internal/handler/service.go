package handler

import (
	"github.com/Astemirdum/shareit/gateway/internal/service/shareit"
	"github.com/Astemirdum/shareit/pkg/circuit_breaker"
	"github.com/labstack/echo/v4"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var _ ShareitService = (*shareit.Service)(nil)

type ShareitService interface {
	Proxy(c echo.Context, body []byte) ([]byte, int, error)
	CB() circuit_breaker.CircuitBreaker
}
