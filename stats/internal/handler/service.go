package handler

import (
	"context"

	"github.com/Astemirdum/shareit/pkg/kafka"
	"github.com/Astemirdum/shareit/stats/internal/model"
	"github.com/Astemirdum/shareit/stats/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type StatsService interface {
	GetStats(ctx context.Context, filter model.StatsFilter) (model.StatsInfo, error)
	Stats(ctx context.Context, event kafka.BookingEvent) error
}

var _ StatsService = (*service.Service)(nil)
