package service

import (
	"context"

	"github.com/Astemirdum/shareit/pkg/kafka"
	"github.com/Astemirdum/shareit/stats/internal/errs"
	"github.com/Astemirdum/shareit/stats/internal/model"
	statsRepo "github.com/Astemirdum/shareit/stats/internal/repository"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Service struct {
	log  *zap.Logger
	repo statsRepo.Repository
}

func NewService(repo statsRepo.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log.Named("service"),
		repo: repo,
	}
}

// GetStats returns per item booking counters, optionally for one owner.
func (s *Service) GetStats(ctx context.Context, filter model.StatsFilter) (model.StatsInfo, error) {
	info, err := s.repo.GetStats(ctx, filter)
	if err != nil {
		return model.StatsInfo{}, err
	}
	if info.Data == nil {
		info.Data = []model.ItemStats{}
	}
	return info, nil
}

// Stats used by kafka consumer.
func (s *Service) Stats(ctx context.Context, event kafka.BookingEvent) error {
	switch event.EventType {
	case kafka.EventBookingCreated, kafka.EventBookingApproved, kafka.EventBookingRejected:
	default:
		return errors.Wrapf(errs.ErrUnknownEvent, "%q", event.EventType)
	}
	return s.repo.SaveEvent(ctx, event)
}
