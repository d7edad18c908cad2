package service

import (
	"context"
	"time"

	"github.com/Astemirdum/shareit/pkg/kafka"
	"github.com/Astemirdum/shareit/shareit/internal/repository"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type EventPublisher interface {
	Publish(ctx context.Context, event kafka.BookingEvent) error
}

type Service struct {
	log    *zap.Logger
	repo   repository.Repository
	events EventPublisher
	now    func() time.Time
	// commentRequireApproved limits comments to bookers whose finished booking was approved.
	commentRequireApproved bool
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithEventPublisher(p EventPublisher) Option {
	return func(s *Service) {
		s.events = p
	}
}

func WithCommentRequireApproved(required bool) Option {
	return func(s *Service) {
		s.commentRequireApproved = required
	}
}

func NewService(repo repository.Repository, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:  log.Named("service"),
		repo: repo,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
