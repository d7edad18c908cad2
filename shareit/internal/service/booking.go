package service

import (
	"context"

	"github.com/Astemirdum/shareit/pkg/kafka"
	"github.com/Astemirdum/shareit/shareit/internal/errs"
	"github.com/Astemirdum/shareit/shareit/internal/model"
	"github.com/Astemirdum/shareit/shareit/internal/repository"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func (s *Service) CreateBooking(ctx context.Context, bookerID int64, in model.CreateBooking) (model.BookingView, error) {
	now := s.now()
	switch {
	case in.Start.IsZero() || in.End.IsZero():
		return model.BookingView{}, errors.Wrap(errs.ErrInvalidRequest, "start and end must be set")
	case !in.End.After(in.Start.Time):
		return model.BookingView{}, errors.Wrap(errs.ErrInvalidRequest, "end must be after start")
	case in.Start.Before(now):
		return model.BookingView{}, errors.Wrap(errs.ErrInvalidRequest, "start must not be in the past")
	}

	var created model.BookingView
	err := s.repo.Tx(ctx, func(repo repository.Repository) error {
		if _, err := repo.GetUser(ctx, bookerID); err != nil {
			return errors.Wrapf(err, "user %d", bookerID)
		}
		item, err := repo.GetItem(ctx, in.ItemID)
		if err != nil {
			return errors.Wrapf(err, "item %d", in.ItemID)
		}
		if !item.Available {
			return errors.Wrapf(errs.ErrInvalidRequest, "item %d is not available", item.ID)
		}
		id, err := repo.CreateBooking(ctx, model.Booking{
			ItemID:   item.ID,
			BookerID: bookerID,
			Start:    in.Start.Time,
			End:      in.End.Time,
			Status:   model.StatusWaiting,
		})
		if err != nil {
			return err
		}
		created, err = repo.GetBooking(ctx, id)
		return err
	})
	if err != nil {
		return model.BookingView{}, err
	}
	s.publish(ctx, kafka.EventBookingCreated, created)
	return created, nil
}

// ApproveBooking applies the owner's decision to a WAITING booking.
func (s *Service) ApproveBooking(ctx context.Context, ownerID, bookingID int64, approved bool) (model.BookingView, error) {
	var decided model.BookingView
	err := s.repo.Tx(ctx, func(repo repository.Repository) error {
		booking, err := repo.GetBooking(ctx, bookingID)
		if err != nil {
			return errors.Wrapf(err, "booking %d", bookingID)
		}
		if booking.OwnerID != ownerID {
			return errors.Wrapf(errs.ErrForbidden, "user %d does not own item %d", ownerID, booking.Item.ID)
		}
		next, ok := booking.Status.Decide(approved)
		if !ok {
			return errors.Wrapf(errs.ErrConflict, "booking %d is already %s", bookingID, booking.Status)
		}
		if err = repo.UpdateBookingStatus(ctx, bookingID, booking.Status, next); err != nil {
			return err
		}
		booking.Status = next
		decided = booking
		return nil
	})
	if err != nil {
		return model.BookingView{}, err
	}
	eventType := kafka.EventBookingApproved
	if decided.Status == model.StatusRejected {
		eventType = kafka.EventBookingRejected
	}
	s.publish(ctx, eventType, decided)
	return decided, nil
}

func (s *Service) GetBooking(ctx context.Context, requesterID, bookingID int64) (model.BookingView, error) {
	booking, err := s.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return model.BookingView{}, errors.Wrapf(err, "booking %d", bookingID)
	}
	if requesterID != booking.Booker.ID && requesterID != booking.OwnerID {
		return model.BookingView{}, errors.Wrapf(errs.ErrForbidden, "user %d can not view booking %d", requesterID, bookingID)
	}
	return booking, nil
}

func (s *Service) ListBookerBookings(ctx context.Context, bookerID int64, state model.State, page model.Page) ([]model.BookingView, error) {
	if _, err := s.repo.GetUser(ctx, bookerID); err != nil {
		return nil, errors.Wrapf(err, "user %d", bookerID)
	}
	return s.repo.ListBookerBookings(ctx, bookerID, model.BookingFilter{State: state, Now: s.now(), Page: page})
}

func (s *Service) ListOwnerBookings(ctx context.Context, ownerID int64, state model.State, page model.Page) ([]model.BookingView, error) {
	if _, err := s.repo.GetUser(ctx, ownerID); err != nil {
		return nil, errors.Wrapf(err, "user %d", ownerID)
	}
	return s.repo.ListOwnerBookings(ctx, ownerID, model.BookingFilter{State: state, Now: s.now(), Page: page})
}

// publish emits a booking event. A failed publish is logged and never fails the operation.
func (s *Service) publish(ctx context.Context, eventType kafka.EventType, b model.BookingView) {
	if s.events == nil {
		return
	}
	err := s.events.Publish(ctx, kafka.BookingEvent{
		Timestamp: s.now(),
		EventType: eventType,
		BookingID: b.ID,
		ItemID:    b.Item.ID,
		BookerID:  b.Booker.ID,
		OwnerID:   b.OwnerID,
		Status:    string(b.Status),
	})
	if err != nil {
		s.log.Warn("publish booking event",
			zap.String("type", string(eventType)),
			zap.Int64("booking_id", b.ID),
			zap.Error(err))
	}
}
