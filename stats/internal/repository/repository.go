package repository

import (
	"context"

	"github.com/Astemirdum/shareit/pkg/kafka"
	"github.com/Astemirdum/shareit/stats/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	SaveEvent(ctx context.Context, event kafka.BookingEvent) error
	GetStats(ctx context.Context, filter model.StatsFilter) (model.StatsInfo, error)
}

const eventsTable = "booking_events"

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

// SaveEvent stores the event once; a redelivered event is ignored.
func (r *repository) SaveEvent(ctx context.Context, event kafka.BookingEvent) error {
	const q = `insert into booking_events (booking_id, item_id, booker_id, owner_id, event_type, status, occurred_at)
	values (@booking_id, @item_id, @booker_id, @owner_id, @event_type, @status, @occurred_at)
	on conflict (booking_id, event_type) do nothing`
	args := pgx.NamedArgs{
		"booking_id":  event.BookingID,
		"item_id":     event.ItemID,
		"booker_id":   event.BookerID,
		"owner_id":    event.OwnerID,
		"event_type":  string(event.EventType),
		"status":      event.Status,
		"occurred_at": event.Timestamp,
	}
	if _, err := r.db.Exec(ctx, q, args); err != nil {
		return errors.Wrap(err, "insert event")
	}
	return nil
}

func (r *repository) GetStats(ctx context.Context, filter model.StatsFilter) (model.StatsInfo, error) {
	b := qb.Select(
		"item_id",
		"max(owner_id) as owner_id",
		"count(*) filter (where event_type = 'BOOKING_CREATED') as created",
		"count(*) filter (where event_type = 'BOOKING_APPROVED') as approved",
		"count(*) filter (where event_type = 'BOOKING_REJECTED') as rejected",
		"max(occurred_at) as last_updated",
	).
		From(eventsTable).
		GroupBy("item_id").
		OrderBy("item_id")
	if filter.OwnerID != nil {
		b = b.Where(sq.Eq{"owner_id": *filter.OwnerID})
	}
	q, args, err := b.ToSql()
	if err != nil {
		return model.StatsInfo{}, err
	}
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return model.StatsInfo{}, err
	}
	stats, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.ItemStats])
	if err != nil {
		return model.StatsInfo{}, errors.Wrap(err, "pgx.CollectRows")
	}
	return model.StatsInfo{Data: stats}, nil
}
