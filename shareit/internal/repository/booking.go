package repository

import (
	"context"
	"time"

	"github.com/Astemirdum/shareit/pkg/datetime"
	"github.com/Astemirdum/shareit/shareit/internal/errs"
	"github.com/Astemirdum/shareit/shareit/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

type bookingRow struct {
	ID         int64        `db:"id"`
	Start      time.Time    `db:"start_date"`
	End        time.Time    `db:"end_date"`
	Status     model.Status `db:"status"`
	BookerID   int64        `db:"booker_id"`
	BookerName string       `db:"booker_name"`
	ItemID     int64        `db:"item_id"`
	ItemName   string       `db:"item_name"`
	OwnerID    int64        `db:"owner_id"`
}

func (b bookingRow) view() model.BookingView {
	return model.BookingView{
		ID:      b.ID,
		Start:   datetime.New(b.Start),
		End:     datetime.New(b.End),
		Status:  b.Status,
		Booker:  model.UserRef{ID: b.BookerID, Name: b.BookerName},
		Item:    model.ItemRef{ID: b.ItemID, Name: b.ItemName},
		OwnerID: b.OwnerID,
	}
}

func selectBookings() sq.SelectBuilder {
	return qb.Select(
		"b.id", "b.start_date", "b.end_date", "b.status",
		"b.booker_id", "u.name as booker_name",
		"b.item_id", "i.name as item_name", "i.owner_id",
	).
		From(bookingsTableName + " b").
		Join(usersTableName + " u on u.id = b.booker_id").
		Join(itemsTableName + " i on i.id = b.item_id")
}

func (r *repository) CreateBooking(ctx context.Context, booking model.Booking) (int64, error) {
	const q = `
insert into bookings (start_date, end_date, item_id, booker_id, status)
values (@start, @end, @item_id, @booker_id, @status)
returning id`
	args := pgx.NamedArgs{
		"start":     booking.Start.UTC(),
		"end":       booking.End.UTC(),
		"item_id":   booking.ItemID,
		"booker_id": booking.BookerID,
		"status":    string(booking.Status),
	}
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return 0, err
	}
	id, err := pgx.CollectOneRow(rows, pgx.RowTo[int64])
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, errors.Wrap(errs.ErrNotFound, "item or booker")
		}
		return 0, err
	}
	return id, nil
}

func (r *repository) GetBooking(ctx context.Context, id int64) (model.BookingView, error) {
	query, args, err := selectBookings().
		Where(sq.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return model.BookingView{}, err
	}
	row, err := collectOne[bookingRow](ctx, r.db, query, args...)
	if err != nil {
		return model.BookingView{}, err
	}
	return row.view(), nil
}

// UpdateBookingStatus moves a booking from one status to another.
// A booking no longer in from yields errs.ErrConflict, so concurrent decisions cannot both win.
func (r *repository) UpdateBookingStatus(ctx context.Context, id int64, from, to model.Status) error {
	const q = `update bookings set status = @to where id = @id and status = @from`
	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{
		"id":   id,
		"from": string(from),
		"to":   string(to),
	})
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(errs.ErrConflict, "booking %d is no longer %s", id, from)
	}
	return nil
}

func (r *repository) ListBookerBookings(ctx context.Context, bookerID int64, filter model.BookingFilter) ([]model.BookingView, error) {
	return r.listBookings(ctx, sq.Eq{"b.booker_id": bookerID}, filter)
}

func (r *repository) ListOwnerBookings(ctx context.Context, ownerID int64, filter model.BookingFilter) ([]model.BookingView, error) {
	return r.listBookings(ctx, sq.Eq{"i.owner_id": ownerID}, filter)
}

func (r *repository) listBookings(ctx context.Context, who sq.Sqlizer, filter model.BookingFilter) ([]model.BookingView, error) {
	q := applyBookingState(selectBookings().Where(who), filter.State, filter.Now.UTC()).
		OrderBy("b.start_date desc", "b.id desc")
	query, args, err := applyPage(q, filter.Page).ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := collectAll[bookingRow](ctx, r.db, query, args...)
	if err != nil {
		return nil, err
	}
	views := make([]model.BookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, row.view())
	}
	return views, nil
}

func applyBookingState(q sq.SelectBuilder, state model.State, now time.Time) sq.SelectBuilder {
	switch state {
	case model.StateCurrent:
		return q.Where(sq.LtOrEq{"b.start_date": now}).Where(sq.Gt{"b.end_date": now})
	case model.StatePast:
		return q.Where(sq.Lt{"b.end_date": now})
	case model.StateFuture:
		return q.Where(sq.Gt{"b.start_date": now})
	case model.StateWaiting:
		return q.Where(sq.Eq{"b.status": string(model.StatusWaiting)})
	case model.StateRejected:
		return q.Where(sq.Eq{"b.status": string(model.StatusRejected)})
	default:
		return q
	}
}

// LastBookings returns, per item, the approved booking already started with the latest end.
func (r *repository) LastBookings(ctx context.Context, itemIDs []int64, now time.Time) ([]model.BookingShort, error) {
	if len(itemIDs) == 0 {
		return []model.BookingShort{}, nil
	}
	return r.edgeBookings(ctx, lastBookingsQuery(itemIDs, now))
}

// NextBookings returns, per item, the approved booking not yet started with the earliest start.
func (r *repository) NextBookings(ctx context.Context, itemIDs []int64, now time.Time) ([]model.BookingShort, error) {
	if len(itemIDs) == 0 {
		return []model.BookingShort{}, nil
	}
	return r.edgeBookings(ctx, nextBookingsQuery(itemIDs, now))
}

func lastBookingsQuery(itemIDs []int64, now time.Time) sq.SelectBuilder {
	return edgeBookingsQuery(itemIDs, sq.Lt{"start_date": now.UTC()}, "end_date desc")
}

func nextBookingsQuery(itemIDs []int64, now time.Time) sq.SelectBuilder {
	return edgeBookingsQuery(itemIDs, sq.Gt{"start_date": now.UTC()}, "start_date asc")
}

// edgeBookingsQuery keeps the first approved booking per item in the given order.
func edgeBookingsQuery(itemIDs []int64, when sq.Sqlizer, order string) sq.SelectBuilder {
	return qb.Select("id", "booker_id", "item_id").
		Options("distinct on (item_id)").
		From(bookingsTableName).
		Where(sq.Eq{"item_id": itemIDs}).
		Where(sq.Eq{"status": string(model.StatusApproved)}).
		Where(when).
		OrderBy("item_id", order, "id")
}

func (r *repository) edgeBookings(ctx context.Context, q sq.SelectBuilder) ([]model.BookingShort, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	return collectAll[model.BookingShort](ctx, r.db, query, args...)
}

func (r *repository) HasFinishedBooking(ctx context.Context, itemID, bookerID int64, now time.Time, approvedOnly bool) (bool, error) {
	query, args, err := finishedBookingQuery(itemID, bookerID, now, approvedOnly).ToSql()
	if err != nil {
		return false, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return false, err
	}
	return pgx.CollectOneRow(rows, pgx.RowTo[bool])
}

// finishedBookingQuery checks for a booking of the item by the booker that ended before now.
func finishedBookingQuery(itemID, bookerID int64, now time.Time, approvedOnly bool) sq.SelectBuilder {
	q := qb.Select("1").
		From(bookingsTableName).
		Where(sq.Eq{"item_id": itemID}).
		Where(sq.Eq{"booker_id": bookerID}).
		Where(sq.Lt{"end_date": now.UTC()})
	if approvedOnly {
		q = q.Where(sq.Eq{"status": string(model.StatusApproved)})
	}
	return q.Prefix("select exists (").Suffix(")")
}
