package repository

import (
	"context"
	"time"

	"github.com/Astemirdum/shareit/shareit/internal/errs"
	"github.com/Astemirdum/shareit/shareit/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	// Tx runs fn against a repository bound to one transaction.
	// Nested calls reuse the outer transaction.
	Tx(ctx context.Context, fn func(repo Repository) error) error

	CreateUser(ctx context.Context, user model.User) (model.User, error)
	UpdateUser(ctx context.Context, user model.User) (model.User, error)
	GetUser(ctx context.Context, id int64) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	DeleteUser(ctx context.Context, id int64) error

	CreateItem(ctx context.Context, item model.Item) (model.Item, error)
	UpdateItem(ctx context.Context, item model.Item) (model.Item, error)
	GetItem(ctx context.Context, id int64) (model.Item, error)
	ListOwnerItems(ctx context.Context, ownerID int64) ([]model.Item, error)
	SearchItems(ctx context.Context, text string) ([]model.Item, error)
	ListItemsByRequests(ctx context.Context, requestIDs []int64) ([]model.RequestItem, error)

	CreateBooking(ctx context.Context, booking model.Booking) (int64, error)
	GetBooking(ctx context.Context, id int64) (model.BookingView, error)
	UpdateBookingStatus(ctx context.Context, id int64, from, to model.Status) error
	ListBookerBookings(ctx context.Context, bookerID int64, filter model.BookingFilter) ([]model.BookingView, error)
	ListOwnerBookings(ctx context.Context, ownerID int64, filter model.BookingFilter) ([]model.BookingView, error)
	LastBookings(ctx context.Context, itemIDs []int64, now time.Time) ([]model.BookingShort, error)
	NextBookings(ctx context.Context, itemIDs []int64, now time.Time) ([]model.BookingShort, error)
	HasFinishedBooking(ctx context.Context, itemID, bookerID int64, now time.Time, approvedOnly bool) (bool, error)

	CreateComment(ctx context.Context, comment model.Comment) (model.CommentView, error)
	ListComments(ctx context.Context, itemIDs []int64) ([]model.CommentView, error)

	CreateRequest(ctx context.Context, request model.ItemRequest) (model.ItemRequest, error)
	GetRequest(ctx context.Context, id int64) (model.ItemRequest, error)
	ListUserRequests(ctx context.Context, requestorID int64) ([]model.ItemRequest, error)
	ListOtherRequests(ctx context.Context, userID int64, page model.Page) ([]model.ItemRequest, error)
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type repository struct {
	pool *pgxpool.Pool
	db   querier
	log  *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		pool: db,
		db:   db,
		log:  log.Named("repo"),
	}, nil
}

const (
	usersTableName    = `users`
	itemsTableName    = `items`
	bookingsTableName = `bookings`
	commentsTableName = `comments`
	requestsTableName = `requests`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) Tx(ctx context.Context, fn func(repo Repository) error) error {
	if _, ok := r.db.(pgx.Tx); ok {
		return fn(r)
	}
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(&repository{
			pool: r.pool,
			db:   tx,
			log:  r.log,
		})
	})
}

// collectOne runs a single-row query and maps an empty result to errs.ErrNotFound.
func collectOne[T any](ctx context.Context, db querier, query string, args ...any) (T, error) {
	var zero T
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return zero, err
	}
	v, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, errs.ErrNotFound
		}
		return zero, err
	}
	return v, nil
}

func collectAll[T any](ctx context.Context, db querier, query string, args ...any) ([]T, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	list, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	return list, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}

func applyPage(q sq.SelectBuilder, page model.Page) sq.SelectBuilder {
	if page.Size > 0 {
		q = q.Limit(uint64(page.Size))
	}
	if page.From > 0 {
		q = q.Offset(uint64(page.From))
	}
	return q
}
