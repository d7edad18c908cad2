package repository

import (
	"context"

	"github.com/Astemirdum/shareit/shareit/internal/model"
	sq "github.com/Masterminds/squirrel"
)

var requestColumns = []string{"id", "description", "requestor_id", "created"}

func (r *repository) CreateRequest(ctx context.Context, request model.ItemRequest) (model.ItemRequest, error) {
	query, args, err := qb.Insert(requestsTableName).
		Columns("description", "requestor_id", "created").
		Values(request.Description, request.RequestorID, request.Created.UTC()).
		Suffix("returning id, description, requestor_id, created").
		ToSql()
	if err != nil {
		return model.ItemRequest{}, err
	}
	return collectOne[model.ItemRequest](ctx, r.db, query, args...)
}

func (r *repository) GetRequest(ctx context.Context, id int64) (model.ItemRequest, error) {
	query, args, err := qb.Select(requestColumns...).
		From(requestsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.ItemRequest{}, err
	}
	return collectOne[model.ItemRequest](ctx, r.db, query, args...)
}

func (r *repository) ListUserRequests(ctx context.Context, requestorID int64) ([]model.ItemRequest, error) {
	query, args, err := qb.Select(requestColumns...).
		From(requestsTableName).
		Where(sq.Eq{"requestor_id": requestorID}).
		OrderBy("created desc", "id desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	return collectAll[model.ItemRequest](ctx, r.db, query, args...)
}

func (r *repository) ListOtherRequests(ctx context.Context, userID int64, page model.Page) ([]model.ItemRequest, error) {
	q := qb.Select(requestColumns...).
		From(requestsTableName).
		Where(sq.NotEq{"requestor_id": userID}).
		OrderBy("created desc", "id desc")
	query, args, err := applyPage(q, page).ToSql()
	if err != nil {
		return nil, err
	}
	return collectAll[model.ItemRequest](ctx, r.db, query, args...)
}
