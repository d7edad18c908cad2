package repository

import (
	"context"
	"strings"

	"github.com/Astemirdum/shareit/shareit/internal/errs"
	"github.com/Astemirdum/shareit/shareit/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
)

var itemColumns = []string{"id", "name", "description", "available", "owner_id", "request_id"}

const itemReturning = "returning id, name, description, available, owner_id, request_id"

func (r *repository) CreateItem(ctx context.Context, item model.Item) (model.Item, error) {
	query, args, err := qb.Insert(itemsTableName).
		Columns("name", "description", "available", "owner_id", "request_id").
		Values(item.Name, item.Description, item.Available, item.OwnerID, item.RequestID).
		Suffix(itemReturning).
		ToSql()
	if err != nil {
		return model.Item{}, err
	}
	created, err := collectOne[model.Item](ctx, r.db, query, args...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return model.Item{}, errors.Wrap(errs.ErrNotFound, "owner or request")
		}
		return model.Item{}, err
	}
	return created, nil
}

func (r *repository) UpdateItem(ctx context.Context, item model.Item) (model.Item, error) {
	query, args, err := qb.Update(itemsTableName).
		Set("name", item.Name).
		Set("description", item.Description).
		Set("available", item.Available).
		Where(sq.Eq{"id": item.ID}).
		Suffix(itemReturning).
		ToSql()
	if err != nil {
		return model.Item{}, err
	}
	return collectOne[model.Item](ctx, r.db, query, args...)
}

func (r *repository) GetItem(ctx context.Context, id int64) (model.Item, error) {
	query, args, err := qb.Select(itemColumns...).
		From(itemsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Item{}, err
	}
	return collectOne[model.Item](ctx, r.db, query, args...)
}

func (r *repository) ListOwnerItems(ctx context.Context, ownerID int64) ([]model.Item, error) {
	query, args, err := qb.Select(itemColumns...).
		From(itemsTableName).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	return collectAll[model.Item](ctx, r.db, query, args...)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchItems matches available items by a case-insensitive substring of name or description.
func (r *repository) SearchItems(ctx context.Context, text string) ([]model.Item, error) {
	pattern := "%" + likeEscaper.Replace(text) + "%"
	query, args, err := qb.Select(itemColumns...).
		From(itemsTableName).
		Where(sq.Eq{"available": true}).
		Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"description": pattern},
		}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	return collectAll[model.Item](ctx, r.db, query, args...)
}

func (r *repository) ListItemsByRequests(ctx context.Context, requestIDs []int64) ([]model.RequestItem, error) {
	if len(requestIDs) == 0 {
		return []model.RequestItem{}, nil
	}
	query, args, err := qb.Select("id", "name", "owner_id", "request_id").
		From(itemsTableName).
		Where(sq.Eq{"request_id": requestIDs}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	return collectAll[model.RequestItem](ctx, r.db, query, args...)
}
