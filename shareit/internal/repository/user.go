package repository

import (
	"context"

	"github.com/Astemirdum/shareit/shareit/internal/errs"
	"github.com/Astemirdum/shareit/shareit/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
)

var userColumns = []string{"id", "name", "email"}

func (r *repository) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	query, args, err := qb.Insert(usersTableName).
		Columns("name", "email").
		Values(user.Name, user.Email).
		Suffix("returning id, name, email").
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	created, err := collectOne[model.User](ctx, r.db, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return model.User{}, errors.Wrapf(errs.ErrConflict, "email %s is already registered", user.Email)
		}
		return model.User{}, err
	}
	return created, nil
}

func (r *repository) UpdateUser(ctx context.Context, user model.User) (model.User, error) {
	query, args, err := qb.Update(usersTableName).
		Set("name", user.Name).
		Set("email", user.Email).
		Where(sq.Eq{"id": user.ID}).
		Suffix("returning id, name, email").
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	updated, err := collectOne[model.User](ctx, r.db, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return model.User{}, errors.Wrapf(errs.ErrConflict, "email %s is already registered", user.Email)
		}
		return model.User{}, err
	}
	return updated, nil
}

func (r *repository) GetUser(ctx context.Context, id int64) (model.User, error) {
	query, args, err := qb.Select(userColumns...).
		From(usersTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	return collectOne[model.User](ctx, r.db, query, args...)
}

func (r *repository) ListUsers(ctx context.Context) ([]model.User, error) {
	query, args, err := qb.Select(userColumns...).
		From(usersTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	return collectAll[model.User](ctx, r.db, query, args...)
}

// DeleteUser removes the user; foreign keys cascade to owned items, bookings, comments and requests.
func (r *repository) DeleteUser(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `delete from users where id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
