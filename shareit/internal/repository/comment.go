package repository

import (
	"context"
	"time"

	"github.com/Astemirdum/shareit/pkg/datetime"
	"github.com/Astemirdum/shareit/shareit/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

type commentRow struct {
	ID         int64     `db:"id"`
	Text       string    `db:"text"`
	ItemID     int64     `db:"item_id"`
	AuthorName string    `db:"author_name"`
	Created    time.Time `db:"created"`
}

func (c commentRow) view() model.CommentView {
	return model.CommentView{
		ID:         c.ID,
		Text:       c.Text,
		AuthorName: c.AuthorName,
		Created:    datetime.New(c.Created),
		ItemID:     c.ItemID,
	}
}

func (r *repository) CreateComment(ctx context.Context, comment model.Comment) (model.CommentView, error) {
	const q = `
with c as (
    insert into comments (text, item_id, author_id, created)
    values (@text, @item_id, @author_id, @created)
    returning id, text, item_id, author_id, created
)
select c.id, c.text, c.item_id, u.name as author_name, c.created
from c
    join users u on u.id = c.author_id`
	row, err := collectOne[commentRow](ctx, r.db, q, pgx.NamedArgs{
		"text":      comment.Text,
		"item_id":   comment.ItemID,
		"author_id": comment.AuthorID,
		"created":   comment.Created.UTC(),
	})
	if err != nil {
		return model.CommentView{}, err
	}
	return row.view(), nil
}

func (r *repository) ListComments(ctx context.Context, itemIDs []int64) ([]model.CommentView, error) {
	if len(itemIDs) == 0 {
		return []model.CommentView{}, nil
	}
	query, args, err := qb.Select("c.id", "c.text", "c.item_id", "u.name as author_name", "c.created").
		From(commentsTableName+" c").
		Join(usersTableName+" u on u.id = c.author_id").
		Where(sq.Eq{"c.item_id": itemIDs}).
		OrderBy("c.created", "c.id").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := collectAll[commentRow](ctx, r.db, query, args...)
	if err != nil {
		return nil, err
	}
	comments := make([]model.CommentView, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, row.view())
	}
	return comments, nil
}
