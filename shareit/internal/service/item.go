package service

import (
	"context"
	"strings"

	"github.com/Astemirdum/shareit/shareit/internal/errs"
	"github.com/Astemirdum/shareit/shareit/internal/model"
	"github.com/Astemirdum/shareit/shareit/internal/repository"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

func (s *Service) CreateItem(ctx context.Context, ownerID int64, in model.CreateItem) (model.Item, error) {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return model.Item{}, errors.Wrap(errs.ErrInvalidRequest, "name must not be blank")
	case strings.TrimSpace(in.Description) == "":
		return model.Item{}, errors.Wrap(errs.ErrInvalidRequest, "description must not be blank")
	case in.Available == nil:
		return model.Item{}, errors.Wrap(errs.ErrInvalidRequest, "available must be set")
	}

	var created model.Item
	err := s.repo.Tx(ctx, func(repo repository.Repository) error {
		if _, err := repo.GetUser(ctx, ownerID); err != nil {
			return errors.Wrapf(err, "user %d", ownerID)
		}
		if in.RequestID != nil {
			if _, err := repo.GetRequest(ctx, *in.RequestID); err != nil {
				return errors.Wrapf(err, "request %d", *in.RequestID)
			}
		}
		var err error
		created, err = repo.CreateItem(ctx, model.Item{
			Name:        in.Name,
			Description: in.Description,
			Available:   *in.Available,
			OwnerID:     ownerID,
			RequestID:   in.RequestID,
		})
		return err
	})
	return created, err
}

func (s *Service) UpdateItem(ctx context.Context, ownerID, itemID int64, patch model.ItemPatch) (model.Item, error) {
	var updated model.Item
	err := s.repo.Tx(ctx, func(repo repository.Repository) error {
		item, err := repo.GetItem(ctx, itemID)
		if err != nil {
			return errors.Wrapf(err, "item %d", itemID)
		}
		if item.OwnerID != ownerID {
			return errors.Wrapf(errs.ErrForbidden, "user %d does not own item %d", ownerID, itemID)
		}
		item = patch.Apply(item)
		if strings.TrimSpace(item.Name) == "" || strings.TrimSpace(item.Description) == "" {
			return errors.Wrap(errs.ErrInvalidRequest, "name and description must not be blank")
		}
		updated, err = repo.UpdateItem(ctx, item)
		return err
	})
	return updated, err
}

// GetItem returns the item with its comments. Booking slots are filled for the owner only.
func (s *Service) GetItem(ctx context.Context, requesterID, itemID int64) (model.ItemView, error) {
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return model.ItemView{}, errors.Wrapf(err, "item %d", itemID)
	}
	ids := []int64{item.ID}
	comments, err := s.repo.ListComments(ctx, ids)
	if err != nil {
		return model.ItemView{}, err
	}
	view := model.ItemView{Item: item, Comments: nonNil(comments)}
	if item.OwnerID != requesterID {
		return view, nil
	}

	now := s.now()
	last, err := s.repo.LastBookings(ctx, ids, now)
	if err != nil {
		return model.ItemView{}, err
	}
	next, err := s.repo.NextBookings(ctx, ids, now)
	if err != nil {
		return model.ItemView{}, err
	}
	if len(last) > 0 {
		view.LastBooking = &last[0]
	}
	if len(next) > 0 {
		view.NextBooking = &next[0]
	}
	return view, nil
}

// ListOwnerItems returns the owner's items ordered by id with booking slots and comments.
func (s *Service) ListOwnerItems(ctx context.Context, ownerID int64) ([]model.ItemView, error) {
	items, err := s.repo.ListOwnerItems(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []model.ItemView{}, nil
	}
	ids := make([]int64, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}

	now := s.now()
	var (
		last, next []model.BookingShort
		comments   []model.CommentView
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		last, err = s.repo.LastBookings(gCtx, ids, now)
		return err
	})
	g.Go(func() error {
		var err error
		next, err = s.repo.NextBookings(gCtx, ids, now)
		return err
	})
	g.Go(func() error {
		var err error
		comments, err = s.repo.ListComments(gCtx, ids)
		return err
	})
	if err = g.Wait(); err != nil {
		return nil, err
	}

	lastByItem := make(map[int64]model.BookingShort, len(last))
	for _, b := range last {
		lastByItem[b.ItemID] = b
	}
	nextByItem := make(map[int64]model.BookingShort, len(next))
	for _, b := range next {
		nextByItem[b.ItemID] = b
	}
	commentsByItem := make(map[int64][]model.CommentView)
	for _, c := range comments {
		commentsByItem[c.ItemID] = append(commentsByItem[c.ItemID], c)
	}

	views := make([]model.ItemView, 0, len(items))
	for _, it := range items {
		view := model.ItemView{Item: it, Comments: nonNil(commentsByItem[it.ID])}
		if b, ok := lastByItem[it.ID]; ok {
			view.LastBooking = &b
		}
		if b, ok := nextByItem[it.ID]; ok {
			view.NextBooking = &b
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *Service) SearchItems(ctx context.Context, text string) ([]model.Item, error) {
	if strings.TrimSpace(text) == "" {
		return []model.Item{}, nil
	}
	return s.repo.SearchItems(ctx, text)
}

func (s *Service) AddComment(ctx context.Context, authorID, itemID int64, in model.CreateComment) (model.CommentView, error) {
	if strings.TrimSpace(in.Text) == "" {
		return model.CommentView{}, errors.Wrap(errs.ErrInvalidRequest, "text must not be blank")
	}
	now := s.now()
	var created model.CommentView
	err := s.repo.Tx(ctx, func(repo repository.Repository) error {
		if _, err := repo.GetUser(ctx, authorID); err != nil {
			return errors.Wrapf(err, "user %d", authorID)
		}
		if _, err := repo.GetItem(ctx, itemID); err != nil {
			return errors.Wrapf(err, "item %d", itemID)
		}
		ok, err := repo.HasFinishedBooking(ctx, itemID, authorID, now, s.commentRequireApproved)
		if err != nil {
			return err
		}
		if !ok {
			return errors.Wrapf(errs.ErrInvalidRequest, "user %d has no finished booking of item %d", authorID, itemID)
		}
		created, err = repo.CreateComment(ctx, model.Comment{
			ItemID:   itemID,
			AuthorID: authorID,
			Text:     in.Text,
			Created:  now,
		})
		return err
	})
	return created, err
}

func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
